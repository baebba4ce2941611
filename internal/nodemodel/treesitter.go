package nodemodel

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ErrParse indicates tree-sitter could not produce a tree for the source.
var ErrParse = errors.New("parse failed")

// Parser turns source files of one language into Documents.
type Parser struct {
	language *sitter.Language
	grammar  Grammar
}

// NewParser creates a parser for the given tree-sitter language.
func NewParser(language *sitter.Language, grammar Grammar) *Parser {
	return &Parser{
		language: language,
		grammar:  grammar,
	}
}

// Grammar returns the grammar description the parser was built with.
func (p *Parser) Grammar() Grammar {
	return p.grammar
}

// Parse parses source and flattens the tree into tokens and declarations.
// The tree-sitter tree is released before Parse returns.
func (p *Parser) Parse(ctx context.Context, path string, source []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(p.language); err != nil {
		return nil, fmt.Errorf("failed to set %s language: %w", p.grammar.Name, err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("%w: %s file: %s", ErrParse, p.grammar.Name, path)
	}
	defer tree.Close()

	doc := &Document{
		Path:     path,
		Language: p.grammar.Name,
	}

	b := &builder{
		doc:          doc,
		source:       source,
		declarations: toSet(p.grammar.Declarations),
		wrappers:     toSet(p.grammar.Wrappers),
		prefixes:     toSet(p.grammar.Prefixes),
		anchors:      make(map[*Declaration]uint),
	}
	b.collectLeaves(tree.RootNode())
	b.collectDeclarations(tree.RootNode())
	b.resolveAnchors()

	return doc, nil
}

type builder struct {
	doc          *Document
	source       []byte
	declarations map[string]bool
	wrappers     map[string]bool
	prefixes     map[string]bool

	// Start byte of each declaration's anchor node.
	anchors map[*Declaration]uint
}

// collectLeaves appends every leaf in document order. Extras (comments) are
// emitted whole; some grammars give doc comments internal structure.
func (b *builder) collectLeaves(node *sitter.Node) {
	if node == nil {
		return
	}

	if node.IsExtra() {
		b.appendToken(node, true)
		return
	}

	if node.ChildCount() == 0 {
		if node.IsMissing() || node.StartByte() == node.EndByte() {
			return
		}
		b.appendToken(node, false)
		return
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		b.collectLeaves(node.Child(i))
	}
}

func (b *builder) appendToken(node *sitter.Node, hidden bool) {
	start := node.StartPosition()
	b.doc.Tokens = append(b.doc.Tokens, Token{
		Text:   node.Utf8Text(b.source),
		Rule:   node.Kind(),
		Hidden: hidden,
		Offset: int(node.StartByte()),
		Line:   int(start.Row) + 1,
		Column: int(start.Column) + 1,
	})
}

func (b *builder) collectDeclarations(root *sitter.Node) {
	walkTree(root, func(n *sitter.Node) bool {
		if n.IsExtra() {
			return false
		}
		if b.declarations[n.Kind()] {
			b.addDeclaration(n)
		}
		return true
	})
}

func (b *builder) addDeclaration(node *sitter.Node) {
	start := node.StartPosition()
	end := node.EndPosition()

	decl := &Declaration{
		Kind:        node.Kind(),
		Name:        declarationName(node, b.source),
		StartByte:   int(node.StartByte()),
		EndByte:     int(node.EndByte()),
		StartLine:   int(start.Row) + 1,
		StartColumn: int(start.Column) + 1,
		EndLine:     int(end.Row) + 1,
		EndColumn:   int(end.Column) + 1,
		doc:         b.doc,
		anchor:      -1,
	}
	b.doc.Declarations = append(b.doc.Declarations, decl)
	b.anchors[decl] = b.anchorOf(node).StartByte()
}

// anchorOf climbs through wrapper parents, then steps back over prefix
// siblings that touch the node without a comment in between.
func (b *builder) anchorOf(node *sitter.Node) *sitter.Node {
	anchor := node
	for {
		parent := anchor.Parent()
		if parent == nil || !b.wrappers[parent.Kind()] {
			break
		}
		anchor = parent
	}

	for {
		prev := anchor.PrevSibling()
		if prev == nil || prev.IsExtra() || !b.prefixes[prev.Kind()] {
			break
		}
		anchor = prev
	}
	return anchor
}

// resolveAnchors maps each anchor start byte to the first significant token
// at or after it.
func (b *builder) resolveAnchors() {
	tokens := b.doc.Tokens
	for decl, offset := range b.anchors {
		i := sort.Search(len(tokens), func(i int) bool {
			return tokens[i].Offset >= int(offset)
		})
		for i < len(tokens) && tokens[i].Hidden {
			i++
		}
		if i < len(tokens) {
			decl.anchor = i
		}
	}
	b.anchors = nil
}

// declarationName follows name and declarator fields down to an identifier.
func declarationName(node *sitter.Node, source []byte) string {
	for depth := 0; node != nil && depth < 8; depth++ {
		if name := node.ChildByFieldName("name"); name != nil {
			return name.Utf8Text(source)
		}
		next := node.ChildByFieldName("declarator")
		if next == nil {
			if isIdentifier(node.Kind()) {
				return node.Utf8Text(source)
			}
			return ""
		}
		node = next
	}
	return ""
}

var identifierKinds = []string{
	"identifier",
	"field_identifier",
	"type_identifier",
	"property_identifier",
	"constant",
	"name",
}

func isIdentifier(kind string) bool {
	return slices.Contains(identifierKinds, kind)
}

// walkTree recursively walks a tree-sitter tree and calls the visitor for each node.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		walkTree(node.Child(i), visitor)
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
