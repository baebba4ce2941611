package nodemodel

// Token is a leaf of a parsed document.
type Token struct {
	Text   string `json:"text"`
	Rule   string `json:"rule"`   // grammar rule (tree-sitter node kind) that produced the leaf
	Hidden bool   `json:"hidden"` // comment or whitespace, not significant syntax
	Offset int    `json:"offset"` // byte offset of the leaf in the source
	Line   int    `json:"line"`   // 1-indexed
	Column int    `json:"column"` // 1-indexed, in bytes
}

// Node is a syntax node whose leaves can be walked in document order.
//
// Leaves starts at the node's local preceding context (the hidden tokens
// between the previous significant token and the node) and ends no earlier
// than the node's first significant token.
type Node interface {
	Leaves() []Token
}

// Grammar describes how to parse a language and which nodes are declarations.
type Grammar struct {
	Name string

	// Declarations lists node kinds that carry documentation.
	Declarations []string

	// Wrappers lists node kinds that wrap a declaration and own its leading
	// context (export_statement, decorated_definition).
	Wrappers []string

	// Prefixes lists sibling node kinds that directly precede a declaration
	// and belong to it (Rust attribute_item).
	Prefixes []string
}

// Declaration is a documented-node candidate found while parsing.
type Declaration struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	StartByte   int    `json:"start_byte"`
	EndByte     int    `json:"end_byte"`
	StartLine   int    `json:"start_line"`
	StartColumn int    `json:"start_column"`
	EndLine     int    `json:"end_line"`
	EndColumn   int    `json:"end_column"`

	doc *Document
	// Index into doc.Tokens of the first significant token of the anchor.
	anchor int
}

// Leaves returns the hidden tokens preceding the declaration's anchor followed
// by the anchor's first significant token.
func (d *Declaration) Leaves() []Token {
	if d.doc == nil || d.anchor < 0 || d.anchor >= len(d.doc.Tokens) {
		return nil
	}

	start := d.anchor
	for start > 0 && d.doc.Tokens[start-1].Hidden {
		start--
	}
	return d.doc.Tokens[start : d.anchor+1]
}

// Contains reports whether the 1-indexed position lies inside the declaration.
func (d *Declaration) Contains(line, column int) bool {
	if line < d.StartLine || line > d.EndLine {
		return false
	}
	if line == d.StartLine && column < d.StartColumn {
		return false
	}
	if line == d.EndLine && column >= d.EndColumn {
		return false
	}
	return true
}

// Document is the flattened, read-only result of parsing one file.
type Document struct {
	Path         string
	Language     string
	Tokens       []Token
	Declarations []*Declaration
}

// DeclarationAt returns the innermost declaration containing the position, or nil.
func (d *Document) DeclarationAt(line, column int) *Declaration {
	var best *Declaration
	for _, decl := range d.Declarations {
		if !decl.Contains(line, column) {
			continue
		}
		if best == nil || decl.EndByte-decl.StartByte < best.EndByte-best.StartByte {
			best = decl
		}
	}
	return best
}

// DeclarationsNamed returns declarations with the given name in document order.
func (d *Document) DeclarationsNamed(name string) []*Declaration {
	var out []*Declaration
	for _, decl := range d.Declarations {
		if decl.Name == name {
			out = append(out, decl)
		}
	}
	return out
}
