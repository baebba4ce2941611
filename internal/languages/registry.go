// Package languages describes the source languages cortex-hover can document.
package languages

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/gobwas/glob"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/mvp-joe/cortex-hover/internal/doccomment"
	"github.com/mvp-joe/cortex-hover/internal/nodemodel"
)

// Language bundles a tree-sitter grammar with its documentation conventions.
type Language struct {
	Name     string
	Patterns []string // glob patterns matched against the base file name
	Grammar  nodemodel.Grammar

	// Documentation is the preset applied before user overrides.
	Documentation doccomment.Config

	language func() *sitter.Language
	globs    []glob.Glob
	once     sync.Once
	parser   *nodemodel.Parser
}

// Parser returns the language's node model parser, created on first use.
func (l *Language) Parser() *nodemodel.Parser {
	l.once.Do(func() {
		l.parser = nodemodel.NewParser(l.language(), l.Grammar)
	})
	return l.parser
}

// Matches reports whether the file name belongs to this language.
func (l *Language) Matches(path string) bool {
	base := filepath.Base(path)
	for _, g := range l.globs {
		if g.Match(base) {
			return true
		}
	}
	return false
}

var (
	registry = map[string]*Language{}
	ordered  []*Language
)

// register adds a language; patterns are compiled eagerly so a bad pattern
// fails at init.
func register(l *Language) {
	if _, exists := registry[l.Name]; exists {
		panic(fmt.Sprintf("languages: %s registered twice", l.Name))
	}
	for _, pattern := range l.Patterns {
		l.globs = append(l.globs, glob.MustCompile(pattern))
	}
	l.Grammar.Name = l.Name
	registry[l.Name] = l
	ordered = append(ordered, l)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })
}

// ByName returns the language with the given name.
func ByName(name string) (*Language, bool) {
	l, ok := registry[name]
	return l, ok
}

// ForPath returns the first language, by name, whose patterns match the file.
func ForPath(path string) (*Language, bool) {
	for _, l := range ordered {
		if l.Matches(path) {
			return l, true
		}
	}
	return nil, false
}

// All returns every registered language sorted by name.
func All() []*Language {
	out := make([]*Language, len(ordered))
	copy(out, ordered)
	return out
}

// Names returns the names of every registered language.
func Names() []string {
	names := make([]string, len(ordered))
	for i, l := range ordered {
		names[i] = l.Name
	}
	return names
}

// blockComment is the preset for languages with /** */ doc comments.
func blockComment(rule string) doccomment.Config {
	return doccomment.Config{RuleName: rule}.Merge(doccomment.DefaultConfig())
}

// hashComment is the preset for languages whose comments start with #.
func hashComment() doccomment.Config {
	return doccomment.Config{
		RuleName:   "comment",
		StartTag:   `#+`,
		LinePrefix: `#* ?`,
	}.Merge(doccomment.DefaultConfig())
}
