package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"

	"github.com/mvp-joe/cortex-hover/internal/nodemodel"
)

func init() {
	register(&Language{
		Name:     "c",
		Patterns: []string{"*.c", "*.h"},
		Grammar: nodemodel.Grammar{
			Declarations: []string{
				"function_definition",
				"declaration",
				"type_definition",
				"struct_specifier",
				"union_specifier",
				"enum_specifier",
				"field_declaration",
				"enumerator",
				"preproc_def",
				"preproc_function_def",
			},
			// typedef struct { ... } name; documents the struct through the typedef.
			Wrappers: []string{"type_definition", "declaration"},
		},
		Documentation: blockComment("comment"),
		language: func() *sitter.Language {
			return sitter.NewLanguage(c.Language())
		},
	})
}
