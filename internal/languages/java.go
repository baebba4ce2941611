package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/mvp-joe/cortex-hover/internal/nodemodel"
)

func init() {
	register(&Language{
		Name:     "java",
		Patterns: []string{"*.java"},
		Grammar: nodemodel.Grammar{
			Declarations: []string{
				"class_declaration",
				"interface_declaration",
				"enum_declaration",
				"record_declaration",
				"annotation_type_declaration",
				"method_declaration",
				"constructor_declaration",
				"field_declaration",
				"constant_declaration",
				"enum_constant",
			},
		},
		Documentation: blockComment("block_comment"),
		language: func() *sitter.Language {
			return sitter.NewLanguage(java.Language())
		},
	})
}
