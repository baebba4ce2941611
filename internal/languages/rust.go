package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"

	"github.com/mvp-joe/cortex-hover/internal/nodemodel"
)

func init() {
	register(&Language{
		Name:     "rust",
		Patterns: []string{"*.rs"},
		Grammar: nodemodel.Grammar{
			Declarations: []string{
				"function_item",
				"function_signature_item",
				"struct_item",
				"enum_item",
				"union_item",
				"trait_item",
				"impl_item",
				"type_item",
				"const_item",
				"static_item",
				"mod_item",
				"macro_definition",
				"field_declaration",
				"enum_variant",
			},
			Prefixes: []string{"attribute_item"},
		},
		Documentation: blockComment("block_comment"),
		language: func() *sitter.Language {
			return sitter.NewLanguage(rust.Language())
		},
	})
}
