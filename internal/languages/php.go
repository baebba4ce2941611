package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"

	"github.com/mvp-joe/cortex-hover/internal/nodemodel"
)

func init() {
	register(&Language{
		Name:     "php",
		Patterns: []string{"*.php"},
		Grammar: nodemodel.Grammar{
			Declarations: []string{
				"function_definition",
				"class_declaration",
				"interface_declaration",
				"trait_declaration",
				"enum_declaration",
				"method_declaration",
				"property_declaration",
				"const_declaration",
			},
		},
		Documentation: blockComment("comment"),
		language: func() *sitter.Language {
			return sitter.NewLanguage(php.LanguagePHP())
		},
	})
}
