package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/mvp-joe/cortex-hover/internal/nodemodel"
)

// typescriptGrammar is shared by the TypeScript and TSX grammars.
var typescriptGrammar = nodemodel.Grammar{
	Declarations: []string{
		"function_declaration",
		"generator_function_declaration",
		"class_declaration",
		"abstract_class_declaration",
		"interface_declaration",
		"type_alias_declaration",
		"enum_declaration",
		"method_definition",
		"method_signature",
		"abstract_method_signature",
		"public_field_definition",
		"property_signature",
		"lexical_declaration",
		"variable_declaration",
		"internal_module",
	},
	Wrappers: []string{"export_statement", "ambient_declaration"},
}

func init() {
	register(&Language{
		Name:          "typescript",
		Patterns:      []string{"*.ts", "*.mts", "*.cts"},
		Grammar:       typescriptGrammar,
		Documentation: blockComment("comment"),
		language: func() *sitter.Language {
			return sitter.NewLanguage(typescript.LanguageTypescript())
		},
	})

	register(&Language{
		Name:          "tsx",
		Patterns:      []string{"*.tsx", "*.jsx", "*.js", "*.mjs", "*.cjs"},
		Grammar:       typescriptGrammar,
		Documentation: blockComment("comment"),
		language: func() *sitter.Language {
			return sitter.NewLanguage(typescript.LanguageTSX())
		},
	})
}
