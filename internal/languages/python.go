package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/mvp-joe/cortex-hover/internal/nodemodel"
)

func init() {
	register(&Language{
		Name:     "python",
		Patterns: []string{"*.py", "*.pyi"},
		Grammar: nodemodel.Grammar{
			Declarations: []string{
				"function_definition",
				"class_definition",
			},
			Wrappers: []string{"decorated_definition"},
		},
		Documentation: hashComment(),
		language: func() *sitter.Language {
			return sitter.NewLanguage(python.Language())
		},
	})
}
