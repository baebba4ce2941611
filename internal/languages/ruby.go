package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"

	"github.com/mvp-joe/cortex-hover/internal/nodemodel"
)

func init() {
	register(&Language{
		Name:     "ruby",
		Patterns: []string{"*.rb", "*.rake", "Rakefile", "Gemfile"},
		Grammar: nodemodel.Grammar{
			Declarations: []string{
				"method",
				"singleton_method",
				"class",
				"module",
			},
		},
		Documentation: hashComment(),
		language: func() *sitter.Language {
			return sitter.NewLanguage(ruby.Language())
		},
	})
}
