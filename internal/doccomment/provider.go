// Package doccomment extracts documentation comments attached to syntax nodes.
package doccomment

import "github.com/mvp-joe/cortex-hover/internal/nodemodel"

// Provider produces documentation for syntax nodes.
type Provider interface {
	// Documentation returns the normalized documentation of the node.
	// The boolean is false when the node is undocumented.
	Documentation(node nodemodel.Node) (string, bool)

	// DocumentationNodes returns the tokens the documentation was taken from.
	// The slice is empty when the node is undocumented.
	DocumentationNodes(node nodemodel.Node) []nodemodel.Token
}
