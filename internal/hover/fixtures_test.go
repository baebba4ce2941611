package hover

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFixtures documents the shared testdata sources of every language.
// An empty want means the declaration is undocumented.
func TestFixtures(t *testing.T) {
	t.Parallel()

	svc := newService(t, nil)
	root := filepath.Join("..", "..", "testdata", "code")

	tests := []struct {
		file   string
		symbol string
		kind   string
		want   string
	}{
		{"java/Simple.java", "Simple", "class_declaration", "Serves greetings over HTTP."},
		{"java/Simple.java", "Simple", "constructor_declaration", "Creates a server.\n\n@param config settings by name"},
		{"java/Simple.java", "DEFAULT_PORT", "field_declaration", "Default port."},
		{"java/Simple.java", "config", "field_declaration", ""},
		{"java/Simple.java", "handle", "method_declaration", "Handles one request.\n@param path the request path\n@return the response body"},
		{"java/Simple.java", "undocumented", "method_declaration", ""},

		{"c/simple.c", "config", "struct_specifier", "Server settings."},
		{"c/simple.c", "config_t", "type_definition", "Server settings."},
		{"c/simple.c", "default_port", "declaration", "Default port."},
		{"c/simple.c", "serve", "function_definition", "Starts serving.\n@return zero on success"},
		{"c/simple.c", "undocumented", "function_definition", ""},

		{"php/simple.php", "Simple", "class_declaration", "Serves greetings over HTTP."},
		{"php/simple.php", "handle", "method_declaration", "Handles one request.\n@param string $path the request path"},
		{"php/simple.php", "undocumented", "method_declaration", ""},
		{"php/simple.php", "new_server", "function_definition", "Creates a server."},

		{"rust/simple.rs", "Config", "struct_item", "Server settings."},
		{"rust/simple.rs", "DEFAULT_PORT", "const_item", "Default port."},
		{"rust/simple.rs", "handle", "function_item", "Handles one request."},
		{"rust/simple.rs", "undocumented", "function_item", ""},

		{"typescript/simple.ts", "Config", "interface_declaration", "Server settings."},
		{"typescript/simple.ts", "handle", "function_declaration", "Handles one request.\n@param path the request path"},
		{"typescript/simple.ts", "Server", "class_declaration", "Serves greetings over HTTP."},
		{"typescript/simple.ts", "listen", "method_definition", "Starts listening."},
		{"typescript/simple.ts", "undocumented", "function_declaration", ""},

		{"python/simple.py", "Simple", "class_definition", "Serves greetings over HTTP."},
		{"python/simple.py", "handle", "function_definition", "Handles one request."},
		{"python/simple.py", "undocumented", "function_definition", ""},
		{"python/simple.py", "new_server", "function_definition", "Creates a server."},

		{"ruby/simple.rb", "Simple", "class", "Serves greetings over HTTP."},
		{"ruby/simple.rb", "handle", "method", "Handles one request."},
		{"ruby/simple.rb", "undocumented", "method", ""},
		{"ruby/simple.rb", "Helpers", "module", "Helpers for servers."},
	}

	for _, tt := range tests {
		t.Run(tt.file+"/"+tt.symbol+"/"+tt.kind, func(t *testing.T) {
			results, err := svc.Lookup(context.Background(), filepath.Join(root, filepath.FromSlash(tt.file)), tt.symbol)
			require.NoError(t, err)

			var found *Result
			for i := range results {
				if results[i].Kind == tt.kind {
					found = &results[i]
					break
				}
			}
			require.NotNil(t, found, "no %s named %s in %v", tt.kind, tt.symbol, results)

			assert.Equal(t, tt.want != "", found.Documented)
			assert.Equal(t, tt.want, found.Documentation)
		})
	}
}
