package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mvp-joe/cortex-hover/internal/hover"
)

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeResult prints one declaration header followed by its documentation,
// indented by two spaces.
func writeResult(w io.Writer, r hover.Result) {
	name := r.Name
	if name == "" {
		name = "(anonymous)"
	}
	fmt.Fprintf(w, "%s:%d:%d %s %s\n", r.File, r.StartLine, r.StartColumn, r.Kind, name)

	if !r.Documented {
		fmt.Fprintln(w, "  (undocumented)")
		return
	}
	for _, line := range strings.Split(r.Documentation, "\n") {
		fmt.Fprintf(w, "  %s\n", strings.TrimRight(line, "\r"))
	}
}

func writeResults(w io.Writer, results []hover.Result) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeResult(w, r)
	}
}
