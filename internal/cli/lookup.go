package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var lookupJSON bool

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <file> <symbol>",
	Short: "Show the documentation of every declaration with a name",
	Long: `Show the documentation comment of every declaration in a file whose name
matches the symbol exactly. Overloads and same-named members are all listed.

Example:
  cortex-hover lookup src/Greeter.java greet`,
	Args: cobra.ExactArgs(2),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "print the results as JSON")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	file, symbol := args[0], args[1]
	results, err := svc.Lookup(context.Background(), file, symbol)
	if err != nil {
		return err
	}

	if lookupJSON {
		return writeJSON(cmd.OutOrStdout(), results)
	}
	if len(results) == 0 {
		return fmt.Errorf("no declaration named %q in %s", symbol, file)
	}
	writeResults(cmd.OutOrStdout(), results)
	return nil
}
