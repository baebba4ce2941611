package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/cortex-hover/internal/hover"
)

var (
	hoverLine   int
	hoverColumn int
	hoverJSON   bool
)

// hoverCmd represents the hover command
var hoverCmd = &cobra.Command{
	Use:   "hover <file>",
	Short: "Show the documentation of the declaration at a position",
	Long: `Show the documentation comment of the innermost declaration that contains
the given 1-based line and column.

Example:
  cortex-hover hover src/Greeter.java --line 14 --column 5`,
	Args: cobra.ExactArgs(1),
	RunE: runHover,
}

func init() {
	hoverCmd.Flags().IntVarP(&hoverLine, "line", "l", 0, "1-based line")
	hoverCmd.Flags().IntVarP(&hoverColumn, "column", "c", 0, "1-based column")
	hoverCmd.Flags().BoolVar(&hoverJSON, "json", false, "print the result as JSON")
	_ = hoverCmd.MarkFlagRequired("line")
	_ = hoverCmd.MarkFlagRequired("column")
	rootCmd.AddCommand(hoverCmd)
}

func runHover(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	result, err := svc.Hover(context.Background(), args[0], hoverLine, hoverColumn)
	if err != nil {
		return err
	}

	if hoverJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	writeResult(cmd.OutOrStdout(), *result)
	return nil
}

// newService loads the configuration and builds a hover service from it.
func newService() (*hover.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return hover.NewService(cfg)
}
