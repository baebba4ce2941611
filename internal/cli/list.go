package cli

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mvp-joe/cortex-hover/internal/discovery"
	"github.com/mvp-joe/cortex-hover/internal/hover"
)

var (
	listJSON  bool
	listQuiet bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [paths...]",
	Short: "List declarations and their documentation",
	Long: `List every declaration in the given files and directories together with its
documentation comment. Directories are searched recursively using the
paths.include and paths.ignore globs from the configuration.

Example:
  cortex-hover list src/
  cortex-hover list --json --quiet Greeter.java`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print the results as JSON")
	listCmd.Flags().BoolVarP(&listQuiet, "quiet", "q", false, "suppress progress output")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := hover.NewService(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	files, err := discovery.Expand(args, cfg.Paths.Include, cfg.Paths.Ignore)
	if err != nil {
		return err
	}

	progress := NewCLIProgressReporter(cmd.ErrOrStderr(), listQuiet)
	progress.OnFileProcessingStart(len(files))

	ctx := context.Background()
	start := time.Now()
	stats := ListStats{}
	results := []hover.Result{}

	for _, file := range files {
		found, err := svc.List(ctx, file)
		progress.OnFileProcessed(file)
		if errors.Is(err, hover.ErrUnsupportedLanguage) {
			log.Debug().Str("file", file).Msg("skipping unsupported file")
			stats.Skipped++
			continue
		}
		if err != nil {
			return err
		}

		stats.Files++
		stats.Declarations += len(found)
		for _, r := range found {
			if r.Documented {
				stats.Documented++
			}
		}
		results = append(results, found...)
	}
	stats.Duration = time.Since(start)
	progress.OnComplete(stats)

	if listJSON {
		return writeJSON(cmd.OutOrStdout(), results)
	}
	writeResults(cmd.OutOrStdout(), results)
	return nil
}
