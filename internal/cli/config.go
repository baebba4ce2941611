package cli

import (
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	"github.com/mvp-joe/cortex-hover/internal/config"
	"github.com/mvp-joe/cortex-hover/internal/doccomment"
	"github.com/mvp-joe/cortex-hover/internal/languages"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, .cortex/hover.yml and CORTEX_HOVER_*
environment variables are applied. Documentation settings are shown fully
resolved for every supported language.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// effectiveConfig is the resolved view printed by the config command.
type effectiveConfig struct {
	Paths         config.PathsConfig           `yaml:"paths"`
	Cache         config.CacheConfig           `yaml:"cache"`
	Documentation map[string]doccomment.Config `yaml:"documentation"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := effectiveConfig{
		Paths:         cfg.Paths,
		Cache:         cfg.Cache,
		Documentation: make(map[string]doccomment.Config),
	}
	for _, lang := range languages.All() {
		out.Documentation[lang.Name] = cfg.Documentation.For(lang.Name, lang.Documentation)
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
