package config

import (
	"github.com/mvp-joe/cortex-hover/internal/doccomment"
	"github.com/mvp-joe/cortex-hover/internal/languages"
)

// Config represents the complete cortex-hover configuration.
// It can be loaded from .cortex/hover.yml with environment variable overrides.
type Config struct {
	Paths         PathsConfig         `yaml:"paths" mapstructure:"paths"`
	Cache         CacheConfig         `yaml:"cache" mapstructure:"cache"`
	Documentation DocumentationConfig `yaml:"documentation" mapstructure:"documentation"`
}

// PathsConfig defines which files the list command walks.
type PathsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns for source files
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to skip
}

// CacheConfig bounds the parsed document cache.
type CacheConfig struct {
	MaxDocuments int `yaml:"max_documents" mapstructure:"max_documents"`
}

// DocumentationConfig overrides the per-language comment conventions.
// Precedence: languages.<name> → default → built-in language preset.
type DocumentationConfig struct {
	Default   doccomment.Config            `yaml:"default" mapstructure:"default"`
	Languages map[string]doccomment.Config `yaml:"languages" mapstructure:"languages"`
}

// For returns the effective documentation config of a language given its preset.
func (d DocumentationConfig) For(language string, preset doccomment.Config) doccomment.Config {
	return d.Languages[language].Merge(d.Default.Merge(preset))
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Include: defaultIncludes(),
			Ignore: []string{
				"node_modules/**",
				"vendor/**",
				".git/**",
				"dist/**",
				"build/**",
				"target/**",
				"__pycache__/**",
			},
		},
		Cache: CacheConfig{
			MaxDocuments: 256,
		},
		Documentation: DocumentationConfig{
			Languages: map[string]doccomment.Config{},
		},
	}
}

// defaultIncludes matches every file name a registered language claims.
func defaultIncludes() []string {
	var includes []string
	for _, lang := range languages.All() {
		for _, pattern := range lang.Patterns {
			includes = append(includes, "**/"+pattern)
		}
	}
	return includes
}
