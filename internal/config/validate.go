package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/mvp-joe/cortex-hover/internal/doccomment"
	"github.com/mvp-joe/cortex-hover/internal/languages"
)

var (
	// ErrInvalidGlob indicates a path pattern that does not compile
	ErrInvalidGlob = errors.New("invalid glob pattern")

	// ErrEmptyInclude indicates no include patterns were configured
	ErrEmptyInclude = errors.New("empty include patterns")

	// ErrInvalidCacheSize indicates a non-positive document cache size
	ErrInvalidCacheSize = errors.New("invalid cache size")

	// ErrUnknownLanguage indicates a documentation section for an unsupported language
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrInvalidPattern indicates a documentation pattern that is not a valid regular expression
	ErrInvalidPattern = doccomment.ErrInvalidPattern
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validatePaths(&cfg.Paths); err != nil {
		errs = append(errs, err)
	}

	if cfg.Cache.MaxDocuments <= 0 {
		errs = append(errs, fmt.Errorf("%w: max_documents must be positive, got %d", ErrInvalidCacheSize, cfg.Cache.MaxDocuments))
	}

	if err := validateDocumentation(&cfg.Documentation); err != nil {
		errs = append(errs, err)
	}

	return joinErrors(errs)
}

func validatePaths(cfg *PathsConfig) error {
	var errs []error

	if len(cfg.Include) == 0 {
		errs = append(errs, ErrEmptyInclude)
	}

	for _, pattern := range append(append([]string{}, cfg.Include...), cfg.Ignore...) {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: '%s': %v", ErrInvalidGlob, pattern, err))
		}
	}

	return joinErrors(errs)
}

// validateDocumentation compiles the effective patterns of every language so
// a bad expression is reported at load time.
func validateDocumentation(cfg *DocumentationConfig) error {
	var errs []error

	names := make([]string, 0, len(cfg.Languages))
	for name := range cfg.Languages {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, ok := languages.ByName(name); !ok {
			errs = append(errs, fmt.Errorf("%w: '%s' (supported: %s)", ErrUnknownLanguage, name, strings.Join(languages.Names(), ", ")))
		}
	}

	for _, lang := range languages.All() {
		if _, err := doccomment.New(cfg.For(lang.Name, lang.Documentation)); err != nil {
			errs = append(errs, fmt.Errorf("documentation.%s: %w", lang.Name, err))
		}
	}

	return joinErrors(errs)
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	return errors.Join(errs...)
}
