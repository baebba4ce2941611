// Package hover answers "what is the documentation of the declaration here"
// for source files of every supported language.
package hover

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/maypok86/otter"
	"github.com/rs/zerolog/log"

	"github.com/mvp-joe/cortex-hover/internal/config"
	"github.com/mvp-joe/cortex-hover/internal/doccomment"
	"github.com/mvp-joe/cortex-hover/internal/languages"
	"github.com/mvp-joe/cortex-hover/internal/nodemodel"
)

var (
	// ErrUnsupportedLanguage indicates no language matches the file
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrNoDeclaration indicates nothing documentable exists at the position
	ErrNoDeclaration = errors.New("no declaration at position")

	// ErrInvalidPosition indicates a non-positive line or column
	ErrInvalidPosition = errors.New("invalid position")
)

// Result is the documentation of one declaration.
type Result struct {
	File          string `json:"file"`
	Language      string `json:"language"`
	Kind          string `json:"kind"`
	Name          string `json:"name,omitempty"`
	StartLine     int    `json:"start_line"`
	StartColumn   int    `json:"start_column"`
	EndLine       int    `json:"end_line"`
	EndColumn     int    `json:"end_column"`
	Documented    bool   `json:"documented"`
	Documentation string `json:"documentation,omitempty"`
	Comment       string `json:"comment,omitempty"` // raw comment token text
}

// cachedDocument is a parsed document plus the file state it was parsed from.
type cachedDocument struct {
	doc     *nodemodel.Document
	size    int64
	modTime time.Time
}

// Service resolves documentation for positions and symbols in source files.
// It is safe for concurrent use.
type Service struct {
	providers map[string]doccomment.Provider
	cache     otter.Cache[string, cachedDocument]
}

// Option configures a Service.
type Option func(*options)

type options struct {
	languages []*languages.Language
}

// WithLanguages restricts the service to the given languages.
func WithLanguages(langs ...*languages.Language) Option {
	return func(o *options) {
		o.languages = langs
	}
}

// NewService builds one documentation provider per language. Invalid
// documentation patterns are reported here.
func NewService(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	o := &options{languages: languages.All()}
	for _, opt := range opts {
		opt(o)
	}

	providers := make(map[string]doccomment.Provider, len(o.languages))
	var errs []error
	for _, lang := range o.languages {
		provider, err := doccomment.New(cfg.Documentation.For(lang.Name, lang.Documentation))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", lang.Name, err))
			continue
		}
		providers[lang.Name] = provider
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	capacity := cfg.Cache.MaxDocuments
	if capacity <= 0 {
		capacity = config.Default().Cache.MaxDocuments
	}
	cache, err := otter.MustBuilder[string, cachedDocument](capacity).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create document cache: %w", err)
	}

	return &Service{
		providers: providers,
		cache:     cache,
	}, nil
}

// Close releases the document cache.
func (s *Service) Close() {
	s.cache.Close()
}

// Supports reports whether the file belongs to a language the service documents.
func (s *Service) Supports(path string) bool {
	lang, ok := languages.ForPath(path)
	if !ok {
		return false
	}
	_, ok = s.providers[lang.Name]
	return ok
}

// Invalidate evicts the cached document of a file.
func (s *Service) Invalidate(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	s.cache.Delete(path)
	log.Debug().Str("file", path).Msg("document evicted")
}

// Hover returns the documentation of the innermost declaration at the
// 1-indexed line and column.
func (s *Service) Hover(ctx context.Context, path string, line, column int) (*Result, error) {
	if line < 1 || column < 1 {
		return nil, fmt.Errorf("%w: %d:%d", ErrInvalidPosition, line, column)
	}

	doc, provider, err := s.document(ctx, path)
	if err != nil {
		return nil, err
	}

	decl := doc.DeclarationAt(line, column)
	if decl == nil {
		return nil, fmt.Errorf("%w: %s:%d:%d", ErrNoDeclaration, path, line, column)
	}

	result := newResult(doc, decl, provider)
	return &result, nil
}

// Lookup returns the documentation of every declaration with the given name.
// An empty slice means no declaration has that name.
func (s *Service) Lookup(ctx context.Context, path, name string) ([]Result, error) {
	doc, provider, err := s.document(ctx, path)
	if err != nil {
		return nil, err
	}

	decls := doc.DeclarationsNamed(name)
	results := make([]Result, 0, len(decls))
	for _, decl := range decls {
		results = append(results, newResult(doc, decl, provider))
	}
	return results, nil
}

// List returns every declaration in the file with its documentation.
func (s *Service) List(ctx context.Context, path string) ([]Result, error) {
	doc, provider, err := s.document(ctx, path)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(doc.Declarations))
	for _, decl := range doc.Declarations {
		results = append(results, newResult(doc, decl, provider))
	}
	return results, nil
}

func newResult(doc *nodemodel.Document, decl *nodemodel.Declaration, provider doccomment.Provider) Result {
	result := Result{
		File:        doc.Path,
		Language:    doc.Language,
		Kind:        decl.Kind,
		Name:        decl.Name,
		StartLine:   decl.StartLine,
		StartColumn: decl.StartColumn,
		EndLine:     decl.EndLine,
		EndColumn:   decl.EndColumn,
	}

	if nodes := provider.DocumentationNodes(decl); len(nodes) > 0 {
		result.Comment = nodes[0].Text
	}
	result.Documentation, result.Documented = provider.Documentation(decl)
	return result
}

// document returns the parsed document for path, reusing the cached parse
// while the file's size and modification time are unchanged.
func (s *Service) document(ctx context.Context, path string) (*nodemodel.Document, doccomment.Provider, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	lang, ok := languages.ForPath(abs)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, path)
	}
	provider, ok := s.providers[lang.Name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s (%s disabled)", ErrUnsupportedLanguage, path, lang.Name)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, nil, err
	}

	if cached, ok := s.cache.Get(abs); ok && cached.size == info.Size() && cached.modTime.Equal(info.ModTime()) {
		log.Debug().Str("file", abs).Msg("document cache hit")
		return cached.doc, provider, nil
	}

	source, err := os.ReadFile(abs)
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	doc, err := lang.Parser().Parse(ctx, abs, source)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().
		Str("file", abs).
		Str("language", lang.Name).
		Int("tokens", len(doc.Tokens)).
		Int("declarations", len(doc.Declarations)).
		Dur("took", time.Since(start)).
		Msg("document parsed")

	s.cache.Set(abs, cachedDocument{doc: doc, size: info.Size(), modTime: info.ModTime()})
	return doc, provider, nil
}
