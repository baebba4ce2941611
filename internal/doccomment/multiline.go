package doccomment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mvp-joe/cortex-hover/internal/nodemodel"
)

// Default patterns model /** ... */ block comments with an optional leading * per line.
const (
	DefaultRuleName    = "ML_COMMENT"
	DefaultStartTag    = `/\*\*?`
	DefaultEndTag      = `\*/`
	DefaultLinePrefix  = `\** ?`
	DefaultLinePostfix = `\**`
	DefaultWhitespace  = `( |\t)*`
)

// ErrInvalidPattern indicates a configured pattern is not a valid regular expression.
var ErrInvalidPattern = errors.New("invalid documentation pattern")

// Config configures a MultiLineCommentProvider. Empty fields use the defaults.
type Config struct {
	RuleName    string `yaml:"rule_name" mapstructure:"rule_name"`       // comment rule, compared case-insensitively
	StartTag    string `yaml:"start_tag" mapstructure:"start_tag"`       // regular expression
	EndTag      string `yaml:"end_tag" mapstructure:"end_tag"`           // regular expression
	LinePrefix  string `yaml:"line_prefix" mapstructure:"line_prefix"`   // regular expression
	LinePostfix string `yaml:"line_postfix" mapstructure:"line_postfix"` // regular expression
	Whitespace  string `yaml:"whitespace" mapstructure:"whitespace"`     // regular expression
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		RuleName:    DefaultRuleName,
		StartTag:    DefaultStartTag,
		EndTag:      DefaultEndTag,
		LinePrefix:  DefaultLinePrefix,
		LinePostfix: DefaultLinePostfix,
		Whitespace:  DefaultWhitespace,
	}
}

// Merge returns c with every empty field taken from base.
func (c Config) Merge(base Config) Config {
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return Config{
		RuleName:    pick(c.RuleName, base.RuleName),
		StartTag:    pick(c.StartTag, base.StartTag),
		EndTag:      pick(c.EndTag, base.EndTag),
		LinePrefix:  pick(c.LinePrefix, base.LinePrefix),
		LinePostfix: pick(c.LinePostfix, base.LinePostfix),
		Whitespace:  pick(c.Whitespace, base.Whitespace),
	}
}

// MultiLineCommentProvider attaches the nearest preceding block comment to a node.
// It is immutable after construction and safe for concurrent use.
type MultiLineCommentProvider struct {
	config Config

	candidate   *regexp.Regexp // start tag at the beginning, dot matches newline
	startTag    *regexp.Regexp
	endTag      *regexp.Regexp
	linePrefix  *regexp.Regexp
	linePostfix *regexp.Regexp
}

var _ Provider = (*MultiLineCommentProvider)(nil)

// New compiles the configured patterns. Pattern errors are reported here,
// never during extraction.
func New(cfg Config) (*MultiLineCommentProvider, error) {
	cfg = cfg.Merge(DefaultConfig())

	p := &MultiLineCommentProvider{config: cfg}

	patterns := []struct {
		name string
		expr string
		dst  **regexp.Regexp
	}{
		{"start_tag", `\A(?s:(?:` + cfg.StartTag + `))`, &p.candidate},
		{"start_tag", `\A(?:` + cfg.StartTag + `)`, &p.startTag},
		{"end_tag", `(?:` + cfg.EndTag + `)\z`, &p.endTag},
		{"line_prefix", `(?m)^(?:` + cfg.Whitespace + `)(?:` + cfg.LinePrefix + `)`, &p.linePrefix},
		// The eol group keeps a carriage return so CRLF line ends survive.
		{"line_postfix", `(?m)(?:` + cfg.Whitespace + `)(?:` + cfg.LinePostfix + `)(?:` + cfg.Whitespace + `)(?P<eol>\r?)$`, &p.linePostfix},
	}

	var errs []error
	for _, pat := range patterns {
		re, err := regexp.Compile(pat.expr)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, pat.name, err))
			continue
		}
		*pat.dst = re
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return p, nil
}

// Config returns the effective configuration with defaults applied.
func (p *MultiLineCommentProvider) Config() Config {
	return p.config
}

// DocumentationNodes returns the last comment token that precedes the node's
// first significant token, or an empty slice.
func (p *MultiLineCommentProvider) DocumentationNodes(node nodemodel.Node) []nodemodel.Token {
	if node == nil {
		return nil
	}

	var found *nodemodel.Token
	leaves := node.Leaves()
	for i := range leaves {
		leaf := &leaves[i]
		if !leaf.Hidden {
			break
		}
		if strings.EqualFold(leaf.Rule, p.config.RuleName) && p.candidate.MatchString(leaf.Text) {
			found = leaf
		}
	}

	if found == nil {
		return nil
	}
	return []nodemodel.Token{*found}
}

// Documentation returns the node's comment with delimiters and line
// decorations removed.
func (p *MultiLineCommentProvider) Documentation(node nodemodel.Node) (string, bool) {
	nodes := p.DocumentationNodes(node)
	if len(nodes) == 0 {
		return "", false
	}
	return p.Normalize(nodes[0].Text), true
}

// Normalize strips the comment syntax from raw comment text.
func (p *MultiLineCommentProvider) Normalize(text string) string {
	text = p.startTag.ReplaceAllString(text, "")
	text = p.endTag.ReplaceAllString(text, "")
	text = p.linePrefix.ReplaceAllString(text, "")
	text = p.linePostfix.ReplaceAllString(text, "${eol}")
	return strings.TrimSpace(text)
}
