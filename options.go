package html2richtext

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/alnah/go-html2richtext/htmltree"
	"github.com/alnah/go-html2richtext/internal/markdown"
)

// Option configures a Converter. Invalid values are reported by NewConverter.
type Option func(*Converter)

// converterConfig holds the policies of a Converter.
type converterConfig struct {
	whitespace      htmltree.WhitespaceMode
	topLevelInlines Policy
	topLevelText    Policy
	workers         int
	baseURL         *url.URL
}

// WithTagConverter sets the rule for tag, replacing the built-in one.
// Tag names are case-insensitive.
func WithTagConverter(tag string, fn TagConverter) Option {
	return func(c *Converter) {
		if fn == nil {
			c.fail(fmt.Errorf("%w: tag %q", ErrNilConverter, tag))
			return
		}
		c.setRule(tag, func(r *rule) { r.sync = fn })
	}
}

// WithTagConverters sets several tag rules at once.
func WithTagConverters(rules map[string]TagConverter) Option {
	return func(c *Converter) {
		for tag, fn := range rules {
			WithTagConverter(tag, fn)(c)
		}
	}
}

// WithAsyncTagConverter sets the asynchronous rule for tag. Combined with
// WithTagConverter for the same tag, each execution mode uses its own form.
func WithAsyncTagConverter(tag string, fn AsyncTagConverter) Option {
	return func(c *Converter) {
		if fn == nil {
			c.fail(fmt.Errorf("%w: tag %q", ErrNilConverter, tag))
			return
		}
		c.setRule(tag, func(r *rule) { r.async = fn })
	}
}

// WithDefaultTagConverter sets the rule for tags without an entry.
// The built-in default keeps the children and drops the element.
func WithDefaultTagConverter(fn TagConverter) Option {
	return func(c *Converter) {
		if fn == nil {
			c.fail(fmt.Errorf("%w: default tag converter", ErrNilConverter))
			return
		}
		c.deflt = customize(c.deflt, func(r *rule) { r.sync = fn })
	}
}

// WithAsyncDefaultTagConverter sets the asynchronous rule for tags without an entry.
func WithAsyncDefaultTagConverter(fn AsyncTagConverter) Option {
	return func(c *Converter) {
		if fn == nil {
			c.fail(fmt.Errorf("%w: default tag converter", ErrNilConverter))
			return
		}
		c.deflt = customize(c.deflt, func(r *rule) { r.async = fn })
	}
}

// WithTextConverter sets the rule for text nodes.
func WithTextConverter(fn TextConverter) Option {
	return func(c *Converter) {
		if fn == nil {
			c.fail(fmt.Errorf("%w: text converter", ErrNilConverter))
			return
		}
		if !c.customText {
			c.text = textRule{}
			c.customText = true
		}
		c.text.sync = fn
	}
}

// WithAsyncTextConverter sets the asynchronous rule for text nodes.
func WithAsyncTextConverter(fn AsyncTextConverter) Option {
	return func(c *Converter) {
		if fn == nil {
			c.fail(fmt.Errorf("%w: text converter", ErrNilConverter))
			return
		}
		if !c.customText {
			c.text = textRule{}
			c.customText = true
		}
		c.text.async = fn
	}
}

// WithTagMapping maps tags to targets by name. A target is a block or inline
// node type ("paragraph", "hyperlink"), a mark type ("bold"), or one of
// "unwrap" and "drop". It is the form used by configuration files.
func WithTagMapping(mapping map[string]string) Option {
	return func(c *Converter) {
		for tag, target := range mapping {
			r, err := mappedRule(target)
			if err != nil {
				c.fail(fmt.Errorf("tag %q: %w", tag, err))
				continue
			}
			c.setRule(tag, func(dst *rule) { *dst = r })
		}
	}
}

// WithWhitespace sets how whitespace-only text is lowered.
func WithWhitespace(mode htmltree.WhitespaceMode) Option {
	return func(c *Converter) {
		parsed, err := htmltree.ParseWhitespaceMode(string(mode))
		if err != nil {
			c.fail(fmt.Errorf("%w: %q", ErrInvalidWhitespace, mode))
			return
		}
		c.cfg.whitespace = parsed
	}
}

// WithTopLevelInlines sets the policy for inline nodes left at the top level.
func WithTopLevelInlines(p Policy) Option {
	return func(c *Converter) {
		parsed, err := ParsePolicy(string(p))
		if err != nil {
			c.fail(fmt.Errorf("top-level inlines: %w", err))
			return
		}
		c.cfg.topLevelInlines = parsed
	}
}

// WithTopLevelText sets the policy for text nodes left at the top level.
func WithTopLevelText(p Policy) Option {
	return func(c *Converter) {
		parsed, err := ParsePolicy(string(p))
		if err != nil {
			c.fail(fmt.Errorf("top-level text: %w", err))
			return
		}
		c.cfg.topLevelText = parsed
	}
}

// WithMaxWorkers bounds the goroutines of an asynchronous conversion.
// Zero selects ResolveWorkers(0).
func WithMaxWorkers(n int) Option {
	return func(c *Converter) {
		if n < 0 {
			c.fail(fmt.Errorf("%w: %d", ErrInvalidWorkers, n))
			return
		}
		c.cfg.workers = n
	}
}

// WithBaseURL resolves relative link and media URLs (href, src, poster)
// against base before conversion. The base must be absolute.
func WithBaseURL(base string) Option {
	return func(c *Converter) {
		if strings.TrimSpace(base) == "" {
			c.cfg.baseURL = nil
			return
		}
		u, err := htmltree.ParseBaseURL(base)
		if err != nil {
			c.fail(fmt.Errorf("%w: %w", ErrInvalidBaseURL, err))
			return
		}
		c.cfg.baseURL = u
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// withMarkdownConverter replaces the Markdown front end (tests).
func withMarkdownConverter(m markdown.Converter) Option {
	return func(c *Converter) {
		c.markdown = m
	}
}

// setRule updates the entry for tag. The first caller-supplied form replaces
// a built-in entry entirely, so a built-in async form never shadows a
// caller's synchronous rule.
func (c *Converter) setRule(tag string, update func(*rule)) {
	name := strings.ToLower(strings.TrimSpace(tag))
	if name == "" {
		c.fail(fmt.Errorf("%w: %q", ErrInvalidTag, tag))
		return
	}
	c.table[name] = customize(c.table[name], update)
}

func customize(r rule, update func(*rule)) rule {
	if !r.custom {
		r = rule{custom: true}
	}
	update(&r)
	r.custom = true
	return r
}

func (c *Converter) fail(err error) {
	c.err = multierr.Append(c.err, err)
}
