package html2richtext

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-html2richtext/htmltree"
	"github.com/alnah/go-html2richtext/internal/markdown"
	"github.com/alnah/go-html2richtext/richtext"
)

// Converter turns HTML into rich text documents.
// Create with NewConverter and use Convert or ConvertAsync. A Converter is
// read-only after creation and safe for concurrent use.
type Converter struct {
	cfg        converterConfig
	table      map[string]rule
	deflt      rule
	text       textRule
	customText bool
	logger     *zap.Logger
	markdown   markdown.Converter
	err        error // option errors, reported by NewConverter
}

// NewConverter creates a Converter with the built-in rules and policies,
// then applies opts. All invalid options are reported together.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			whitespace:      htmltree.WhitespacePreserve,
			topLevelInlines: PolicyPreserve,
			topLevelText:    PolicyPreserve,
		},
		table:    builtinRules(),
		deflt:    unwrapRule(),
		text:     textNodeRule(),
		logger:   zap.NewNop(),
		markdown: markdown.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.err != nil {
		return nil, c.err
	}
	c.cfg.workers = ResolveWorkers(c.cfg.workers)
	return c, nil
}

// HTMLStringToDocument converts an HTML string with a one-off Converter.
// An empty string yields an empty document.
func HTMLStringToDocument(html string, opts ...Option) (*richtext.Document, error) {
	c, err := NewConverter(opts...)
	if err != nil {
		return nil, err
	}
	nodes, err := htmltree.ParseString(html, c.parseOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseHTML, err)
	}
	htmltree.ResolveURLs(nodes, c.cfg.baseURL)
	return c.ConvertNodes(context.Background(), nodes)
}

// Convert parses input and converts it on the calling goroutine.
// A rule error is returned unchanged and no document is produced.
func (c *Converter) Convert(ctx context.Context, input Input) (*richtext.Document, error) {
	return c.convert(ctx, input, false)
}

// ConvertAsync parses input and converts it with sibling subtrees fanned out
// over goroutines. The document is identical to the one Convert produces for
// the same rules.
func (c *Converter) ConvertAsync(ctx context.Context, input Input) (*richtext.Document, error) {
	return c.convert(ctx, input, true)
}

// ConvertNodes converts an already lowered HTML tree synchronously.
func (c *Converter) ConvertNodes(ctx context.Context, nodes []htmltree.Node) (*richtext.Document, error) {
	return c.convertNodes(ctx, nodes, false)
}

// ConvertNodesAsync converts an already lowered HTML tree asynchronously.
func (c *Converter) ConvertNodesAsync(ctx context.Context, nodes []htmltree.Node) (*richtext.Document, error) {
	return c.convertNodes(ctx, nodes, true)
}

func (c *Converter) convert(ctx context.Context, input Input, async bool) (*richtext.Document, error) {
	if err := c.validateInput(input); err != nil {
		return nil, err
	}
	nodes, err := c.parse(ctx, input)
	if err != nil {
		return nil, err
	}
	return c.convertNodes(ctx, nodes, async)
}

// convertNodes runs the engine, then repairs and assembles the document.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) convertNodes(ctx context.Context, nodes []htmltree.Node, async bool) (doc *richtext.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	converted, err := c.newEngine(ctx, async).run(nodes)
	if err != nil {
		return nil, err
	}
	doc = c.assemble(converted)

	c.logger.Debug("converted document",
		zap.Bool("async", async),
		zap.Int("inputNodes", len(nodes)),
		zap.Int("topLevelNodes", len(doc.Content)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return doc, nil
}

// parse lowers the input to an HTML tree, rendering Markdown first.
func (c *Converter) parse(ctx context.Context, input Input) ([]htmltree.Node, error) {
	source := input.HTML
	if strings.TrimSpace(input.Markdown) != "" {
		rendered, err := c.markdown.ToHTML(ctx, input.Markdown)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("%w: %v", ErrMarkdownConversion, err)
		}
		source = rendered
	}

	var (
		nodes []htmltree.Node
		err   error
	)
	if input.Selector != "" {
		nodes, err = htmltree.ParseSelection(strings.NewReader(source), input.Selector, c.parseOptions())
	} else {
		nodes, err = htmltree.ParseString(source, c.parseOptions())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseHTML, err)
	}
	htmltree.ResolveURLs(nodes, c.cfg.baseURL)
	return nodes, nil
}

func (c *Converter) parseOptions() htmltree.Options {
	return htmltree.Options{Whitespace: c.cfg.whitespace}
}

// validateInput checks that exactly one source is present.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their input checked earlier, when files are discovered.
func (c *Converter) validateInput(input Input) error {
	hasHTML := strings.TrimSpace(input.HTML) != ""
	hasMarkdown := strings.TrimSpace(input.Markdown) != ""
	switch {
	case hasHTML && hasMarkdown:
		return ErrAmbiguousInput
	case !hasHTML && !hasMarkdown:
		return ErrEmptyInput
	}
	return nil
}
