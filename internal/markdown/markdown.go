// Package markdown renders Markdown input to an HTML fragment so it can go
// through the same conversion path as HTML input.
package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ErrConversion indicates the Markdown renderer failed.
var ErrConversion = errors.New("markdown conversion failed")

// Converter abstracts Markdown to HTML conversion.
type Converter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions.
//
// Raw HTML embedded in the Markdown is dropped: goldmark's safe renderer is
// kept so Markdown input never injects markup the caller did not write as
// Markdown.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Goldmark has no context support, so rendering runs on a goroutine and the
// call returns early when ctx is done.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(Preprocess(content)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrConversion, err)}
			return
		}
		done <- result{html: expandHighlights(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
