package markdown

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// Compile-time interface check.
var _ Converter = (*GoldmarkConverter)(nil)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "heading",
			input:    "# Title",
			contains: []string{"<h1>Title</h1>"},
		},
		{
			name:     "emphasis",
			input:    "**bold** and *italic*",
			contains: []string{"<strong>bold</strong>", "<em>italic</em>"},
		},
		{
			name:     "GFM strikethrough",
			input:    "~~gone~~",
			contains: []string{"<del>gone</del>"},
		},
		{
			name:     "GFM table",
			input:    "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<th>a</th>", "<td>1</td>"},
		},
		{
			name:     "fragment output",
			input:    "text",
			excludes: []string{"<html", "<body", "<!DOCTYPE"},
		},
		{
			name:     "raw HTML is not passed through",
			input:    "<script>alert(1)</script>",
			excludes: []string{"<script>"},
		},
	}

	conv := NewGoldmarkConverter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() = %q, want it to contain %q", got, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("ToHTML() = %q, should not contain %q", got, unwanted)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, "# x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
