package markdown

import (
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters, which pass
// through goldmark unchanged so the safe renderer can stay on. They become
// <mark> elements once the HTML is rendered.
const (
	markStart = "\uE000"
	markEnd   = "\uE001"
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==([^=\n]+?)==`)
)

// Preprocess prepares Markdown for rendering: line endings become \n,
// ==text== becomes highlight placeholders and runs of blank lines shrink to one.
func Preprocess(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = highlightPattern.ReplaceAllString(content, markStart+"$1"+markEnd)
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// expandHighlights turns highlight placeholders in rendered HTML into <mark>.
func expandHighlights(html string) string {
	if !strings.Contains(html, markStart) {
		return html
	}
	return strings.NewReplacer(markStart, "<mark>", markEnd, "</mark>").Replace(html)
}
