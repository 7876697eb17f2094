package htmltree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Sentinel errors for parsing.
var (
	ErrParse                 = errors.New("HTML parsing failed")
	ErrInvalidSelector       = errors.New("invalid CSS selector")
	ErrInvalidWhitespaceMode = errors.New("invalid whitespace mode")
	ErrInvalidBaseURL        = errors.New("invalid base URL")
)

// Options configures lowering.
type Options struct {
	Whitespace WhitespaceMode // preserve (default) or remove
}

// ParseString parses an HTML fragment or document held in a string.
func ParseString(content string, opts Options) ([]Node, error) {
	return Parse(strings.NewReader(content), opts)
}

// Parse reads HTML from r and lowers it to a node sequence.
//
// Content starting with <!DOCTYPE or <html is parsed as a full document and
// the children of <body> are returned. Anything else is parsed as a fragment
// in a <template> context, so the result holds exactly the top-level nodes
// the caller wrote, including table parts such as a stray <tr> or <td>.
func Parse(r io.Reader, opts Options) ([]Node, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if isFullDocument(content) {
		doc, err := html.Parse(bytes.NewReader(content))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		body := findBody(doc)
		if body == nil {
			return []Node{}, nil
		}
		return lowerChildren(body, opts), nil
	}

	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Template,
		Data:     "template",
	}
	nodes, err := html.ParseFragment(bytes.NewReader(content), context)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return lowerAll(nodes, opts), nil
}

// ParseSelection parses a full HTML document from r and lowers every node
// matching the CSS selector, in document order. Matches nested inside an
// earlier match are lowered as part of that match only.
func ParseSelection(r io.Reader, selector string, opts Options) ([]Node, error) {
	matcher, err := compileSelector(selector)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	matches := doc.FindMatcher(matcher)
	out := []Node{}
	matches.Each(func(_ int, s *goquery.Selection) {
		if s.ParentsMatcher(matcher).Length() > 0 {
			return
		}
		for _, n := range s.Nodes {
			if lowered, ok := Lower(n, opts); ok {
				out = append(out, lowered)
			}
		}
	})
	return out, nil
}

// ValidateSelector reports whether selector is a valid CSS selector.
func ValidateSelector(selector string) error {
	_, err := compileSelector(selector)
	return err
}

func compileSelector(selector string) (cascadia.Selector, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, selector, err)
	}
	return sel, nil
}

// Lower converts a single x/net/html node. It reports false for nodes that
// never reach the tree: comments, doctypes, <template> elements and, under
// WhitespaceRemove, whitespace-only text.
func Lower(n *html.Node, opts Options) (Node, bool) {
	switch n.Type {
	case html.TextNode:
		if !opts.keepText(n.Data) {
			return nil, false
		}
		return &Text{Value: n.Data}, true
	case html.ElementNode:
		if n.DataAtom == atom.Template {
			return nil, false
		}
		attrs := make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			attrs[key] = a.Val
		}
		return &Element{
			Tag:      strings.ToLower(n.Data),
			Attrs:    attrs,
			Children: lowerChildren(n, opts),
		}, true
	}
	return nil, false
}

func lowerChildren(parent *html.Node, opts Options) []Node {
	out := []Node{}
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if lowered, ok := Lower(c, opts); ok {
			out = append(out, lowered)
		}
	}
	return out
}

func lowerAll(nodes []*html.Node, opts Options) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if lowered, ok := Lower(n, opts); ok {
			out = append(out, lowered)
		}
	}
	return out
}

// isFullDocument reports whether content starts with <!DOCTYPE or <html.
func isFullDocument(content []byte) bool {
	trimmed := bytes.ToLower(bytes.TrimSpace(content))
	return bytes.HasPrefix(trimmed, []byte("<!doctype")) || bytes.HasPrefix(trimmed, []byte("<html"))
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}
