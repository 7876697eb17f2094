package richtext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockTags maps block types to the HTML element they render as.
var blockTags = map[NodeType]string{
	Paragraph:       "p",
	Heading1:        "h1",
	Heading2:        "h2",
	Heading3:        "h3",
	Heading4:        "h4",
	Heading5:        "h5",
	Heading6:        "h6",
	OrderedList:     "ol",
	UnorderedList:   "ul",
	ListItem:        "li",
	HR:              "hr",
	Quote:           "blockquote",
	Table:           "table",
	TableRow:        "tr",
	TableCell:       "td",
	TableHeaderCell: "th",
}

// markTags maps mark types to the HTML element wrapping marked text.
var markTags = map[MarkType]string{
	Bold:          "b",
	Italic:        "i",
	Underline:     "u",
	Code:          "code",
	Superscript:   "sup",
	Subscript:     "sub",
	Strikethrough: "s",
}

// assetAttrs lists the data keys of an embedded asset rendered as attributes, in order.
var assetAttrs = []string{"src", "alt", "title"}

// RenderHTML renders d as an HTML fragment.
//
// Marks wrap text with the first mark innermost, so a text node with marks
// [italic, bold] renders as <b><i>x</i></b>. Embedded entries and resources
// render as nothing; embedded assets render as the element named by their
// "tag" data key (img when absent).
func RenderHTML(d *Document) string {
	var b strings.Builder
	_ = WriteHTML(&b, d)
	return b.String()
}

// WriteHTML renders d as an HTML fragment to w.
func WriteHTML(w io.Writer, d *Document) error {
	if d == nil {
		return nil
	}
	for _, n := range d.Content {
		for _, h := range renderNode(n) {
			if err := html.Render(w, h); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderNode(n Node) []*html.Node {
	switch v := n.(type) {
	case *Text:
		return []*html.Node{renderText(v)}
	case *Inline:
		if v.Type != Hyperlink {
			return renderChildren(v.Content)
		}
		a := element("a")
		setAttr(a, "href", v.Data["uri"])
		setAttr(a, "title", v.Data["title"])
		appendAll(a, renderChildren(v.Content))
		return []*html.Node{a}
	case *Block:
		return renderBlock(v)
	}
	return nil
}

func renderBlock(b *Block) []*html.Node {
	switch b.Type {
	case EmbeddedAsset:
		tag, _ := b.Data["tag"].(string)
		if tag == "" {
			tag = "img"
		}
		el := element(tag)
		for _, key := range assetAttrs {
			setAttr(el, key, b.Data[key])
		}
		return []*html.Node{el}
	case EmbeddedEntry, EmbeddedResource, DocumentType:
		return nil
	}
	tag, ok := blockTags[b.Type]
	if !ok {
		return renderChildren(b.Content)
	}
	el := element(tag)
	appendAll(el, renderChildren(b.Content))
	return []*html.Node{el}
}

func renderText(t *Text) *html.Node {
	node := &html.Node{Type: html.TextNode, Data: t.Value}
	for _, m := range t.Marks {
		tag, ok := markTags[m.Type]
		if !ok {
			continue
		}
		wrapper := element(tag)
		wrapper.AppendChild(node)
		node = wrapper
	}
	return node
}

func renderChildren(content []Node) []*html.Node {
	var out []*html.Node
	for _, c := range content {
		out = append(out, renderNode(c)...)
	}
	return out
}

func element(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}

func setAttr(n *html.Node, key string, v any) {
	s, ok := v.(string)
	if !ok || s == "" {
		return
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: s})
}

func appendAll(parent *html.Node, children []*html.Node) {
	for _, c := range children {
		parent.AppendChild(c)
	}
}
