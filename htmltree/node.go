// Package htmltree lowers parsed HTML into the generic element/text tree
// consumed by the converter.
//
// The tree is deliberately small: elements carry a lower-case tag name, an
// attribute map and ordered children; text nodes carry their decoded value.
// Comments, doctypes and <template> contents never reach it. Parsing is
// delegated to golang.org/x/net/html; selector-based extraction uses goquery.
package htmltree

// Node is an Element or a Text. The set of implementations is closed.
type Node interface {
	htmlNode()
}

// Element is an HTML element.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []Node
}

// Text is an HTML text node.
type Text struct {
	Value string
}

func (*Element) htmlNode() {}
func (*Text) htmlNode()    {}

// NewElement creates an element. A nil attrs map is normalized to empty.
func NewElement(tag string, attrs map[string]string, children ...Node) *Element {
	if attrs == nil {
		attrs = map[string]string{}
	}
	if children == nil {
		children = []Node{}
	}
	return &Element{Tag: tag, Attrs: attrs, Children: children}
}

// NewText creates a text node.
func NewText(value string) *Text {
	return &Text{Value: value}
}

// Attr returns the value of the named attribute, or "" when absent.
func (e *Element) Attr(name string) string {
	return e.Attrs[name]
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attrs[name]
	return ok
}
