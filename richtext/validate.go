package richtext

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors reported by Validate.
var (
	ErrNotTopLevel     = errors.New("node not allowed at document root")
	ErrNestedDocument  = errors.New("document nested inside document")
	ErrUnknownNodeType = errors.New("unknown node type")
	ErrUnknownMarkType = errors.New("unknown mark type")
	ErrInvalidChild    = errors.New("node not allowed in parent")
	ErrMissingURI      = errors.New("hyperlink without uri")
	ErrNilNode         = errors.New("nil node")
)

// ValidationError locates a schema violation in a document.
type ValidationError struct {
	Path string // e.g. "content[2].content[0]"
	Err  error
}

func (e *ValidationError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks d against the structural rules of the schema and returns
// every violation found, joined with errors.Join. It returns nil for a
// conformant document.
//
// Rules checked:
//   - document children are top-level-eligible blocks
//   - lists hold list items, tables hold rows, rows hold cells
//   - list items, cells and quotes hold blocks (no bare inline or text)
//   - paragraphs, headings and inlines hold inlines and text only
//   - hr and embedded blocks have no children
//   - hyperlinks carry a string "uri"
//   - node and mark types belong to the vocabularies
func Validate(d *Document) error {
	if d == nil {
		return ErrNilNode
	}
	v := &validator{}
	for i, n := range d.Content {
		path := "content[" + strconv.Itoa(i) + "]"
		if n != nil && !IsTopLevel(n) {
			v.fail(path, fmt.Errorf("%w: %s", ErrNotTopLevel, n.NodeType()))
		}
		v.node(path, n)
	}
	return errors.Join(v.errs...)
}

type validator struct {
	errs []error
}

func (v *validator) fail(path string, err error) {
	v.errs = append(v.errs, &ValidationError{Path: path, Err: err})
}

func (v *validator) node(path string, n Node) {
	switch n := n.(type) {
	case nil:
		v.fail(path, ErrNilNode)
	case *Text:
		for _, m := range n.Marks {
			if !IsMarkType(m.Type) {
				v.fail(path, fmt.Errorf("%w: %q", ErrUnknownMarkType, m.Type))
			}
		}
	case *Inline:
		if !IsInlineType(n.Type) {
			v.fail(path, fmt.Errorf("%w: %q", ErrUnknownNodeType, n.Type))
		}
		if n.Type == Hyperlink {
			if _, ok := n.Data["uri"].(string); !ok {
				v.fail(path, ErrMissingURI)
			}
		}
		v.children(path, n.Type, n.Content, allowInlineContent)
	case *Block:
		v.block(path, n)
	}
}

func (v *validator) block(path string, b *Block) {
	switch b.Type {
	case DocumentType:
		v.fail(path, ErrNestedDocument)
	case Paragraph, Heading1, Heading2, Heading3, Heading4, Heading5, Heading6:
		v.children(path, b.Type, b.Content, allowInlineContent)
	case OrderedList, UnorderedList:
		v.children(path, b.Type, b.Content, allowTypes(ListItem))
	case Table:
		v.children(path, b.Type, b.Content, allowTypes(TableRow))
	case TableRow:
		v.children(path, b.Type, b.Content, allowTypes(TableCell, TableHeaderCell))
	case ListItem, Quote, TableCell, TableHeaderCell:
		v.children(path, b.Type, b.Content, allowBlocks)
	case HR, EmbeddedEntry, EmbeddedAsset, EmbeddedResource:
		v.children(path, b.Type, b.Content, allowNothing)
	default:
		v.fail(path, fmt.Errorf("%w: %q", ErrUnknownNodeType, b.Type))
	}
}

func (v *validator) children(path string, parent NodeType, content []Node, allow func(Node) bool) {
	for i, c := range content {
		childPath := path + ".content[" + strconv.Itoa(i) + "]"
		if c != nil && !allow(c) {
			v.fail(childPath, fmt.Errorf("%w: %s in %s", ErrInvalidChild, c.NodeType(), parent))
		}
		v.node(childPath, c)
	}
}

func allowInlineContent(n Node) bool { return IsInline(n) || IsText(n) }

func allowBlocks(n Node) bool {
	b, ok := n.(*Block)
	return ok && b.Type != ListItem && b.Type != TableRow && b.Type != TableCell && b.Type != TableHeaderCell
}

func allowNothing(Node) bool { return false }

func allowTypes(types ...NodeType) func(Node) bool {
	return func(n Node) bool {
		b, ok := n.(*Block)
		if !ok {
			return false
		}
		for _, t := range types {
			if b.Type == t {
				return true
			}
		}
		return false
	}
}
