package richtext

// Data is the opaque payload carried by every node (link URI, asset reference, ...).
type Data map[string]any

// Mark is an inline formatting trait attached to a text node.
type Mark struct {
	Type MarkType `json:"type" yaml:"type"`
}

// Node is a block, inline or text node. The set of implementations is closed.
type Node interface {
	NodeType() NodeType
	node()
}

// Block is structural content. Content may hold blocks, inlines and text.
type Block struct {
	Type    NodeType
	Content []Node
	Data    Data
}

// Inline is content embedded in a block's flow. Content may hold inlines and text.
type Inline struct {
	Type    NodeType
	Content []Node
	Data    Data
}

// Text is a string value with an ordered set of marks.
type Text struct {
	Value string
	Marks []Mark
	Data  Data
}

// Document is the root of a converted tree. It is not a Node: it is built
// once per conversion and never nested.
type Document struct {
	Content []Node
	Data    Data
}

func (b *Block) NodeType() NodeType  { return b.Type }
func (i *Inline) NodeType() NodeType { return i.Type }
func (t *Text) NodeType() NodeType   { return TextType }

func (*Block) node()  {}
func (*Inline) node() {}
func (*Text) node()   {}

// NewBlock creates a block node. A nil content slice is normalized to empty.
func NewBlock(t NodeType, content ...Node) *Block {
	return &Block{Type: t, Content: nonNil(content), Data: Data{}}
}

// NewInline creates an inline node with the given data payload.
func NewInline(t NodeType, data Data, content ...Node) *Inline {
	if data == nil {
		data = Data{}
	}
	return &Inline{Type: t, Content: nonNil(content), Data: data}
}

// NewText creates a text node. The marks slice is copied.
func NewText(value string, marks ...Mark) *Text {
	return &Text{Value: value, Marks: cloneMarks(marks), Data: Data{}}
}

// NewDocument creates the root document node.
func NewDocument(content ...Node) *Document {
	return &Document{Content: nonNil(content), Data: Data{}}
}

// WithData returns a copy of b whose payload is data.
func (b *Block) WithData(data Data) *Block {
	if data == nil {
		data = Data{}
	}
	return &Block{Type: b.Type, Content: b.Content, Data: data}
}

// WithMarks returns a copy of t whose marks are marks followed by the existing ones.
// The receiver is left untouched.
func (t *Text) WithMarks(marks ...Mark) *Text {
	merged := make([]Mark, 0, len(marks)+len(t.Marks))
	merged = append(merged, marks...)
	merged = append(merged, t.Marks...)
	return &Text{Value: t.Value, Marks: merged, Data: t.Data}
}

// HasMark reports whether t carries a mark of type m.
func (t *Text) HasMark(m MarkType) bool {
	for _, mk := range t.Marks {
		if mk.Type == m {
			return true
		}
	}
	return false
}

// PlainText concatenates the values of every text node below n.
func PlainText(n Node) string {
	switch v := n.(type) {
	case *Text:
		return v.Value
	case *Block:
		return plainText(v.Content)
	case *Inline:
		return plainText(v.Content)
	}
	return ""
}

// PlainText concatenates the values of every text node in the document.
func (d *Document) PlainText() string {
	return plainText(d.Content)
}

func plainText(nodes []Node) string {
	var s string
	for _, n := range nodes {
		s += PlainText(n)
	}
	return s
}

func nonNil(nodes []Node) []Node {
	if nodes == nil {
		return []Node{}
	}
	return nodes
}

func cloneMarks(marks []Mark) []Mark {
	out := make([]Mark, len(marks))
	copy(out, marks)
	return out
}
