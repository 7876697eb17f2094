package richtext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Wire shapes. Field order follows the conventional rich text JSON layout.

type wireText struct {
	NodeType NodeType `json:"nodeType" yaml:"nodeType"`
	Value    string   `json:"value" yaml:"value"`
	Marks    []Mark   `json:"marks" yaml:"marks"`
	Data     Data     `json:"data" yaml:"data"`
}

type wireContainer struct {
	NodeType NodeType `json:"nodeType" yaml:"nodeType"`
	Data     Data     `json:"data" yaml:"data"`
	Content  []Node   `json:"content" yaml:"content"`
}

func (t *Text) wire() wireText {
	marks := t.Marks
	if marks == nil {
		marks = []Mark{}
	}
	return wireText{NodeType: TextType, Value: t.Value, Marks: marks, Data: orEmpty(t.Data)}
}

func (b *Block) wire() wireContainer {
	return wireContainer{NodeType: b.Type, Data: orEmpty(b.Data), Content: nonNil(b.Content)}
}

func (i *Inline) wire() wireContainer {
	return wireContainer{NodeType: i.Type, Data: orEmpty(i.Data), Content: nonNil(i.Content)}
}

func (d *Document) wire() wireContainer {
	return wireContainer{NodeType: DocumentType, Data: orEmpty(d.Data), Content: nonNil(d.Content)}
}

// MarshalJSON implements json.Marshaler.
func (t *Text) MarshalJSON() ([]byte, error) { return marshalWire(t.wire()) }

// MarshalJSON implements json.Marshaler.
func (b *Block) MarshalJSON() ([]byte, error) { return marshalWire(b.wire()) }

// MarshalJSON implements json.Marshaler.
func (i *Inline) MarshalJSON() ([]byte, error) { return marshalWire(i.wire()) }

// MarshalJSON implements json.Marshaler.
func (d *Document) MarshalJSON() ([]byte, error) { return marshalWire(d.wire()) }

// marshalWire encodes v without HTML escaping. json.Marshal would escape
// <, > and & in text values, and Encode cannot undo that for nested nodes.
func marshalWire(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MarshalYAML lets YAML encoders emit the same shape as JSON.
func (t *Text) MarshalYAML() (any, error) { return t.wire(), nil }

// MarshalYAML lets YAML encoders emit the same shape as JSON.
func (b *Block) MarshalYAML() (any, error) { return b.wire(), nil }

// MarshalYAML lets YAML encoders emit the same shape as JSON.
func (i *Inline) MarshalYAML() (any, error) { return i.wire(), nil }

// MarshalYAML lets YAML encoders emit the same shape as JSON.
func (d *Document) MarshalYAML() (any, error) { return d.wire(), nil }

// rawNode is the decoding shape shared by every node kind.
type rawNode struct {
	NodeType NodeType  `json:"nodeType"`
	Value    string    `json:"value"`
	Marks    []Mark    `json:"marks"`
	Data     Data      `json:"data"`
	Content  []rawNode `json:"content"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.NodeType != DocumentType {
		return fmt.Errorf("%w: root is %q, want %q", ErrUnknownNodeType, raw.NodeType, DocumentType)
	}
	content, err := decodeContent(raw.Content)
	if err != nil {
		return err
	}
	d.Content = content
	d.Data = orEmpty(raw.Data)
	return nil
}

func decodeContent(raws []rawNode) ([]Node, error) {
	out := make([]Node, 0, len(raws))
	for _, r := range raws {
		n, err := decodeNode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func decodeNode(r rawNode) (Node, error) {
	if r.NodeType == TextType {
		marks := r.Marks
		if marks == nil {
			marks = []Mark{}
		}
		return &Text{Value: r.Value, Marks: marks, Data: orEmpty(r.Data)}, nil
	}
	content, err := decodeContent(r.Content)
	if err != nil {
		return nil, err
	}
	switch {
	case IsInlineType(r.NodeType):
		return &Inline{Type: r.NodeType, Content: content, Data: orEmpty(r.Data)}, nil
	case IsBlockType(r.NodeType):
		return &Block{Type: r.NodeType, Content: content, Data: orEmpty(r.Data)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNodeType, r.NodeType)
}

// Encode writes d as JSON to w. A positive indent pretty-prints with that many spaces.
func Encode(w io.Writer, d *Document, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	return enc.Encode(d)
}

// Decode reads one JSON document from r.
func Decode(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func orEmpty(d Data) Data {
	if d == nil {
		return Data{}
	}
	return d
}
