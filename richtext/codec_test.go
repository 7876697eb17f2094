package richtext

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func sampleDocument() *Document {
	return NewDocument(
		NewBlock(Heading1, NewText("Title", Mark{Type: Bold})),
		NewBlock(Paragraph,
			NewText("see "),
			NewInline(Hyperlink, Data{"uri": "https://example.com"}, NewText("here")),
		),
		NewBlock(EmbeddedAsset).WithData(Data{"src": "a.png", "tag": "img"}),
	)
}

func TestEncode_WireShape(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	doc := NewDocument(NewBlock(Paragraph, NewText("<b>", Mark{Type: Italic})))
	if err := Encode(&buf, doc, 0); err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	want := `{"nodeType":"document","data":{},"content":[{"nodeType":"paragraph","data":{},"content":[{"nodeType":"text","value":"<b>","marks":[{"type":"italic"}],"data":{}}]}]}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncode_NestedMarkupIsNotEscaped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	doc := NewDocument(NewBlock(Paragraph,
		NewInline(Hyperlink, Data{"uri": "https://example.com/?a=1&b=2"}, NewText("a < b > c")),
	))
	if err := Encode(&buf, doc, 2); err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{`"https://example.com/?a=1&b=2"`, `"a < b > c"`} {
		if !strings.Contains(got, want) {
			t.Errorf("Encode() = %s, want it to contain %s", got, want)
		}
	}
	if strings.Contains(got, `\u00`) {
		t.Errorf("Encode() = %s, want no escaped markup", got)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if diff := cmp.Diff(doc, decoded); diff != "" {
		t.Errorf("Decode(Encode()) mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_Indent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Encode(&buf, NewDocument(), 2); err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"data\"") {
		t.Errorf("Encode() with indent 2 = %q, want two-space indentation", buf.String())
	}
}

func TestDecode_EncodedDocument(t *testing.T) {
	t.Parallel()

	want := sampleDocument()

	var buf bytes.Buffer
	if err := Encode(&buf, want, 0); err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"root is not a document", `{"nodeType":"paragraph","content":[]}`},
		{"unknown child type", `{"nodeType":"document","content":[{"nodeType":"div","content":[]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, ErrUnknownNodeType) {
				t.Errorf("Decode() error = %v, want ErrUnknownNodeType", err)
			}
		})
	}
}

func TestMarshalYAML(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(NewDocument(NewBlock(Paragraph, NewText("hi", Mark{Type: Code}))))
	if err != nil {
		t.Fatalf("yaml.Marshal() unexpected error: %v", err)
	}
	s := string(out)
	for _, want := range []string{"nodeType: document", "nodeType: paragraph", "value: hi", "type: code"} {
		if !strings.Contains(s, want) {
			t.Errorf("yaml.Marshal() = %q, want it to contain %q", s, want)
		}
	}
}
