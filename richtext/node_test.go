package richtext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConstructors_NonNil(t *testing.T) {
	t.Parallel()

	b := NewBlock(Paragraph)
	if b.Content == nil || b.Data == nil {
		t.Error("NewBlock should set empty content and data")
	}
	i := NewInline(Hyperlink, nil)
	if i.Content == nil || i.Data == nil {
		t.Error("NewInline should set empty content and data")
	}
	txt := NewText("x")
	if txt.Marks == nil || txt.Data == nil {
		t.Error("NewText should set empty marks and data")
	}
	d := NewDocument()
	if d.Content == nil || d.Data == nil {
		t.Error("NewDocument should set empty content and data")
	}
}

func TestNewText_CopiesMarks(t *testing.T) {
	t.Parallel()

	marks := []Mark{{Type: Bold}}
	txt := NewText("x", marks...)
	marks[0].Type = Italic

	if txt.Marks[0].Type != Bold {
		t.Error("NewText should copy the marks slice")
	}
}

func TestText_WithMarks(t *testing.T) {
	t.Parallel()

	orig := NewText("x", Mark{Type: Bold})
	got := orig.WithMarks(Mark{Type: Italic})

	want := []Mark{{Type: Italic}, {Type: Bold}}
	if diff := cmp.Diff(want, got.Marks); diff != "" {
		t.Errorf("WithMarks() mismatch (-want +got):\n%s", diff)
	}
	if len(orig.Marks) != 1 {
		t.Errorf("receiver modified: %v", orig.Marks)
	}
	if !got.HasMark(Italic) || !got.HasMark(Bold) || got.HasMark(Code) {
		t.Error("HasMark misreported")
	}
}

func TestBlock_WithData(t *testing.T) {
	t.Parallel()

	b := NewBlock(EmbeddedAsset)
	got := b.WithData(Data{"src": "a.png"})

	if got == b {
		t.Error("WithData should return a copy")
	}
	if len(b.Data) != 0 {
		t.Error("receiver data modified")
	}
	if got.Data["src"] != "a.png" {
		t.Errorf("Data = %v", got.Data)
	}
	if b.WithData(nil).Data == nil {
		t.Error("WithData(nil) should normalize to empty data")
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	doc := NewDocument(
		NewBlock(Heading1, NewText("Title")),
		NewBlock(Paragraph,
			NewText("a "),
			NewInline(Hyperlink, Data{"uri": "u"}, NewText("link")),
		),
	)
	if got := doc.PlainText(); got != "Titlea link" {
		t.Errorf("PlainText() = %q, want %q", got, "Titlea link")
	}
}
