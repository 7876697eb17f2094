package richtext

import (
	"testing"
)

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  *Document
		want string
	}{
		{
			name: "empty",
			doc:  NewDocument(),
			want: "",
		},
		{
			name: "paragraph with escaped text",
			doc:  NewDocument(NewBlock(Paragraph, NewText("a < b & c"))),
			want: "<p>a &lt; b &amp; c</p>",
		},
		{
			name: "first mark innermost",
			doc:  NewDocument(NewBlock(Paragraph, NewText("x", Mark{Type: Italic}, Mark{Type: Bold}))),
			want: "<p><b><i>x</i></b></p>",
		},
		{
			name: "hyperlink with title",
			doc: NewDocument(NewBlock(Paragraph,
				NewInline(Hyperlink, Data{"uri": "https://example.com", "title": "Ex"}, NewText("go")),
			)),
			want: `<p><a href="https://example.com" title="Ex">go</a></p>`,
		},
		{
			name: "list and table",
			doc: NewDocument(
				NewBlock(OrderedList, NewBlock(ListItem, NewBlock(Paragraph, NewText("i")))),
				NewBlock(Table, NewBlock(TableRow, NewBlock(TableCell, NewBlock(Paragraph, NewText("c"))))),
			),
			want: "<ol><li><p>i</p></li></ol><table><tr><td><p>c</p></td></tr></table>",
		},
		{
			name: "hr and heading",
			doc:  NewDocument(NewBlock(Heading2, NewText("h")), NewBlock(HR)),
			want: "<h2>h</h2><hr/>",
		},
		{
			name: "embedded asset uses source tag",
			doc: NewDocument(
				NewBlock(EmbeddedAsset).WithData(Data{"src": "a.png", "alt": "A"}),
				NewBlock(EmbeddedAsset).WithData(Data{"tag": "video", "src": "v.mp4"}),
			),
			want: `<img src="a.png" alt="A"/><video src="v.mp4"></video>`,
		},
		{
			name: "entries render nothing",
			doc:  NewDocument(NewBlock(EmbeddedEntry), NewBlock(Paragraph, NewInline(EmbeddedEntryInline, nil))),
			want: "<p></p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RenderHTML(tt.doc); got != tt.want {
				t.Errorf("RenderHTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderHTML_NilDocument(t *testing.T) {
	t.Parallel()

	if got := RenderHTML(nil); got != "" {
		t.Errorf("RenderHTML(nil) = %q, want empty", got)
	}
}
