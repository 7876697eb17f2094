package richtext

import (
	"errors"
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	doc := NewDocument(
		NewBlock(Heading1, NewText("Title", Mark{Type: Bold})),
		NewBlock(Paragraph, NewText("a"), NewInline(Hyperlink, Data{"uri": "u"}, NewText("b"))),
		NewBlock(UnorderedList, NewBlock(ListItem, NewBlock(Paragraph, NewText("i")))),
		NewBlock(Table, NewBlock(TableRow, NewBlock(TableHeaderCell, NewBlock(Paragraph)))),
		NewBlock(Quote, NewBlock(Paragraph, NewText("q"))),
		NewBlock(HR),
		NewBlock(EmbeddedAsset).WithData(Data{"src": "a.png"}),
	)
	if err := Validate(doc); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     *Document
		wantErr error
	}{
		{
			name:    "text at root",
			doc:     NewDocument(NewText("x")),
			wantErr: ErrNotTopLevel,
		},
		{
			name:    "inline at root",
			doc:     NewDocument(NewInline(Hyperlink, Data{"uri": "u"})),
			wantErr: ErrNotTopLevel,
		},
		{
			name:    "list item at root",
			doc:     NewDocument(NewBlock(ListItem)),
			wantErr: ErrNotTopLevel,
		},
		{
			name:    "nested document",
			doc:     NewDocument(NewBlock(Quote, NewBlock(DocumentType))),
			wantErr: ErrNestedDocument,
		},
		{
			name:    "paragraph inside paragraph",
			doc:     NewDocument(NewBlock(Paragraph, NewBlock(Paragraph))),
			wantErr: ErrInvalidChild,
		},
		{
			name:    "text directly in list",
			doc:     NewDocument(NewBlock(OrderedList, NewText("x"))),
			wantErr: ErrInvalidChild,
		},
		{
			name:    "children under hr",
			doc:     NewDocument(NewBlock(HR, NewText("x"))),
			wantErr: ErrInvalidChild,
		},
		{
			name:    "hyperlink without uri",
			doc:     NewDocument(NewBlock(Paragraph, NewInline(Hyperlink, nil))),
			wantErr: ErrMissingURI,
		},
		{
			name:    "unknown mark",
			doc:     NewDocument(NewBlock(Paragraph, NewText("x", Mark{Type: "blink"}))),
			wantErr: ErrUnknownMarkType,
		},
		{
			name:    "unknown block",
			doc:     NewDocument(NewBlock(Paragraph), &Block{Type: "div", Content: []Node{}}),
			wantErr: ErrUnknownNodeType,
		},
		{
			name:    "nil child",
			doc:     NewDocument(NewBlock(Paragraph, nil)),
			wantErr: ErrNilNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.doc)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Path == "" {
				t.Errorf("Validate() should report a located ValidationError, got %v", err)
			}
		})
	}
}

func TestValidate_NilDocument(t *testing.T) {
	t.Parallel()

	if err := Validate(nil); !errors.Is(err, ErrNilNode) {
		t.Errorf("Validate(nil) = %v, want ErrNilNode", err)
	}
}
