package richtext

// NodeType identifies a node in the block, inline or text vocabulary.
type NodeType string

// Block node types.
const (
	DocumentType     NodeType = "document"
	Paragraph        NodeType = "paragraph"
	Heading1         NodeType = "heading-1"
	Heading2         NodeType = "heading-2"
	Heading3         NodeType = "heading-3"
	Heading4         NodeType = "heading-4"
	Heading5         NodeType = "heading-5"
	Heading6         NodeType = "heading-6"
	OrderedList      NodeType = "ordered-list"
	UnorderedList    NodeType = "unordered-list"
	ListItem         NodeType = "list-item"
	HR               NodeType = "hr"
	Quote            NodeType = "blockquote"
	EmbeddedEntry    NodeType = "embedded-entry-block"
	EmbeddedAsset    NodeType = "embedded-asset-block"
	EmbeddedResource NodeType = "embedded-resource-block"
	Table            NodeType = "table"
	TableRow         NodeType = "table-row"
	TableCell        NodeType = "table-cell"
	TableHeaderCell  NodeType = "table-header-cell"
)

// Inline node types.
const (
	Hyperlink              NodeType = "hyperlink"
	EntryHyperlink         NodeType = "entry-hyperlink"
	AssetHyperlink         NodeType = "asset-hyperlink"
	ResourceHyperlink      NodeType = "resource-hyperlink"
	EmbeddedEntryInline    NodeType = "embedded-entry-inline"
	EmbeddedResourceInline NodeType = "embedded-resource-inline"
)

// TextType is the node type of every text node.
const TextType NodeType = "text"

// MarkType identifies an inline formatting trait.
type MarkType string

// Mark types.
const (
	Bold          MarkType = "bold"
	Italic        MarkType = "italic"
	Underline     MarkType = "underline"
	Code          MarkType = "code"
	Superscript   MarkType = "superscript"
	Subscript     MarkType = "subscript"
	Strikethrough MarkType = "strikethrough"
)

// BlockTypes lists the block vocabulary in declaration order.
var BlockTypes = []NodeType{
	DocumentType, Paragraph,
	Heading1, Heading2, Heading3, Heading4, Heading5, Heading6,
	OrderedList, UnorderedList, ListItem, HR, Quote,
	EmbeddedEntry, EmbeddedAsset, EmbeddedResource,
	Table, TableRow, TableCell, TableHeaderCell,
}

// InlineTypes lists the inline vocabulary in declaration order.
var InlineTypes = []NodeType{
	Hyperlink, EntryHyperlink, AssetHyperlink, ResourceHyperlink,
	EmbeddedEntryInline, EmbeddedResourceInline,
}

// MarkTypes lists the mark vocabulary in declaration order.
var MarkTypes = []MarkType{
	Bold, Italic, Underline, Code, Superscript, Subscript, Strikethrough,
}

// TopLevelTypes lists the block types allowed as direct children of a Document.
var TopLevelTypes = []NodeType{
	Paragraph,
	Heading1, Heading2, Heading3, Heading4, Heading5, Heading6,
	OrderedList, UnorderedList, HR, Quote,
	EmbeddedEntry, EmbeddedAsset, EmbeddedResource,
	Table,
}

// HeadingTypes maps heading levels 1-6 to their node types (index 0 unused).
var HeadingTypes = [...]NodeType{"", Heading1, Heading2, Heading3, Heading4, Heading5, Heading6}
