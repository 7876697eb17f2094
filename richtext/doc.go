// Package richtext defines the target document model produced by the converter.
//
// A Document is a root container of top-level nodes. Nodes come in three kinds:
//
//   - Block: structural content (paragraphs, headings, lists, tables, embeds)
//   - Inline: content embedded in a block's flow (hyperlinks, inline embeds)
//   - Text: a string value carrying an ordered set of Marks
//
// Marks (bold, italic, ...) are metadata on text nodes; they never have children.
//
// The package also carries the schema collaborators the converter relies on:
// the node type vocabularies and their classification predicates, a structural
// validator, an HTML renderer used for round-trip checks, and a JSON encoding
// in the conventional rich text wire shape:
//
//	{"nodeType":"document","data":{},"content":[
//	  {"nodeType":"paragraph","data":{},"content":[
//	    {"nodeType":"text","value":"Hello","marks":[{"type":"bold"}],"data":{}}]}]}
package richtext
