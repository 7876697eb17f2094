package html2richtext

import (
	"fmt"
	"strings"

	"github.com/alnah/go-html2richtext/htmltree"
	"github.com/alnah/go-html2richtext/richtext"
)

// Special targets accepted by WithTagMapping besides node and mark types.
const (
	MappingUnwrap = "unwrap" // keep the children, drop the element
	MappingDrop   = "drop"   // drop the element and its children
)

// assetAttrs lists the element attributes copied into embedded asset data.
var assetAttrs = []string{"src", "alt", "title"}

// BlockConverter returns a rule that wraps the converted children in a block of type t.
func BlockConverter(t richtext.NodeType) TagConverter {
	return blockRule(t).sync
}

// InlineConverter returns a rule that wraps the converted children in an inline of type t.
func InlineConverter(t richtext.NodeType) TagConverter {
	return inlineRule(t).sync
}

// MarkConverter returns a rule that converts the children with mark m added.
func MarkConverter(m richtext.MarkType) TagConverter {
	return markRule(m).sync
}

// HyperlinkConverter converts <a> into a hyperlink whose data holds the href
// as "uri" and, when present, the title attribute.
func HyperlinkConverter(el *htmltree.Element, next Next) ([]richtext.Node, error) {
	return hyperlinkRule().sync(el, next)
}

// EmbeddedAssetConverter converts a media element into an embedded asset
// block. The src, alt and title attributes are copied into the data
// together with the source tag name. Children are not converted.
func EmbeddedAssetConverter(el *htmltree.Element, _ Next) ([]richtext.Node, error) {
	return []richtext.Node{embeddedAsset(el)}, nil
}

// ChildrenConverter drops the element and keeps its converted children in place.
func ChildrenConverter(el *htmltree.Element, next Next) ([]richtext.Node, error) {
	return next(el)
}

// DropConverter drops the element and everything below it.
func DropConverter(*htmltree.Element, Next) ([]richtext.Node, error) {
	return []richtext.Node{}, nil
}

// LineBreakConverter converts <br> into a newline text carrying the active marks.
func LineBreakConverter(_ *htmltree.Element, next Next) ([]richtext.Node, error) {
	return next(htmltree.NewText("\n"))
}

// TextNodeConverter is the default text rule: a text node with the active marks.
func TextNodeConverter(t *htmltree.Text, marks []richtext.Mark) (richtext.Node, error) {
	return richtext.NewText(t.Value, marks...), nil
}

// ParagraphedTextConverter wraps every text node in its own paragraph.
// Useful when the input is mostly bare text that must satisfy the top-level
// constraint without a repair policy.
func ParagraphedTextConverter(t *htmltree.Text, marks []richtext.Mark) (richtext.Node, error) {
	return richtext.NewBlock(richtext.Paragraph, richtext.NewText(t.Value, marks...)), nil
}

// ---------------------------------------------------------------------------
// Built-in rules, in both forms
// ---------------------------------------------------------------------------

// childrenRule converts the children of an element with marks added and
// hands them to build.
func childrenRule(build func(*htmltree.Element, []richtext.Node) []richtext.Node, marks ...richtext.Mark) rule {
	return rule{
		sync: func(el *htmltree.Element, next Next) ([]richtext.Node, error) {
			children, err := next(el, marks...)
			if err != nil {
				return nil, err
			}
			return build(el, children), nil
		},
		async: func(el *htmltree.Element, next AsyncNext) *Deferred {
			return Map(next(el, marks...), func(children []richtext.Node) ([]richtext.Node, error) {
				return build(el, children), nil
			})
		},
	}
}

func blockRule(t richtext.NodeType) rule {
	return childrenRule(func(_ *htmltree.Element, children []richtext.Node) []richtext.Node {
		return []richtext.Node{richtext.NewBlock(t, children...)}
	})
}

func inlineRule(t richtext.NodeType) rule {
	return childrenRule(func(_ *htmltree.Element, children []richtext.Node) []richtext.Node {
		return []richtext.Node{richtext.NewInline(t, nil, children...)}
	})
}

func markRule(m richtext.MarkType) rule {
	return childrenRule(func(_ *htmltree.Element, children []richtext.Node) []richtext.Node {
		return children
	}, richtext.Mark{Type: m})
}

func unwrapRule() rule {
	return childrenRule(func(_ *htmltree.Element, children []richtext.Node) []richtext.Node {
		return children
	})
}

func hyperlinkRule() rule {
	return childrenRule(func(el *htmltree.Element, children []richtext.Node) []richtext.Node {
		data := richtext.Data{"uri": el.Attr("href")}
		if title := el.Attr("title"); title != "" {
			data["title"] = title
		}
		return []richtext.Node{richtext.NewInline(richtext.Hyperlink, data, children...)}
	})
}

func embeddedAssetRule() rule {
	return rule{
		sync: EmbeddedAssetConverter,
		async: func(el *htmltree.Element, _ AsyncNext) *Deferred {
			return Resolve(embeddedAsset(el))
		},
	}
}

func dropRule() rule {
	return rule{
		sync: DropConverter,
		async: func(*htmltree.Element, AsyncNext) *Deferred {
			return Resolve()
		},
	}
}

func lineBreakRule() rule {
	return rule{
		sync: LineBreakConverter,
		async: func(_ *htmltree.Element, next AsyncNext) *Deferred {
			return next(htmltree.NewText("\n"))
		},
	}
}

func textNodeRule() textRule {
	return textRule{
		sync: TextNodeConverter,
		async: func(t *htmltree.Text, marks []richtext.Mark) *DeferredNode {
			return ResolveNode(richtext.NewText(t.Value, marks...))
		},
	}
}

func embeddedAsset(el *htmltree.Element) *richtext.Block {
	data := richtext.Data{"tag": el.Tag}
	for _, key := range assetAttrs {
		if el.HasAttr(key) {
			data[key] = el.Attr(key)
		}
	}
	return richtext.NewBlock(richtext.EmbeddedAsset).WithData(data)
}

// builtinRules returns a fresh dispatch table with the built-in rules.
func builtinRules() map[string]rule {
	table := map[string]rule{
		"p":          blockRule(richtext.Paragraph),
		"ul":         blockRule(richtext.UnorderedList),
		"ol":         blockRule(richtext.OrderedList),
		"li":         blockRule(richtext.ListItem),
		"blockquote": blockRule(richtext.Quote),
		"hr":         blockRule(richtext.HR),
		"table":      blockRule(richtext.Table),
		"tr":         blockRule(richtext.TableRow),
		"td":         blockRule(richtext.TableCell),
		"th":         blockRule(richtext.TableHeaderCell),

		"a":     hyperlinkRule(),
		"img":   embeddedAssetRule(),
		"video": embeddedAssetRule(),
		"audio": embeddedAssetRule(),
		"br":    lineBreakRule(),

		"b":      markRule(richtext.Bold),
		"strong": markRule(richtext.Bold),
		"i":      markRule(richtext.Italic),
		"em":     markRule(richtext.Italic),
		"u":      markRule(richtext.Underline),
		"sub":    markRule(richtext.Subscript),
		"sup":    markRule(richtext.Superscript),
		"code":   markRule(richtext.Code),
		"pre":    markRule(richtext.Code),
		"s":      markRule(richtext.Strikethrough),
		"del":    markRule(richtext.Strikethrough),
		"strike": markRule(richtext.Strikethrough),
	}
	for level := 1; level <= 6; level++ {
		table[fmt.Sprintf("h%d", level)] = blockRule(richtext.HeadingTypes[level])
	}
	return table
}

// mappedRule resolves a tag mapping target: a block or inline node type, a
// mark type, or one of MappingUnwrap and MappingDrop.
// MappingTargets lists every target WithTagMapping accepts.
func MappingTargets() []string {
	targets := []string{MappingUnwrap, MappingDrop}
	for _, t := range richtext.BlockTypes {
		if t != richtext.DocumentType {
			targets = append(targets, string(t))
		}
	}
	for _, t := range richtext.InlineTypes {
		targets = append(targets, string(t))
	}
	for _, m := range richtext.MarkTypes {
		targets = append(targets, string(m))
	}
	return targets
}

func mappedRule(target string) (rule, error) {
	name := strings.ToLower(strings.TrimSpace(target))
	switch name {
	case MappingUnwrap:
		return unwrapRule(), nil
	case MappingDrop:
		return dropRule(), nil
	case string(richtext.Hyperlink):
		return hyperlinkRule(), nil
	case string(richtext.EmbeddedAsset):
		return embeddedAssetRule(), nil
	}
	if m, ok := richtext.ParseMarkType(name); ok {
		return markRule(m), nil
	}
	if t, ok := richtext.ParseNodeType(name); ok {
		switch {
		case t == richtext.DocumentType, t == richtext.TextType:
		case richtext.IsInlineType(t):
			return inlineRule(t), nil
		default:
			return blockRule(t), nil
		}
	}
	return rule{}, fmt.Errorf("%w: %q", ErrUnknownNodeType, target)
}
