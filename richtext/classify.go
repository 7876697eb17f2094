package richtext

var (
	blockSet    = toSet(BlockTypes)
	inlineSet   = toSet(InlineTypes)
	topLevelSet = toSet(TopLevelTypes)
	markSet     = func() map[MarkType]struct{} {
		m := make(map[MarkType]struct{}, len(MarkTypes))
		for _, t := range MarkTypes {
			m[t] = struct{}{}
		}
		return m
	}()
)

func toSet(types []NodeType) map[NodeType]struct{} {
	m := make(map[NodeType]struct{}, len(types))
	for _, t := range types {
		m[t] = struct{}{}
	}
	return m
}

// IsBlockType reports whether t belongs to the block vocabulary.
func IsBlockType(t NodeType) bool {
	_, ok := blockSet[t]
	return ok
}

// IsInlineType reports whether t belongs to the inline vocabulary.
func IsInlineType(t NodeType) bool {
	_, ok := inlineSet[t]
	return ok
}

// IsMarkType reports whether m belongs to the mark vocabulary.
func IsMarkType(m MarkType) bool {
	_, ok := markSet[m]
	return ok
}

// IsTopLevelType reports whether t may appear as a direct child of a Document.
func IsTopLevelType(t NodeType) bool {
	_, ok := topLevelSet[t]
	return ok
}

// IsBlock reports whether n is a Block node.
func IsBlock(n Node) bool {
	_, ok := n.(*Block)
	return ok
}

// IsInline reports whether n is an Inline node.
func IsInline(n Node) bool {
	_, ok := n.(*Inline)
	return ok
}

// IsText reports whether n is a Text node.
func IsText(n Node) bool {
	_, ok := n.(*Text)
	return ok
}

// IsTopLevel reports whether n is a block of a top-level-eligible type.
func IsTopLevel(n Node) bool {
	b, ok := n.(*Block)
	return ok && IsTopLevelType(b.Type)
}

// ParseNodeType resolves a node type name from either vocabulary.
func ParseNodeType(s string) (NodeType, bool) {
	t := NodeType(s)
	if IsBlockType(t) || IsInlineType(t) || t == TextType {
		return t, true
	}
	return "", false
}

// ParseMarkType resolves a mark type name.
func ParseMarkType(s string) (MarkType, bool) {
	m := MarkType(s)
	if IsMarkType(m) {
		return m, true
	}
	return "", false
}
