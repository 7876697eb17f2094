package html2richtext

import (
	"go.uber.org/zap"

	"github.com/alnah/go-html2richtext/richtext"
)

// repair applies the top-level policies to one direct document child.
// It reports false when the node is removed.
//
// Top-level-eligible blocks pass unchanged, as do blocks that are not
// eligible but are not documents either (list items, rows, cells): moving
// them would invent structure the rules did not ask for. A nested document
// is always removed.
func (c *Converter) repair(n richtext.Node) (richtext.Node, bool) {
	switch v := n.(type) {
	case *richtext.Block:
		if v.Type == richtext.DocumentType {
			c.logger.Debug("removed nested document at top level")
			return nil, false
		}
		return v, true
	case *richtext.Inline:
		return c.applyPolicy(c.cfg.topLevelInlines, n)
	case *richtext.Text:
		return c.applyPolicy(c.cfg.topLevelText, n)
	}
	return nil, false
}

func (c *Converter) applyPolicy(p Policy, n richtext.Node) (richtext.Node, bool) {
	switch p {
	case PolicyRemove:
		c.logger.Debug("removed top-level node", zap.String("nodeType", string(n.NodeType())))
		return nil, false
	case PolicyWrap:
		c.logger.Debug("wrapped top-level node in paragraph", zap.String("nodeType", string(n.NodeType())))
		return richtext.NewBlock(richtext.Paragraph, n), true
	}
	return n, true
}

// assemble repairs the converted top-level nodes in order and builds the document.
func (c *Converter) assemble(nodes []richtext.Node) *richtext.Document {
	content := make([]richtext.Node, 0, len(nodes))
	for _, n := range nodes {
		if repaired, ok := c.repair(n); ok {
			content = append(content, repaired)
		}
	}
	return richtext.NewDocument(content...)
}
