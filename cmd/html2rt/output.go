package main

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/xlab/treeprint"

	"github.com/alnah/go-html2richtext/internal/config"
	"github.com/alnah/go-html2richtext/internal/yamlutil"
	"github.com/alnah/go-html2richtext/richtext"
)

// ErrEncode wraps failures to encode a converted document.
var ErrEncode = errors.New("failed to encode document")

func init() {
	// Dump output goes to files and pipes.
	pp.ColoringEnabled = false
}

// documentEncoder renders documents in one output format.
type documentEncoder struct {
	format string
	indent int
}

func newDocumentEncoder(format string, indent int) documentEncoder {
	if format == "" {
		format = config.FormatJSON
	}
	return documentEncoder{format: format, indent: indent}
}

// extension returns the output file extension for the format.
func (e documentEncoder) extension() string {
	switch e.format {
	case config.FormatYAML:
		return ".yaml"
	case config.FormatHTML:
		return ".html"
	case config.FormatDump, config.FormatTree:
		return ".txt"
	}
	return ".json"
}

// encode renders doc. Every format ends with a newline.
func (e documentEncoder) encode(doc *richtext.Document) ([]byte, error) {
	var buf bytes.Buffer
	switch e.format {
	case config.FormatJSON:
		if err := richtext.Encode(&buf, doc, e.indent); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncode, err)
		}
	case config.FormatYAML:
		out, err := yamlutil.MarshalIndent(doc, e.indent)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncode, err)
		}
		buf.Write(out)
	case config.FormatHTML:
		if err := richtext.WriteHTML(&buf, doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncode, err)
		}
	case config.FormatDump:
		buf.WriteString(pp.Sprint(doc))
	case config.FormatTree:
		buf.WriteString(documentTree(doc))
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrEncode, e.format)
	}

	if b := buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// documentTree prints the node hierarchy, one node per line.
func documentTree(doc *richtext.Document) string {
	root := treeprint.New()
	root.SetValue(string(richtext.DocumentType))
	for _, n := range doc.Content {
		addTreeNode(root, n)
	}
	return root.String()
}

func addTreeNode(t treeprint.Tree, n richtext.Node) {
	var (
		label   string
		content []richtext.Node
	)
	switch v := n.(type) {
	case *richtext.Text:
		t.AddNode(textLabel(v))
		return
	case *richtext.Block:
		label, content = containerLabel(v.Type, v.Data), v.Content
	case *richtext.Inline:
		label, content = containerLabel(v.Type, v.Data), v.Content
	default:
		t.AddNode(fmt.Sprintf("%T", n))
		return
	}

	if len(content) == 0 {
		t.AddNode(label)
		return
	}
	branch := t.AddBranch(label)
	for _, child := range content {
		addTreeNode(branch, child)
	}
}

func containerLabel(t richtext.NodeType, data richtext.Data) string {
	if len(data) == 0 {
		return string(t)
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s=%v", k, data[k])
	}
	return fmt.Sprintf("%s {%s}", t, strings.Join(pairs, " "))
}

func textLabel(t *richtext.Text) string {
	label := strconv.Quote(t.Value)
	if len(t.Marks) == 0 {
		return label
	}
	marks := make([]string, len(t.Marks))
	for i, m := range t.Marks {
		marks[i] = string(m.Type)
	}
	return label + " [" + strings.Join(marks, " ") + "]"
}
