package html2richtext_test

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-html2richtext"
	"github.com/alnah/go-html2richtext/htmltree"
	"github.com/alnah/go-html2richtext/richtext"
)

// Example demonstrates converting an HTML fragment and encoding the result.
func Example() {
	conv, err := html2richtext.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	doc, err := conv.Convert(context.Background(), html2richtext.Input{
		HTML: "<p>Hello <b>World</b></p>",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := richtext.Encode(os.Stdout, doc, 0); err != nil {
		fmt.Println("error:", err)
	}
	// Output: {"nodeType":"document","data":{},"content":[{"nodeType":"paragraph","data":{},"content":[{"nodeType":"text","value":"Hello ","marks":[],"data":{}},{"nodeType":"text","value":"World","marks":[{"type":"bold"}],"data":{}}]}]}
}

// Example_remapDiv demonstrates turning a tag without a built-in rule into a block.
func Example_remapDiv() {
	doc, err := html2richtext.HTMLStringToDocument("<div>hello</div>",
		html2richtext.WithTagConverter("div", html2richtext.BlockConverter(richtext.Paragraph)),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(doc.Content[0].NodeType(), doc.PlainText())
	// Output: paragraph hello
}

// Example_embeddedImage demonstrates a custom rule that reads element attributes.
func Example_embeddedImage() {
	image := func(el *htmltree.Element, _ html2richtext.Next) ([]richtext.Node, error) {
		asset := richtext.NewBlock(richtext.EmbeddedAsset).WithData(richtext.Data{"src": el.Attr("src")})
		return []richtext.Node{asset}, nil
	}

	doc, err := html2richtext.HTMLStringToDocument(`<img src="cat.png">`,
		html2richtext.WithTagConverter("img", image),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	asset := doc.Content[0].(*richtext.Block)
	fmt.Println(asset.Type, asset.Data["src"])
	// Output: embedded-asset-block cat.png
}

// Example_markFromClass demonstrates adding a mark through the continuation.
func Example_markFromClass() {
	span := func(el *htmltree.Element, next html2richtext.Next) ([]richtext.Node, error) {
		if el.Attr("class") == "bold" {
			return next(el, richtext.Mark{Type: richtext.Bold})
		}
		return next(el)
	}

	doc, err := html2richtext.HTMLStringToDocument(`<p><span class="bold"><i>hi</i></span></p>`,
		html2richtext.WithTagConverter("span", span),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	t := doc.Content[0].(*richtext.Block).Content[0].(*richtext.Text)
	fmt.Println(t.Value, t.Marks)
	// Output: hi [{italic} {bold}]
}

// Example_topLevelWrap demonstrates repairing a bare link at the top level.
func Example_topLevelWrap() {
	doc, err := html2richtext.HTMLStringToDocument(`<a href="https://example.com">site</a>`,
		html2richtext.WithTopLevelInlines(html2richtext.PolicyWrap),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(richtext.RenderHTML(doc))
	// Output: <p><a href="https://example.com">site</a></p>
}
