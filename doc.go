// Package html2richtext converts HTML into strictly typed rich text documents.
//
// # Quick Start
//
// Create a converter and convert an HTML fragment:
//
//	conv, err := html2richtext.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := conv.Convert(ctx, html2richtext.Input{
//	    HTML: "<h1>Hello</h1><p>World</p>",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	richtext.Encode(os.Stdout, doc, 2)
//
// For one-off conversions HTMLStringToDocument creates the converter itself.
//
// # Conversion Pipeline
//
//  1. Markdown input is rendered to HTML via goldmark (GFM)
//  2. HTML is parsed and lowered to an htmltree (whitespace policy applied)
//  3. Each element is dispatched by tag to a rule; text goes to the text rule
//  4. Top-level inline and text nodes are repaired (preserve, remove, wrap)
//  5. The nodes are assembled into a single richtext.Document
//
// # Rules and Continuations
//
// A rule receives the element and a continuation. Calling next(el) converts
// the element's children in place; next(el, mark) does the same with the mark
// added to every text node below. A rule may return zero, one or many nodes.
//
//	conv, _ := html2richtext.NewConverter(
//	    html2richtext.WithTagConverter("div", html2richtext.BlockConverter(richtext.Paragraph)),
//	    html2richtext.WithTagConverter("span", func(el *htmltree.Element, next html2richtext.Next) ([]richtext.Node, error) {
//	        if el.Attr("class") == "bold" {
//	            return next(el, richtext.Mark{Type: richtext.Bold})
//	        }
//	        return next(el)
//	    }),
//	)
//
// Tags without a rule keep their children and drop the element.
//
// # Asynchronous Conversion
//
// ConvertAsync fans sibling subtrees out over goroutines, bounded by
// WithMaxWorkers, and joins results in input order. Rules written with
// WithAsyncTagConverter return a *Deferred; Defer, Resolve and Map build one.
// Synchronous rules work in both modes and vice versa, and both modes yield
// the same document for the same rules.
//
// # Error Handling
//
// The library uses sentinel errors for validation:
//
//	_, err := conv.Convert(ctx, input)
//	if errors.Is(err, html2richtext.ErrEmptyInput) {
//	    // handle empty input
//	}
//
// An error returned by a rule aborts the conversion and is returned
// unchanged. A panicking rule yields ErrRulePanic.
package html2richtext
