package html2richtext

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-html2richtext/htmltree"
	"github.com/alnah/go-html2richtext/internal/future"
	"github.com/alnah/go-html2richtext/richtext"
)

// Input is the source of one conversion. Exactly one of HTML and Markdown
// must be set.
type Input struct {
	HTML     string // HTML fragment or full document
	Markdown string // Markdown, rendered to HTML with GFM extensions first
	Selector string // optional CSS selector; only matching elements are converted
}

// Policy decides what happens to an inline or text node left at the top
// level of the document.
type Policy string

// Top-level policies.
const (
	PolicyPreserve Policy = "preserve" // keep the node as a direct document child
	PolicyRemove   Policy = "remove"   // drop the node
	PolicyWrap     Policy = "wrap"     // wrap the node in its own paragraph
)

// ParsePolicy validates a policy name. The empty string selects preserve.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(s)); p {
	case "":
		return PolicyPreserve, nil
	case PolicyPreserve, PolicyRemove, PolicyWrap:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q (must be preserve, remove or wrap)", ErrInvalidPolicy, s)
}

// Deferred is the pending result of an asynchronous rule.
type Deferred = future.Future[[]richtext.Node]

// DeferredNode is the pending result of an asynchronous text rule.
type DeferredNode = future.Future[richtext.Node]

// Next converts the children of an element, or a single text node, with
// marks added ahead of the marks already active. A rule calls it to recurse.
type Next func(node htmltree.Node, marks ...richtext.Mark) ([]richtext.Node, error)

// AsyncNext is the asynchronous form of Next.
type AsyncNext func(node htmltree.Node, marks ...richtext.Mark) *Deferred

// TagConverter converts one element. It may return zero, one or many nodes.
type TagConverter func(el *htmltree.Element, next Next) ([]richtext.Node, error)

// AsyncTagConverter is the asynchronous form of TagConverter.
type AsyncTagConverter func(el *htmltree.Element, next AsyncNext) *Deferred

// TextConverter converts one text node carrying the active marks.
// A nil node is dropped from the output.
type TextConverter func(t *htmltree.Text, marks []richtext.Mark) (richtext.Node, error)

// AsyncTextConverter is the asynchronous form of TextConverter.
type AsyncTextConverter func(t *htmltree.Text, marks []richtext.Mark) *DeferredNode

// Resolve returns a deferred value already holding nodes.
func Resolve(nodes ...richtext.Node) *Deferred {
	if nodes == nil {
		nodes = []richtext.Node{}
	}
	return future.Resolved(nodes)
}

// Reject returns a deferred value already failed with err.
func Reject(err error) *Deferred {
	return future.Rejected[[]richtext.Node](err)
}

// ResolveNode returns a deferred text result already holding n.
func ResolveNode(n richtext.Node) *DeferredNode {
	return future.Resolved(n)
}

// Defer runs fn on its own goroutine. A panic in fn fails the deferred value
// with ErrRulePanic.
func Defer(fn func() ([]richtext.Node, error)) *Deferred {
	return future.Go(func() ([]richtext.Node, error) {
		return recoverRule(fn)
	})
}

// Map applies fn to the nodes of d once they are available. A panic in fn
// fails the result with ErrRulePanic, whether fn runs now or later.
func Map(d *Deferred, fn func([]richtext.Node) ([]richtext.Node, error)) *Deferred {
	return future.Then(context.Background(), d, func(nodes []richtext.Node) ([]richtext.Node, error) {
		return recoverRule(func() ([]richtext.Node, error) { return fn(nodes) })
	})
}

func recoverRule(fn func() ([]richtext.Node, error)) (nodes []richtext.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			nodes, err = nil, fmt.Errorf("%w: %v", ErrRulePanic, r)
		}
	}()
	return fn()
}

// rule is one entry of the dispatch table. Either form may be nil; the
// engine adapts the present form to the execution mode.
type rule struct {
	sync   TagConverter
	async  AsyncTagConverter
	custom bool
}

// textRule holds the text converter in both forms.
type textRule struct {
	sync  TextConverter
	async AsyncTextConverter
}
