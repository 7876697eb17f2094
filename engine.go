package html2richtext

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/alnah/go-html2richtext/htmltree"
	"github.com/alnah/go-html2richtext/internal/future"
	"github.com/alnah/go-html2richtext/richtext"
)

// engine runs one conversion. The algorithm is written once over deferred
// values; the synchronous and asynchronous modes differ only in spawn and
// in which form of a rule they prefer.
type engine struct {
	ctx    context.Context
	table  map[string]rule
	deflt  rule
	text   textRule
	logger *zap.Logger
	async  bool
	spawn  func(fn func() ([]richtext.Node, error)) *Deferred
}

// newEngine creates the engine for one call. Asynchronous engines get a
// fresh worker pool so the budget applies per conversion.
func (c *Converter) newEngine(ctx context.Context, async bool) *engine {
	e := &engine{
		ctx:    ctx,
		table:  c.table,
		deflt:  c.deflt,
		text:   c.text,
		logger: c.logger,
		async:  async,
		spawn:  spawnInline,
	}
	if async {
		e.spawn = newWorkerPool(c.cfg.workers).spawn
	}
	return e
}

// run converts a sequence of top-level nodes with no active marks. A panic
// recovered on a worker goroutine is reported as ErrRulePanic, as in the
// synchronous mode.
func (e *engine) run(nodes []htmltree.Node) ([]richtext.Node, error) {
	out, err := e.convertAll(nodes, nil).Await(e.ctx)
	if errors.Is(err, future.ErrPanic) && !errors.Is(err, ErrRulePanic) {
		return nil, fmt.Errorf("%w: %w", ErrRulePanic, err)
	}
	return out, err
}

// transform converts one node under the active marks.
func (e *engine) transform(n htmltree.Node, active []richtext.Mark) *Deferred {
	if err := e.ctx.Err(); err != nil {
		return Reject(err)
	}
	switch v := n.(type) {
	case *htmltree.Text:
		return e.convertText(v, active)
	case *htmltree.Element:
		return e.convertElement(v, active)
	}
	return Reject(fmt.Errorf("%w: %T", ErrUnknownNodeType, n))
}

// convertAll converts nodes left to right and flattens the results in input order.
func (e *engine) convertAll(nodes []htmltree.Node, active []richtext.Mark) *Deferred {
	pending := make([]*Deferred, len(nodes))
	for i, n := range nodes {
		pending[i] = e.spawn(func() ([]richtext.Node, error) {
			return e.transform(n, active).Await(e.ctx)
		})
	}
	return future.Then(e.ctx, future.All(e.ctx, pending), flatten)
}

// next builds the continuation handed to a rule converting under active.
func (e *engine) next(active []richtext.Mark) AsyncNext {
	return func(n htmltree.Node, marks ...richtext.Mark) *Deferred {
		merged := mergeMarks(marks, active)
		switch v := n.(type) {
		case *htmltree.Element:
			return e.convertAll(v.Children, merged)
		case *htmltree.Text:
			return e.convertText(v, merged)
		case nil:
			return Resolve()
		}
		return Reject(fmt.Errorf("%w: %T", ErrUnknownNodeType, n))
	}
}

// syncNext adapts an asynchronous continuation for a synchronous rule.
func (e *engine) syncNext(next AsyncNext) Next {
	return func(n htmltree.Node, marks ...richtext.Mark) ([]richtext.Node, error) {
		return next(n, marks...).Await(e.ctx)
	}
}

func (e *engine) convertElement(el *htmltree.Element, active []richtext.Mark) *Deferred {
	r, ok := e.table[el.Tag]
	if !ok {
		e.logger.Debug("no converter for tag, using default", zap.String("tag", el.Tag))
		r = e.deflt
	}
	next := e.next(active)
	return guard(el.Tag, func() *Deferred {
		if r.async != nil && (e.async || r.sync == nil) {
			return r.async(el, next)
		}
		nodes, err := r.sync(el, e.syncNext(next))
		return future.From(nodes, err)
	})
}

func (e *engine) convertText(t *htmltree.Text, active []richtext.Mark) *Deferred {
	tr := e.text
	return guard("#text", func() *Deferred {
		var d *DeferredNode
		if tr.async != nil && (e.async || tr.sync == nil) {
			d = tr.async(t, active)
		} else {
			n, err := tr.sync(t, active)
			d = future.From(n, err)
		}
		if d == nil {
			return Resolve()
		}
		return future.Then(e.ctx, d, func(n richtext.Node) ([]richtext.Node, error) {
			if n == nil {
				return []richtext.Node{}, nil
			}
			return []richtext.Node{n}, nil
		})
	})
}

// guard calls a rule, turning a panic into ErrRulePanic and a nil deferred
// value into an empty result.
func guard(name string, call func() *Deferred) (d *Deferred) {
	defer func() {
		if r := recover(); r != nil {
			d = Reject(fmt.Errorf("%w: <%s>: %v", ErrRulePanic, name, r))
		}
	}()
	if d = call(); d == nil {
		d = Resolve()
	}
	return d
}

func flatten(groups [][]richtext.Node) ([]richtext.Node, error) {
	size := 0
	for _, g := range groups {
		size += len(g)
	}
	out := make([]richtext.Node, 0, size)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out, nil
}
