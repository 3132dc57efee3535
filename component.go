package vellum

import (
	"fmt"
	"reflect"
)

// Model is a component's state. Update folds one message in and reports
// what the view needs; View builds a fresh view subtree from the current
// state.
type Model[Msg any] interface {
	Update(msg Msg) ChangeView
	View() *Node
}

// Patcher is implemented by models that can apply ChangeModify in place.
// Patch has exclusive access to the component's current view for the
// duration of the call. A model without Patch is rebuilt instead.
type Patcher interface {
	Patch(view *Node)
}

// SystemReceiver is implemented by models that react to driver messages
// (resize, draw tick, input). Returning false ignores msg.
type SystemReceiver[Msg any] interface {
	System(msg SystemMsg) (Msg, bool)
}

// Component is the type-erased capability set every Comp exposes, so
// components with different message types nest in one tree. Messages cross
// the boundary as any and are downcast once, in Send.
type Component interface {
	ID() uint32
	Transform() *Transform
	// Send runs the model's Update and accumulates its verdict. It panics if
	// msg is not the component's message type.
	Send(msg any)
	// UpdateView drains queued messages, applies the accumulated verdict and
	// updates nested components. It returns the verdict that was applied.
	UpdateView() ChangeView
	View() *Node
	// NeedRecalc reports whether the subtree changed since the last
	// recalculation pass.
	NeedRecalc() bool

	base() *compBase
	attach(n *Node)
	receiveSystem(msg SystemMsg)
}

// recalcKey is everything a component's layout depends on apart from its
// own view: the parent's inputs and the component's transform, which a
// parent's Patch may edit without marking the component dirty.
type recalcKey struct {
	parent    Rect
	global    Matrix
	style     Style
	transform Transform
}

// compBase is the message-type independent half of a Comp.
type compBase struct {
	id        uint32
	transform Transform
	node      *Node
	queue     []any
	dirty     bool

	key      recalcKey
	keyValid bool
	bound    Rect
}

func (b *compBase) enqueue(msg any) {
	b.queue = append(b.queue, msg)
}

// Comp wraps a Model[Msg] together with its view and pending verdict.
type Comp[Msg any] struct {
	compBase
	model Model[Msg]
	view  *Node
	state ChangeViewState
}

// NewComp wraps model and builds its initial view immediately.
func NewComp[Msg any](model Model[Msg]) *Comp[Msg] {
	if model == nil {
		panic("vellum: cannot create component from nil model")
	}
	c := &Comp[Msg]{
		compBase: compBase{id: nextNodeID(), transform: NewTransform(), dirty: true},
		model:    model,
	}
	c.view = c.buildView()
	return c
}

// Create instantiates a model from props and wraps it.
func Create[P, Msg any](init func(P) Model[Msg], props P) *Comp[Msg] {
	return NewComp(init(props))
}

// ID returns the component's identifier.
func (c *Comp[Msg]) ID() uint32 { return c.id }

// Transform returns the transform applied around the component's view.
func (c *Comp[Msg]) Transform() *Transform { return &c.transform }

// View returns the current view subtree.
func (c *Comp[Msg]) View() *Node { return c.view }

// Model returns the wrapped model.
func (c *Comp[Msg]) Model() Model[Msg] { return c.model }

// Pending returns the verdict accumulated since the last UpdateView.
func (c *Comp[Msg]) Pending() ChangeView { return c.state.Get() }

// NeedRecalc reports whether the subtree changed since the last pass.
func (c *Comp[Msg]) NeedRecalc() bool { return c.dirty }

// Send runs the model's Update with msg.
func (c *Comp[Msg]) Send(msg any) {
	m, ok := msg.(Msg)
	if !ok {
		panic(fmt.Sprintf("vellum: component %d expects message %v, got %T",
			c.id, reflect.TypeFor[Msg](), msg))
	}
	c.state.Update(c.model.Update(m))
}

// UpdateView drains queued messages, applies the verdict and recurses into
// nested components.
func (c *Comp[Msg]) UpdateView() ChangeView {
	for len(c.queue) > 0 {
		q := c.queue
		c.queue = nil
		for _, m := range q {
			c.Send(m)
		}
	}

	v := c.state.Take()
	switch v {
	case ChangeRebuild:
		c.rebuild()
	case ChangeModify:
		if p, ok := c.model.(Patcher); ok {
			p.Patch(c.view)
		} else {
			c.rebuild()
			v = ChangeRebuild
		}
	}

	changed := v != ChangeNone
	if updateNested(c.view) {
		changed = true
	}
	if changed {
		c.dirty = true
	}
	return v
}

func (c *Comp[Msg]) base() *compBase { return &c.compBase }

func (c *Comp[Msg]) attach(n *Node) {
	if c.node != nil {
		panic(fmt.Sprintf("vellum: component %d is already embedded", c.id))
	}
	c.node = n
	n.setView(c.view)
}

func (c *Comp[Msg]) receiveSystem(msg SystemMsg) {
	r, ok := c.model.(SystemReceiver[Msg])
	if !ok {
		return
	}
	if m, ok := r.System(msg); ok {
		c.enqueue(m)
	}
}

func (c *Comp[Msg]) buildView() *Node {
	v := c.model.View()
	if v == nil {
		panic(fmt.Sprintf("vellum: component %d built a nil view", c.id))
	}
	return v
}

// rebuild replaces the view and disposes the old subtree.
func (c *Comp[Msg]) rebuild() {
	old := c.view
	c.view = c.buildView()
	if c.node != nil {
		c.node.setView(c.view)
	}
	if old != c.view {
		old.Parent = nil
		old.dispose()
	}
	c.keyValid = false
}

// updateNested runs UpdateView on every component embedded in the subtree
// rooted at n, without descending into their views (each component handles
// its own). It reports whether any of them needs recalculation.
func updateNested(n *Node) bool {
	if n.comp != nil {
		n.comp.UpdateView()
		return n.comp.NeedRecalc()
	}
	changed := false
	for _, child := range n.children {
		if updateNested(child) {
			changed = true
		}
	}
	return changed
}
