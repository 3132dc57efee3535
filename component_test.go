package vellum

import (
	"strings"
	"testing"
)

// boxModel rebuilds a box whose width is its count.
type boxModel struct {
	count   int
	verdict ChangeView
	views   int
}

func (m *boxModel) Update(msg int) ChangeView {
	m.count += msg
	return m.verdict
}

func (m *boxModel) View() *Node {
	m.views++
	return NewNode(NewRectangle(Px(0), Px(0), Px(float64(m.count)), Px(10))).OnClick(1)
}

// patchModel patches its box in place.
type patchModel struct {
	boxModel
	patches int
}

func (m *patchModel) Patch(view *Node) {
	m.patches++
	view.Shape().(*Rectangle).Width = Px(float64(m.count))
}

// --- ChangeViewState ---

func TestChangeViewStateAccumulates(t *testing.T) {
	var s ChangeViewState
	s.Update(ChangeModify)
	s.Update(ChangeModify)
	s.Update(ChangeNone)
	if got := s.Get(); got != ChangeModify {
		t.Errorf("Modify, Modify, None = %v, want modify", got)
	}
}

func TestChangeViewStateRebuildSticks(t *testing.T) {
	var s ChangeViewState
	s.Update(ChangeRebuild)
	s.Update(ChangeModify)
	s.Update(ChangeNone)
	if got := s.Take(); got != ChangeRebuild {
		t.Errorf("Take = %v, want rebuild", got)
	}
	if got := s.Get(); got != ChangeNone {
		t.Errorf("after Take = %v, want none", got)
	}
}

func TestChangeViewString(t *testing.T) {
	if ChangeModify.String() != "modify" || ChangeView(9).String() != "unknown" {
		t.Error("unexpected names")
	}
}

// --- Comp ---

func TestNewCompBuildsViewImmediately(t *testing.T) {
	m := &boxModel{count: 5}
	c := NewComp[int](m)
	if c.View() == nil || m.views != 1 {
		t.Fatalf("views = %d, view = %v", m.views, c.View())
	}
	if !c.NeedRecalc() {
		t.Error("new component should need recalculation")
	}
}

func TestCreateFromProps(t *testing.T) {
	c := Create(func(n int) Model[int] { return &boxModel{count: n} }, 7)
	if got := c.Model().(*boxModel).count; got != 7 {
		t.Errorf("count = %d, want 7", got)
	}
}

func TestSendWrongTypePanics(t *testing.T) {
	c := NewComp[int](&boxModel{})
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "expects message int") {
			t.Errorf("panic = %v", r)
		}
	}()
	c.Send("hello")
}

func TestUpdateViewRebuild(t *testing.T) {
	m := &boxModel{verdict: ChangeRebuild}
	c := NewComp[int](m)
	old := c.View()
	c.Send(3)
	if got := c.Pending(); got != ChangeRebuild {
		t.Fatalf("Pending = %v", got)
	}
	if got := c.UpdateView(); got != ChangeRebuild {
		t.Errorf("UpdateView = %v, want rebuild", got)
	}
	if c.View() == old {
		t.Error("view was not replaced")
	}
	if !old.IsDisposed() {
		t.Error("old view should be disposed")
	}
	assertNear(t, "width", c.View().Shape().(*Rectangle).Width.Val(), 3)
}

func TestUpdateViewModifyPatchesInPlace(t *testing.T) {
	m := &patchModel{boxModel: boxModel{verdict: ChangeModify}}
	c := NewComp[int](m)
	view := c.View()
	c.Send(4)
	if got := c.UpdateView(); got != ChangeModify {
		t.Errorf("UpdateView = %v, want modify", got)
	}
	if c.View() != view || m.patches != 1 || m.views != 1 {
		t.Errorf("view replaced or patch count %d, views %d", m.patches, m.views)
	}
	assertNear(t, "width", view.Shape().(*Rectangle).Width.Val(), 4)
}

func TestUpdateViewModifyWithoutPatcherRebuilds(t *testing.T) {
	m := &boxModel{verdict: ChangeModify}
	c := NewComp[int](m)
	c.Send(1)
	if got := c.UpdateView(); got != ChangeRebuild {
		t.Errorf("UpdateView = %v, want rebuild", got)
	}
	if m.views != 2 {
		t.Errorf("views = %d, want 2", m.views)
	}
}

func TestUpdateViewNoneKeepsClean(t *testing.T) {
	c := NewComp[int](&boxModel{verdict: ChangeNone})
	c.dirty = false
	c.Send(1)
	if got := c.UpdateView(); got != ChangeNone {
		t.Errorf("UpdateView = %v", got)
	}
	if c.NeedRecalc() {
		t.Error("None should not dirty the component")
	}
}

func TestEmbedTwicePanics(t *testing.T) {
	c := NewComp[int](&boxModel{})
	Embed(c)
	assertPanics(t, "embed twice", func() { Embed(c) })
}

func TestComponentNodeRejectsChildOps(t *testing.T) {
	n := Embed(NewComp[int](&boxModel{}))
	assertPanics(t, "AddChild", func() { n.AddChild(NewNode(NewGroup())) })
	if n.NumChildren() != 1 {
		t.Errorf("component node children = %d, want 1", n.NumChildren())
	}
}

func TestNestedUpdateViewPropagatesDirty(t *testing.T) {
	inner := NewComp[int](&boxModel{verdict: ChangeRebuild})
	outerModel := &nestModel{child: Embed(inner)}
	outer := NewComp[int](outerModel)
	outer.dirty, inner.dirty = false, false

	inner.Send(2)
	if got := outer.UpdateView(); got != ChangeNone {
		t.Errorf("outer verdict = %v, want none", got)
	}
	if !inner.NeedRecalc() || !outer.NeedRecalc() {
		t.Error("a nested rebuild should dirty both components")
	}
}

// nestModel wraps a fixed child node in a group.
type nestModel struct {
	child *Node
}

func (m *nestModel) Update(int) ChangeView { return ChangeNone }
func (m *nestModel) View() *Node { return NewNode(NewGroup(), m.child) }
