package vellum

import (
	"testing"
	"time"
)

// pairModel lays out two nested box components side by side.
type pairModel struct {
	left, right *Comp[int]
	leftNode    *Node
	rightNode   *Node
	resizes     int
}

func newPairModel() *pairModel {
	m := &pairModel{
		left:  NewComp[int](&boxModel{count: 10, verdict: ChangeRebuild}),
		right: NewComp[int](&boxModel{count: 20, verdict: ChangeRebuild}),
	}
	m.right.Transform().Translate(100, 0)
	m.leftNode, m.rightNode = Embed(m.left), Embed(m.right)
	return m
}

func (m *pairModel) Update(msg int) ChangeView {
	m.resizes += msg
	return ChangeNone
}

func (m *pairModel) View() *Node {
	bg := NewRectangle(Px(0), Px(0), Pct(100), Pct(100))
	return NewNode(bg, m.leftNode, m.rightNode).Named("bg")
}

func (m *pairModel) System(msg SystemMsg) (int, bool) {
	_, ok := msg.(WindowResized)
	return 1, ok
}

func newPairScene() (*Scene, *pairModel) {
	m := newPairModel()
	s := NewScene(NewComp[int](m), nil)
	s.Resize(200, 100)
	s.Update()
	return s, m
}

func TestSceneFirstUpdateLaysOut(t *testing.T) {
	s, m := newPairScene()
	assertRect(t, "bound", s.Bound(), Rect{0, 0, 200, 100})
	if m.resizes != 1 {
		t.Errorf("resizes = %d, want 1", m.resizes)
	}
	if s.FrameCount() != 1 {
		t.Errorf("FrameCount = %d", s.FrameCount())
	}
	if s.Component().NeedRecalc() {
		t.Error("root should be clean after layout")
	}
}

func TestSceneResizeDispatchedBeforeRecalc(t *testing.T) {
	s, _ := newPairScene()
	bg := s.Root().Find("bg")
	var widthAtDispatch float64
	calls := 0
	record := func(ev Event) any {
		calls++
		widthAtDispatch = bg.Shape().(*Rectangle).Width.Val()
		return nil
	}
	bg.On(EventResize, record)
	bg.At(0, 0).On(EventResize, record)
	bg.At(1, 0).On(EventResize, record)

	s.Resize(400, 300)
	s.Update()
	if calls != 3 {
		t.Errorf("listener calls = %d, want 3", calls)
	}
	assertNear(t, "width seen by listeners", widthAtDispatch, 200)
	assertNear(t, "width after update", bg.Shape().(*Rectangle).Width.Val(), 400)
}

func TestSceneSkipsCleanComponents(t *testing.T) {
	s, m := newPairScene()
	m.left.Send(5)
	s.Update()
	if !s.lastStats.recalculated {
		t.Fatal("expected a recalculation pass")
	}
	if s.lastStats.skipped != 1 {
		t.Errorf("skipped = %d, want 1 (the right component)", s.lastStats.skipped)
	}
	assertNear(t, "left width", m.left.View().Shape().(*Rectangle).Width.Val(), 15)
}

// shiftModel moves its embedded child by patching the child's transform.
type shiftModel struct {
	child *Comp[int]
	node  *Node
	dx    int
}

func (m *shiftModel) Update(dx int) ChangeView {
	m.dx = dx
	return ChangeModify
}

func (m *shiftModel) View() *Node {
	return NewNode(NewRectangle(Px(0), Px(0), Pct(100), Pct(100)), m.node)
}

func (m *shiftModel) Patch(view *Node) {
	m.child.Transform().Translate(float64(m.dx), 0)
}

func TestScenePatchedChildTransformIsRelaidOut(t *testing.T) {
	m := &shiftModel{child: NewComp[int](&boxModel{count: 10})}
	m.node = Embed(m.child)
	s := NewScene(NewComp[int](m), nil)
	s.Resize(200, 100)
	s.Update()

	box := m.child.View().Shape().(*Rectangle)
	before, _ := box.Transform.Global()
	assertMatrix(t, "box global before", before, Identity())

	s.Send(50)
	s.Update()
	if s.lastStats.skipped != 0 {
		t.Errorf("skipped = %d, want 0", s.lastStats.skipped)
	}
	after, _ := box.Transform.Global()
	assertMatrix(t, "box global after", after, Translation(50, 0))
	if hit := HitTest(s.Root(), 55, 5); hit != m.child.View() {
		t.Errorf("HitTest(55, 5) = %v, want the shifted box", hit)
	}

	s.Update()
	if s.lastStats.recalculated {
		t.Error("no further change, recalculation should be skipped")
	}
}

func TestSceneNoChangeNoRecalc(t *testing.T) {
	s, _ := newPairScene()
	s.Update()
	if s.lastStats.recalculated {
		t.Error("nothing changed, recalculation should be skipped")
	}
}

func TestSceneInvalidateForcesFullWalk(t *testing.T) {
	s, _ := newPairScene()
	s.Invalidate()
	s.Update()
	if !s.lastStats.recalculated || s.lastStats.skipped != 0 {
		t.Errorf("recalculated %v skipped %d", s.lastStats.recalculated, s.lastStats.skipped)
	}
}

func TestSceneSendReachesRoot(t *testing.T) {
	s, m := newPairScene()
	s.Send(2)
	s.Update()
	if m.resizes != 3 {
		t.Errorf("resizes = %d, want 3", m.resizes)
	}
}

func TestSceneFrameDraws(t *testing.T) {
	m := newPairModel()
	m.left.View().Shape().(*Rectangle).Fill = Fill(ColorRed)
	s := NewScene(NewComp[int](m), nil)
	s.Resize(200, 100)

	r := NewRecorder()
	s.Frame(r, 16*time.Millisecond)
	if len(r.Fills()) != 1 {
		t.Errorf("fills = %d, want 1", len(r.Fills()))
	}
}

func TestSceneClickReachesNestedComponent(t *testing.T) {
	s, m := newPairScene()
	// The right box spans x in [100, 120] after its component transform.
	s.Post(MouseDown{X: 110, Y: 5})
	s.Update()
	s.Update()
	if got := m.right.Model().(*boxModel).count; got != 21 {
		t.Errorf("right count = %d, want 21", got)
	}
	if got := m.left.Model().(*boxModel).count; got != 10 {
		t.Errorf("left count = %d, want 10", got)
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s, _ := newPairScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	if !s.debug || !globalDebug {
		t.Error("debug should be true")
	}
}

type sliceStore struct {
	events []InteractionEvent
}

func (s *sliceStore) EmitEvent(ev InteractionEvent) { s.events = append(s.events, ev) }

func TestSceneForwardsToEntityStore(t *testing.T) {
	s, m := newPairScene()
	store := &sliceStore{}
	s.SetEntityStore(store)

	s.Post(DrawTick{Elapsed: time.Millisecond})
	s.Post(MouseDown{X: 105, Y: 5})
	s.Update()

	if len(store.events) != 2 {
		t.Fatalf("events = %d, want 2", len(store.events))
	}
	if store.events[0].Kind != EventDrawTick || store.events[0].NodeID != 0 {
		t.Errorf("event 0 = %+v", store.events[0])
	}
	hit := store.events[1]
	if want := m.right.View().ID; hit.NodeID != want {
		t.Errorf("NodeID = %d, want %d (the right box)", hit.NodeID, want)
	}
	assertNear(t, "LocalX", hit.LocalX, 5)
	assertNear(t, "LocalY", hit.LocalY, 5)
	if hit.Frame != 1 {
		t.Errorf("Frame = %d, want 1", hit.Frame)
	}

	s.SetEntityStore(nil)
	s.Post(DrawTick{})
	s.Update()
	if len(store.events) != 2 {
		t.Error("cleared store should receive nothing")
	}
}
