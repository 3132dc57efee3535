package vellum

import (
	"strings"
	"testing"
)

// --- Intersect ---

func TestIntersectRectangle(t *testing.T) {
	n := NewNode(NewRectangle(Px(10), Px(20), Px(30), Px(40)))
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 25, 30, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 40, 60, true},
		{"right of", 41, 30, false},
		{"left of", 5, 30, false},
		{"below", 25, 61, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Intersect(tt.x, tt.y); got != tt.expect {
				t.Errorf("Intersect(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestIntersectCircleBoundary(t *testing.T) {
	n := NewNode(NewCircle(Px(50), Px(50), Px(10)))
	if !n.Intersect(60, 50) {
		t.Error("point on the circle should hit")
	}
	if n.Intersect(60.01, 50) {
		t.Error("point just outside should miss")
	}
	if !n.Intersect(50, 50) {
		t.Error("center should hit")
	}
}

func TestIntersectTransformed(t *testing.T) {
	r := NewRectangle(Px(0), Px(0), Px(10), Px(10))
	r.Transform.Translate(100, 0)
	n := NewNode(r)
	Recalculate(n, screen, nil)
	if !n.Intersect(105, 5) {
		t.Error("translated rect should hit at 105,5")
	}
	if n.Intersect(5, 5) {
		t.Error("translated rect should miss its untranslated position")
	}
}

func TestIntersectRotated(t *testing.T) {
	r := NewRectangle(Px(0), Px(0), Px(20), Px(10))
	r.Transform.Rotate(halfPi)
	n := NewNode(r)
	// Rotating by 90 degrees maps (x, y) to (-y, x).
	if !n.Intersect(-5, 15) {
		t.Error("rotated rect should hit")
	}
	if n.Intersect(15, 5) {
		t.Error("rotated rect should miss")
	}
}

func TestIntersectPathAndTextMiss(t *testing.T) {
	p := NewNode(NewPath(MoveTo(0, 0), LineTo(10, 0), LineTo(10, 10), ClosePath()))
	if p.Intersect(5, 1) {
		t.Error("paths do not hit test")
	}
	txt := NewNode(NewText("x", "f", 12, Px(0), Px(0)))
	if txt.Intersect(0, 0) {
		t.Error("text does not hit test")
	}
}

func TestIntersectSingularTransformPanics(t *testing.T) {
	r := NewRectangle(Px(0), Px(0), Px(10), Px(10))
	r.Transform.Scale(0, 1)
	n := NewNode(r)
	assertPanics(t, "singular", func() { n.Intersect(1, 1) })
}

func TestHitTestDeepestLast(t *testing.T) {
	below := NewNode(NewRectangle(Px(0), Px(0), Px(100), Px(100))).Named("below")
	above := NewNode(NewRectangle(Px(0), Px(0), Px(50), Px(50))).Named("above")
	root := NewNode(NewGroup(), below, above)
	if got := HitTest(root, 10, 10); got != above {
		t.Errorf("HitTest = %v, want above", got)
	}
	if got := HitTest(root, 80, 80); got != below {
		t.Errorf("HitTest = %v, want below", got)
	}
	if got := HitTest(root, 500, 500); got != nil {
		t.Errorf("HitTest = %v, want nil", got)
	}
}

// --- Dispatch ---

func TestDispatchResizeReachesEveryNode(t *testing.T) {
	var seen []string
	record := func(ev Event) any {
		seen = append(seen, ev.Node.Name)
		return nil
	}
	a := group("a").On(EventResize, record)
	b := group("b").On(EventResize, record)
	c := group("c").On(EventResize, record)
	root := group("root").On(EventResize, record)
	root.AddChild(a)
	a.AddChild(b)
	root.AddChild(c)

	Dispatch(root, WindowResized{Width: 10, Height: 10})
	if got := strings.Join(seen, ","); got != "root,a,b,c" {
		t.Errorf("pre-order = %s, want root,a,b,c", got)
	}
}

func TestDispatchFiltersKind(t *testing.T) {
	calls := 0
	n := group("n").On(EventKeyDown, func(Event) any { calls++; return nil })
	Dispatch(n, KeyUp{Key: "A"})
	Dispatch(n, KeyDown{Key: "A"})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDispatchMouseDownGatedByIntersect(t *testing.T) {
	var local Event
	hits := 0
	r := NewRectangle(Px(10), Px(10), Px(20), Px(20))
	r.Transform.Translate(5, 0)
	n := NewNode(r).On(EventMouseDown, func(ev Event) any {
		hits++
		local = ev
		return nil
	})
	Recalculate(n, screen, nil)

	Dispatch(n, MouseDown{X: 0, Y: 0})
	if hits != 0 {
		t.Fatal("miss should not fire")
	}
	Dispatch(n, MouseDown{X: 20, Y: 15})
	if hits != 1 {
		t.Fatal("hit should fire")
	}
	assertNear(t, "LocalX", local.LocalX, 15)
	assertNear(t, "LocalY", local.LocalY, 15)
}

func TestDispatchOrphansReturned(t *testing.T) {
	n := NewNode(NewRectangle(Px(0), Px(0), Px(10), Px(10))).OnClick("clicked")
	out := Dispatch(n, MouseDown{X: 5, Y: 5})
	if len(out) != 1 || out[0] != "clicked" {
		t.Errorf("orphans = %v", out)
	}
}

func TestDispatchQueuesOnNearestComponent(t *testing.T) {
	inner := NewComp[int](&boxModel{count: 10, verdict: ChangeRebuild})
	outerModel := &nestModel{child: Embed(inner)}
	outer := NewComp[int](outerModel)
	root := Embed(outer)
	Recalculate(root, screen, nil)

	out := Dispatch(root, MouseDown{X: 5, Y: 5})
	if len(out) != 0 {
		t.Errorf("orphans = %v", out)
	}
	if len(inner.queue) != 1 || len(outer.queue) != 0 {
		t.Fatalf("inner queue %v, outer queue %v", inner.queue, outer.queue)
	}
	// Nothing is applied during traversal.
	if inner.Model().(*boxModel).count != 10 {
		t.Error("listener result applied during dispatch")
	}
	outer.UpdateView()
	if got := inner.Model().(*boxModel).count; got != 11 {
		t.Errorf("count = %d, want 11", got)
	}
}

// tickModel counts draw ticks it receives through System.
type tickModel struct {
	ticks int
}

func (m *tickModel) Update(msg int) ChangeView {
	m.ticks += msg
	return ChangeNone
}

func (m *tickModel) View() *Node { return NewNode(NewGroup()) }

func (m *tickModel) System(msg SystemMsg) (int, bool) {
	if _, ok := msg.(DrawTick); ok {
		return 1, true
	}
	return 0, false
}

func TestDispatchSystemReceiver(t *testing.T) {
	m := &tickModel{}
	c := NewComp[int](m)
	root := Embed(c)
	Dispatch(root, DrawTick{})
	Dispatch(root, KeyDown{Key: "A"})
	c.UpdateView()
	if m.ticks != 1 {
		t.Errorf("ticks = %d, want 1", m.ticks)
	}
}

func TestEventKindString(t *testing.T) {
	if EventMouseDown.String() != "mousedown" || EventKind(99).String() != "EventKind(99)" {
		t.Error("unexpected names")
	}
}
