package vellum

import (
	"fmt"
	"time"
)

// Key names a keyboard key using the driver's key names ("A", "Enter",
// "ArrowLeft", ...).
type Key string

// --- System messages ---

// SystemMsg is a message from the driver: a resize, a draw tick or an input
// event. It is broadcast to every node in the tree.
type SystemMsg interface {
	Kind() EventKind
}

// WindowResized reports the new drawable size.
type WindowResized struct {
	Width, Height float64
}

// DrawTick is sent once per frame with the time since the previous tick.
type DrawTick struct {
	Elapsed time.Duration
}

// MouseDown reports a button press at a device-space position.
type MouseDown struct {
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// KeyDown reports a key press.
type KeyDown struct {
	Key       Key
	Modifiers KeyModifiers
}

// KeyUp reports a key release.
type KeyUp struct {
	Key       Key
	Modifiers KeyModifiers
}

// CharTyped reports a typed character.
type CharTyped struct {
	Char rune
}

func (WindowResized) Kind() EventKind { return EventResize }
func (DrawTick) Kind() EventKind { return EventDrawTick }
func (MouseDown) Kind() EventKind { return EventMouseDown }
func (KeyDown) Kind() EventKind { return EventKeyDown }
func (KeyUp) Kind() EventKind { return EventKeyUp }
func (CharTyped) Kind() EventKind { return EventChar }

// EventKind selects which system messages a listener receives.
type EventKind uint8

const (
	EventResize EventKind = iota
	EventDrawTick
	EventMouseDown
	EventKeyDown
	EventKeyUp
	EventChar
)

var eventKindNames = [...]string{"resize", "tick", "mousedown", "keydown", "keyup", "char"}

// String returns the kind's name.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// --- Listeners ---

// Event is what a listener sees. For mouse events LocalX and LocalY are the
// pointer position in the node's local space.
type Event struct {
	Node           *Node
	Msg            SystemMsg
	LocalX, LocalY float64
}

// Listener reacts to a system message. A non-nil result is queued as a
// message for the nearest enclosing component and delivered during its
// next UpdateView, never during the traversal that produced it.
type Listener func(ev Event) any

type listener struct {
	kind EventKind
	fn   Listener
}

// On registers fn for system messages of kind and returns n. Mouse-down
// listeners only fire when the pointer intersects the node.
func (n *Node) On(kind EventKind, fn Listener) *Node {
	if fn == nil {
		panic("vellum: cannot register nil listener")
	}
	n.checkPrim("On")
	n.listeners = append(n.listeners, listener{kind: kind, fn: fn})
	return n
}

// OnClick registers a mouse-down listener that ignores the event details.
func (n *Node) OnClick(msg any) *Node {
	return n.On(EventMouseDown, func(Event) any { return msg })
}

// --- Dispatch ---

// Dispatch broadcasts msg depth-first, in pre-order, to every node under
// root. Components receive it through SystemReceiver; primitives through
// their listeners. Messages produced outside any component are returned.
func Dispatch(root *Node, msg SystemMsg) []any {
	var orphans []any
	dispatchNode(root, msg, nil, &orphans)
	return orphans
}

func dispatchNode(n *Node, msg SystemMsg, owner *compBase, orphans *[]any) {
	if n.comp != nil {
		n.comp.receiveSystem(msg)
		dispatchNode(n.comp.View(), msg, n.comp.base(), orphans)
		return
	}

	kind := msg.Kind()
	var ev Event
	hitChecked, hit := false, false
	for _, l := range n.listeners {
		if l.kind != kind {
			continue
		}
		if !hitChecked {
			ev = Event{Node: n, Msg: msg}
			if md, ok := msg.(MouseDown); ok {
				hit = n.Intersect(md.X, md.Y)
				ev.LocalX, ev.LocalY = n.toLocal(md.X, md.Y)
			} else {
				hit = true
			}
			hitChecked = true
		}
		if !hit {
			break
		}
		out := l.fn(ev)
		if out == nil {
			continue
		}
		if owner != nil {
			owner.enqueue(out)
		} else {
			*orphans = append(*orphans, out)
		}
	}

	for _, child := range n.children {
		dispatchNode(child, msg, owner, orphans)
	}
}

// --- Hit testing ---

// toLocal maps a device-space point into n's local space through the
// inverse of its global matrix (the local matrix before any pass ran).
func (n *Node) toLocal(x, y float64) (float64, float64) {
	return n.Transform().Matrix().Invert().Apply(x, y)
}

// Intersect reports whether the device-space point (x, y) hits the node's
// shape. Rectangles and circles are tested in local space with edges
// inclusive. Paths, text, groups and component nodes never hit.
func (n *Node) Intersect(x, y float64) bool {
	switch s := n.shape.(type) {
	case *Rectangle:
		lx, ly := n.toLocal(x, y)
		dx, dy := lx-s.X.Val(), ly-s.Y.Val()
		return dx >= 0 && dx <= s.Width.Val() && dy >= 0 && dy <= s.Height.Val()
	case *Circle:
		lx, ly := n.toLocal(x, y)
		dx, dy := lx-s.CX.Val(), ly-s.CY.Val()
		r := s.R.Val()
		return dx*dx+dy*dy <= r*r
	default:
		// TODO: path and text hit testing need a fill-rule test and glyph
		// boxes respectively.
		return false
	}
}

// HitTest returns the deepest, last-painted node under (x, y), or nil.
func HitTest(root *Node, x, y float64) *Node {
	children := root.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if h := HitTest(children[i], x, y); h != nil {
			return h
		}
	}
	if root.Intersect(x, y) {
		return root
	}
	return nil
}
