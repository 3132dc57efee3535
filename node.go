package vellum

import "fmt"

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic: vellum is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is a tree element. A primitive node carries a Shape and owns its
// children; a component node embeds a Component whose view subtree it owns.
// Exactly one of the two is set.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	shape Shape
	comp  Component

	listeners []listener

	// Computed by the recalculation pass, in the parent's space.
	bound Rect

	disposed bool
}

// NewNode returns a primitive node drawing shape, with children attached in
// order.
func NewNode(shape Shape, children ...*Node) *Node {
	if shape == nil {
		panic("vellum: cannot create node with nil shape")
	}
	n := &Node{ID: nextNodeID(), shape: shape}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// Embed returns a component node. The component's view becomes the node's
// only child and is owned by it.
func Embed(c Component) *Node {
	if c == nil {
		panic("vellum: cannot embed nil component")
	}
	n := &Node{ID: nextNodeID(), comp: c}
	c.attach(n)
	return n
}

// Shape returns the node's shape, or nil for a component node.
func (n *Node) Shape() Shape { return n.shape }

// Component returns the embedded component, or nil for a primitive node.
func (n *Node) Component() Component { return n.comp }

// IsComponent reports whether n embeds a component.
func (n *Node) IsComponent() bool { return n.comp != nil }

// Bound returns the axis-aligned bound computed by the last recalculation
// pass.
func (n *Node) Bound() Rect { return n.bound }

// Transform returns the node's transform: the shape's or the component's.
func (n *Node) Transform() *Transform {
	if n.comp != nil {
		return n.comp.Transform()
	}
	return n.shape.Xform()
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, child is an ancestor of this node (cycle), or this
// node is a component node.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("vellum: cannot add nil child")
	}
	n.checkPrim("AddChild")
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("vellum: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("vellum: cannot add nil child")
	}
	n.checkPrim("AddChildAt")
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("vellum: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(n.children) {
		panic("vellum: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("vellum: child's parent is not this node")
	}
	n.checkPrim("RemoveChild")
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	n.checkPrim("RemoveChildAt")
	if index < 0 || index >= len(n.children) {
		panic("vellum: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	return child
}

// ReplaceChildAt swaps the child at index for child and returns the old
// one, detached but not disposed.
func (n *Node) ReplaceChildAt(index int, child *Node) *Node {
	if child == nil {
		panic("vellum: cannot add nil child")
	}
	n.checkPrim("ReplaceChildAt")
	if index < 0 || index >= len(n.children) {
		panic("vellum: child index out of range")
	}
	if isAncestor(child, n) {
		panic("vellum: adding child would create a cycle")
	}
	old := n.children[index]
	if old == child {
		return old
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		// The removal may have shifted old to a lower index.
		index = n.indexOf(old)
	}
	old.Parent = nil
	child.Parent = n
	n.children[index] = child
	return old
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent or is a component's view.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil || n.Parent.comp != nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	n.checkPrim("RemoveChildren")
	for _, child := range n.children {
		child.Parent = nil
	}
	n.children = n.children[:0]
}

// Children returns the child list. For a component node it is the view as a
// single child. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	if n.comp != nil {
		return n.children[:1:1]
	}
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.Children())
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	children := n.Children()
	if index < 0 || index >= len(children) {
		panic(fmt.Sprintf("vellum: child index %d out of range [0,%d)", index, len(children)))
	}
	return children[index]
}

// At walks path from n, one child index per step. A component node's view
// is its child 0. Panics if any step does not exist.
func (n *Node) At(path ...int) *Node {
	cur := n
	for depth, i := range path {
		children := cur.Children()
		if i < 0 || i >= len(children) {
			panic(fmt.Sprintf("vellum: node path %v does not exist (step %d)", path, depth))
		}
		cur = children[i]
	}
	return cur
}

// Named sets n's name and returns n.
func (n *Node) Named(name string) *Node {
	n.Name = name
	return n
}

// Find returns the first node named name in depth-first order, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children() {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// SetChildIndex moves child to a new index among its siblings.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("vellum: child's parent is not this node")
	}
	n.checkPrim("SetChildIndex")
	nc := len(n.children)
	if index < 0 || index >= nc {
		panic("vellum: child index out of range")
	}
	oldIndex := n.indexOf(child)
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants, including embedded component
// views.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.listeners = nil
	n.comp = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// checkPrim panics when a child-list operation targets a component node,
// whose only child is its view.
func (n *Node) checkPrim(op string) {
	if n.comp != nil {
		panic(fmt.Sprintf("vellum: %s on component node %q", op, n.Name))
	}
}

// setView installs view as a component node's only child.
func (n *Node) setView(view *Node) {
	if view.Parent != nil && view.Parent != n {
		view.Parent.removeChildByPtr(view)
	}
	view.Parent = n
	if len(n.children) == 0 {
		n.children = []*Node{view}
		return
	}
	n.children[0] = view
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
