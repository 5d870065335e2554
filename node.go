package reveal

import "strings"

// TriggerContext carries trigger state change data to per-node callbacks.
type TriggerContext struct {
	Node     *Node
	EntityID uint32
	UserData any
	// ID is the element's data-reveal-id, if any.
	ID     string
	Params AnimationParams
	Mirror bool
}

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic, reveal is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is an element of the rendered document. A single flat struct is used
// for every element; trigger metadata lives in string attributes and the
// animate state is expressed through classes.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout (local). Width and Height are the unscaled box size.
	X, Y          float64
	Width, Height float64
	ScaleX        float64
	ScaleY        float64
	Rotation      float64
	PivotX        float64
	PivotY        float64

	// Presentation
	Alpha   float64
	Visible bool
	Color   Color

	// Metadata
	UserData any
	EntityID uint32

	attrs   map[string]string
	classes []string

	// Per-node callbacks (nil by default)
	OnEnter func(TriggerContext)
	OnLeave func(TriggerContext)

	// mutations is only set on a Scene root.
	mutations *mutationWatch
	disposed  bool
}

// NewNode creates a node with the given name and box size.
func NewNode(name string, width, height float64) *Node {
	return &Node{
		ID:      nextNodeID(),
		Name:    name,
		Width:   width,
		Height:  height,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Visible: true,
		Color:   ColorWhite,
	}
}

// NewContainer creates a zero-sized grouping node.
func NewContainer(name string) *Node {
	return NewNode(name, 0, 0)
}

// --- Attributes ---

// SetAttr sets a metadata attribute.
func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// Attr returns the attribute value and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// HasAttr reports whether the attribute is present.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.attrs[key]
	return ok
}

// RemoveAttr deletes an attribute. No-op if absent.
func (n *Node) RemoveAttr(key string) {
	delete(n.attrs, key)
}

// --- Classes ---

// AddClass adds a presentation class. Returns false if it was already set.
func (n *Node) AddClass(class string) bool {
	if class == "" || n.HasClass(class) {
		return false
	}
	n.classes = append(n.classes, class)
	return true
}

// RemoveClass removes a presentation class. Returns false if it was not set.
func (n *Node) RemoveClass(class string) bool {
	for i, c := range n.classes {
		if c == class {
			copy(n.classes[i:], n.classes[i+1:])
			n.classes[len(n.classes)-1] = ""
			n.classes = n.classes[:len(n.classes)-1]
			return true
		}
	}
	return false
}

// HasClass reports whether the class is set.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes returns the class list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Classes() []string {
	return n.classes
}

// ClassName returns the classes joined by spaces.
func (n *Node) ClassName() string {
	return strings.Join(n.classes, " ")
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("reveal: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("reveal: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	notifyMutation(n, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("reveal: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("reveal: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	if index < 0 || index > len(n.children) {
		panic("reveal: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	notifyMutation(n, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("reveal: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	notifyMutation(n, child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	removed := n.children
	n.children = nil
	for _, child := range removed {
		child.Parent = nil
		notifyMutation(n, child)
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Walk visits n and its descendants depth-first in document order.
// Returning false from fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// Find returns the first node in document order (n included) whose Name
// matches. A leading '#' in name is ignored. Returns nil if none match.
func (n *Node) Find(name string) *Node {
	name = strings.TrimPrefix(name, "#")
	if name == "" {
		return nil
	}
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// Root returns the topmost ancestor of n (n itself when detached).
func (n *Node) Root() *Node {
	p := n
	for p.Parent != nil {
		p = p.Parent
	}
	return p
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
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
	n.attrs = nil
	n.classes = nil
	n.UserData = nil
	n.OnEnter = nil
	n.OnLeave = nil
	n.mutations = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

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

// notifyMutation reports an added or removed subtree to the watch installed
// on the tree's root, if any.
func notifyMutation(parent, subtree *Node) {
	if w := parent.Root().mutations; w != nil {
		w.record(subtree)
	}
}
