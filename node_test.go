package reveal

import "testing"

// --- Constructor defaults ---

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("box", 40, 20)
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != "box" {
		t.Errorf("Name = %q, want %q", n.Name, "box")
	}
	if n.Width != 40 || n.Height != 20 {
		t.Errorf("size = (%v, %v), want (40, 20)", n.Width, n.Height)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
}

func TestNewContainerIsZeroSized(t *testing.T) {
	n := NewContainer("group")
	if n.Width != 0 || n.Height != 0 {
		t.Errorf("size = (%v, %v), want (0, 0)", n.Width, n.Height)
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	if a.ID == b.ID {
		t.Errorf("IDs should differ, both = %d", a.ID)
	}
}

// --- Attributes ---

func TestAttributes(t *testing.T) {
	n := NewContainer("n")
	if n.HasAttr(AttrTrigger) {
		t.Fatal("new node should have no attributes")
	}
	n.SetAttr(AttrTrigger, "fade-up")
	if v, ok := n.Attr(AttrTrigger); !ok || v != "fade-up" {
		t.Errorf("Attr = (%q, %v), want (fade-up, true)", v, ok)
	}
	n.SetAttr(AttrOnce, "")
	if !n.HasAttr(AttrOnce) {
		t.Error("empty attribute should still be present")
	}
	n.RemoveAttr(AttrTrigger)
	n.RemoveAttr(AttrTrigger)
	if n.HasAttr(AttrTrigger) {
		t.Error("attribute should be removed")
	}
}

// --- Classes ---

func TestClasses(t *testing.T) {
	n := NewContainer("n")
	if !n.AddClass("a") {
		t.Error("first AddClass should report true")
	}
	if n.AddClass("a") {
		t.Error("duplicate AddClass should report false")
	}
	if n.AddClass("") {
		t.Error("empty class should be ignored")
	}
	n.AddClass("b")
	if got := n.ClassName(); got != "a b" {
		t.Errorf("ClassName = %q, want %q", got, "a b")
	}
	if !n.RemoveClass("a") {
		t.Error("RemoveClass of present class should report true")
	}
	if n.RemoveClass("a") {
		t.Error("RemoveClass of absent class should report false")
	}
	if n.HasClass("a") || !n.HasClass("b") {
		t.Errorf("classes = %v, want [b]", n.Classes())
	}
}

// --- Tree manipulation ---

func TestAddChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Error("parent should have one child")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewContainer("child")
	a.AddChild(child)
	b.AddChild(child)
	if a.NumChildren() != 0 {
		t.Errorf("old parent has %d children, want 0", a.NumChildren())
	}
	if child.Parent != b {
		t.Error("child.Parent should be b")
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	a.AddChild(b)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.AddChild(a)
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil child")
		}
	}()
	NewContainer("a").AddChild(nil)
}

func TestAddChildAt(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(c)
	parent.AddChildAt(b, 1)
	for i, want := range []*Node{a, b, c} {
		if parent.Children()[i] != want {
			t.Errorf("child %d = %s, want %s", i, parent.Children()[i].Name, want.Name)
		}
	}
}

func TestAddChildAtOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on bad index")
		}
	}()
	NewContainer("p").AddChildAt(NewContainer("c"), 2)
}

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	parent.RemoveChild(child)
	if child.Parent != nil || parent.NumChildren() != 0 {
		t.Error("child should be detached")
	}
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewContainer("a").RemoveChild(NewContainer("b"))
}

func TestRemoveFromParentNoParent(t *testing.T) {
	NewContainer("a").RemoveFromParent()
}

func TestRemoveChildren(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.RemoveChildren()
	if parent.NumChildren() != 0 || a.Parent != nil || b.Parent != nil {
		t.Error("all children should be detached")
	}
}

// --- Traversal ---

func TestWalkDocumentOrder(t *testing.T) {
	root := NewContainer("root")
	a := NewContainer("a")
	a1 := NewContainer("a1")
	b := NewContainer("b")
	root.AddChild(a)
	a.AddChild(a1)
	root.AddChild(b)

	var names []string
	root.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return true
	})
	want := []string{"root", "a", "a1", "b"}
	if len(names) != len(want) {
		t.Fatalf("visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("visit %d = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestWalkSkipsSubtree(t *testing.T) {
	root := NewContainer("root")
	a := NewContainer("a")
	a.AddChild(NewContainer("a1"))
	root.AddChild(a)

	count := 0
	root.Walk(func(n *Node) bool {
		count++
		return n != a
	})
	if count != 2 {
		t.Errorf("visited %d nodes, want 2", count)
	}
}

func TestFind(t *testing.T) {
	root := NewContainer("root")
	first := NewContainer("target")
	second := NewContainer("target")
	root.AddChild(first)
	root.AddChild(second)

	if got := root.Find("#target"); got != first {
		t.Error("Find should return the first match in document order")
	}
	if got := root.Find("target"); got != first {
		t.Error("Find without '#' should match too")
	}
	if root.Find("missing") != nil || root.Find("#") != nil {
		t.Error("Find should return nil when nothing matches")
	}
}

func TestRoot(t *testing.T) {
	root := NewContainer("root")
	mid := NewContainer("mid")
	leaf := NewContainer("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)
	if leaf.Root() != root {
		t.Error("Root should return the topmost ancestor")
	}
	if root.Root() != root {
		t.Error("Root of a detached node is itself")
	}
}

// --- Disposal ---

func TestDispose(t *testing.T) {
	parent := NewContainer("parent")
	n := NewContainer("n")
	child := NewContainer("child")
	parent.AddChild(n)
	n.AddChild(child)
	n.SetAttr(AttrTrigger, "fade")
	n.AddClass("x")

	n.Dispose()
	if !n.IsDisposed() || !child.IsDisposed() {
		t.Error("node and descendants should be disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("disposed node should be removed from its parent")
	}
	if n.HasAttr(AttrTrigger) || len(n.Classes()) != 0 {
		t.Error("disposed node should drop attributes and classes")
	}
	n.Dispose()
}

// --- Mutation reporting ---

func TestTreeChangesReachRootWatch(t *testing.T) {
	var w mutationWatch
	root := NewContainer("root")
	root.mutations = &w
	fired := 0
	w.add(AttrTrigger, func() { fired++ })

	plain := NewContainer("plain")
	root.AddChild(plain)
	w.flush()
	if fired != 0 {
		t.Errorf("subtree without trigger attribute fired %d times", fired)
	}

	group := NewContainer("group")
	item := NewContainer("item")
	item.SetAttr(AttrTrigger, "fade")
	group.AddChild(item)
	plain.AddChild(group)
	root.RemoveChild(plain)
	w.flush()
	if fired != 1 {
		t.Errorf("fired = %d, want 1 (changes coalesce per flush)", fired)
	}
}
