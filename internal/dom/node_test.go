package dom

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 3, 4, true},
		{"top-left corner", 2, 3, true},
		{"right edge exclusive", 6, 3, false},
		{"bottom edge exclusive", 2, 5, false},
		{"left of rect", 1, 4, false},
		{"above rect", 3, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestAppendDetach(t *testing.T) {
	root := NewNode("editor")
	a := NewNode("block")
	b := NewNode("block")

	root.Append(a)
	root.Append(b)

	if len(root.Children()) != 2 {
		t.Fatalf("children = %d, want 2", len(root.Children()))
	}
	if a.Parent() != root {
		t.Error("a.Parent() != root after Append")
	}

	// Re-appending to another parent detaches first.
	other := NewNode("editor")
	other.Append(a)
	if len(root.Children()) != 1 {
		t.Errorf("root children = %d after move, want 1", len(root.Children()))
	}
	if a.Parent() != other {
		t.Error("a.Parent() != other after move")
	}

	b.Detach()
	if len(root.Children()) != 0 {
		t.Errorf("root children = %d after Detach, want 0", len(root.Children()))
	}
	if b.Parent() != nil {
		t.Error("b.Parent() != nil after Detach")
	}
}

func TestClosest(t *testing.T) {
	root := NewNode("editor")
	block := NewNode("block")
	text := NewNode("text")
	root.Append(block)
	block.Append(text)

	got := text.Closest(func(n *Node) bool { return n.Name == "block" })
	if got != block {
		t.Errorf("Closest(block) = %v, want block node", got)
	}

	if text.Closest(func(n *Node) bool { return n.Name == "missing" }) != nil {
		t.Error("Closest for absent name should be nil")
	}

	// A node matches itself.
	if block.Closest(func(n *Node) bool { return n.Name == "block" }) != block {
		t.Error("Closest should match the starting node")
	}
}

func TestContainsNode(t *testing.T) {
	root := NewNode("editor")
	block := NewNode("block")
	text := NewNode("text")
	root.Append(block)
	block.Append(text)

	if !root.Contains(text) {
		t.Error("root should contain descendant text node")
	}
	if !block.Contains(block) {
		t.Error("a node should contain itself")
	}
	if block.Contains(root) {
		t.Error("child should not contain its ancestor")
	}
}

func TestHitTest(t *testing.T) {
	root := NewNode("editor")
	root.Rect = Rect{X: 0, Y: 0, Width: 80, Height: 24}

	first := NewNode("block")
	first.Rect = Rect{X: 0, Y: 0, Width: 80, Height: 2}
	second := NewNode("block")
	second.Rect = Rect{X: 0, Y: 2, Width: 80, Height: 2}
	root.Append(first)
	root.Append(second)

	if got := root.HitTest(10, 1); got != first {
		t.Errorf("HitTest(10,1) = %v, want first block", got)
	}
	if got := root.HitTest(10, 3); got != second {
		t.Errorf("HitTest(10,3) = %v, want second block", got)
	}
	// Inside root but outside any block hits the root itself.
	if got := root.HitTest(10, 10); got != root {
		t.Errorf("HitTest(10,10) = %v, want root", got)
	}
	// Outside the root entirely.
	if got := root.HitTest(200, 1); got != nil {
		t.Errorf("HitTest(200,1) = %v, want nil", got)
	}
}
