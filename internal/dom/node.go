// Package dom provides a minimal rendered-node tree for the editor.
// Nodes stand in for the host UI's render boxes: each node knows its
// parent, its children and the screen rectangle it occupies, which is
// enough for ancestor walks (block resolution) and hit testing
// (pointer translation).
package dom

// Rect is a screen-space rectangle in cell coordinates.
// Width and Height of zero mean the node occupies no space.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains returns true if the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// IsEmpty returns true if the rectangle occupies no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Node is one box in the render tree.
type Node struct {
	parent   *Node
	children []*Node

	// Name identifies the node's role (e.g. "editor", "block", "text").
	Name string

	// Rect is the node's current screen rectangle. Layout code owns it.
	Rect Rect
}

// NewNode creates a detached node with the given role name.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Parent returns the node's parent, or nil for a root node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Append adds child as the last child of n.
// A child already attached elsewhere is detached first.
func (n *Node) Append(child *Node) {
	if child == nil || child == n {
		return
	}
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
}

// Detach removes the node from its parent, if any.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Closest walks from the node up through its ancestors and returns the
// first node for which match returns true, or nil if none matches.
func (n *Node) Closest(match func(*Node) bool) *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if match(cur) {
			return cur
		}
	}
	return nil
}

// Contains returns true if other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// HitTest returns the deepest descendant of n (including n itself) whose
// rectangle contains the point (x, y). Children are tested in reverse
// order so later siblings, drawn on top, win. Returns nil on a miss.
func (n *Node) HitTest(x, y int) *Node {
	if !n.Rect.Contains(x, y) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].HitTest(x, y); hit != nil {
			return hit
		}
	}
	return n
}
