// Package document owns the ordered block sequence of one document and
// the mapping between rendered nodes and block identities.
package document

import (
	"github.com/latticeapp/scribe/internal/dom"
)

// Container holds the live ordered block sequence.
// It is the single owner of block creation, ordering and removal;
// other components hold transient *Block references at most.
type Container struct {
	root    *dom.Node
	blocks  []*Block
	holders map[*dom.Node]*Block
	current int
}

// NewContainer creates an empty container rooted at the given node.
// A nil root gets a fresh "editor" node.
func NewContainer(root *dom.Node) *Container {
	if root == nil {
		root = dom.NewNode("editor")
	}
	return &Container{
		root:    root,
		holders: make(map[*dom.Node]*Block),
		current: -1,
	}
}

// Root returns the container's root node.
func (c *Container) Root() *dom.Node {
	return c.root
}

// Len returns the number of blocks.
func (c *Container) Len() int {
	return len(c.blocks)
}

// Blocks returns the live ordered block sequence.
// Callers must not reorder or mutate the slice.
func (c *Container) Blocks() []*Block {
	return c.blocks
}

// BlockAt returns the block at index i, or nil if i is out of bounds.
func (c *Container) BlockAt(i int) *Block {
	if i < 0 || i >= len(c.blocks) {
		return nil
	}
	return c.blocks[i]
}

// IndexOf returns the current position of the block by identity,
// or -1 if the block is nil or not in the sequence.
func (c *Container) IndexOf(b *Block) int {
	if b == nil {
		return -1
	}
	for i, cur := range c.blocks {
		if cur == b {
			return i
		}
	}
	return -1
}

// Append adds the block to the end of the sequence.
func (c *Container) Append(b *Block) {
	c.Insert(len(c.blocks), b)
}

// Insert places the block at index i, shifting later blocks down.
// Out-of-range indices clamp to the sequence bounds.
func (c *Container) Insert(i int, b *Block) {
	if b == nil {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(c.blocks) {
		i = len(c.blocks)
	}
	c.blocks = append(c.blocks, nil)
	copy(c.blocks[i+1:], c.blocks[i:])
	c.blocks[i] = b
	c.holders[b.Holder()] = b
	c.root.Append(b.Holder())
	if c.current < 0 {
		c.current = i
	} else if i <= c.current {
		c.current++
	}
}

// Remove deletes the block at index i and detaches its holder.
func (c *Container) Remove(i int) {
	b := c.BlockAt(i)
	if b == nil {
		return
	}
	delete(c.holders, b.Holder())
	b.Holder().Detach()
	c.blocks = append(c.blocks[:i], c.blocks[i+1:]...)
	switch {
	case len(c.blocks) == 0:
		c.current = -1
	case i < c.current:
		c.current--
	case c.current >= len(c.blocks):
		c.current = len(c.blocks) - 1
	}
}

// ResolveBlockFromNode maps a rendered node to the block whose holder
// contains it, walking up the node's ancestors. Returns nil when the
// node lies outside every block.
func (c *Container) ResolveBlockFromNode(n *dom.Node) *Block {
	if n == nil {
		return nil
	}
	holder := n.Closest(func(cur *dom.Node) bool {
		_, ok := c.holders[cur]
		return ok
	})
	if holder == nil {
		return nil
	}
	return c.holders[holder]
}

// CurrentBlock returns the block containing the caret, or nil for an
// empty document.
func (c *Container) CurrentBlock() *Block {
	return c.BlockAt(c.current)
}

// CurrentIndex returns the index of the current block, or -1.
func (c *Container) CurrentIndex() int {
	if c.current < 0 || c.current >= len(c.blocks) {
		return -1
	}
	return c.current
}

// SetCurrentIndex moves the caret-block pointer. Out-of-range indices
// are ignored.
func (c *Container) SetCurrentIndex(i int) {
	if i < 0 || i >= len(c.blocks) {
		return
	}
	c.current = i
}

// SetCurrentBlock moves the caret-block pointer to the given block.
// Blocks not in the sequence are ignored.
func (c *Container) SetCurrentBlock(b *Block) {
	if i := c.IndexOf(b); i >= 0 {
		c.current = i
	}
}
