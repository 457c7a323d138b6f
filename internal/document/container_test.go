package document

import (
	"testing"

	"github.com/latticeapp/scribe/internal/dom"
)

func newTestContainer(texts ...string) *Container {
	c := NewContainer(nil)
	for _, text := range texts {
		c.Append(NewBlock("paragraph", text, nil))
	}
	return c
}

func TestAppendAndIndexOf(t *testing.T) {
	c := newTestContainer("a", "b", "c")

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	for i := 0; i < c.Len(); i++ {
		b := c.BlockAt(i)
		if b == nil {
			t.Fatalf("BlockAt(%d) = nil", i)
		}
		if got := c.IndexOf(b); got != i {
			t.Errorf("IndexOf(blocks[%d]) = %d", i, got)
		}
	}

	if got := c.IndexOf(nil); got != -1 {
		t.Errorf("IndexOf(nil) = %d, want -1", got)
	}
	if got := c.IndexOf(NewBlock("paragraph", "foreign", nil)); got != -1 {
		t.Errorf("IndexOf(foreign block) = %d, want -1", got)
	}
}

func TestBlockAtOutOfBounds(t *testing.T) {
	c := newTestContainer("a")

	if c.BlockAt(-1) != nil {
		t.Error("BlockAt(-1) should be nil")
	}
	if c.BlockAt(1) != nil {
		t.Error("BlockAt(1) should be nil")
	}
}

func TestInsertShiftsCurrent(t *testing.T) {
	c := newTestContainer("a", "b")
	c.SetCurrentIndex(1)

	cur := c.CurrentBlock()
	c.Insert(0, NewBlock("paragraph", "front", nil))

	if c.CurrentBlock() != cur {
		t.Error("current block identity changed after Insert before it")
	}
	if got := c.CurrentIndex(); got != 2 {
		t.Errorf("CurrentIndex() = %d, want 2", got)
	}
}

func TestRemove(t *testing.T) {
	c := newTestContainer("a", "b", "c")
	c.SetCurrentIndex(2)

	holder := c.BlockAt(0).Holder()
	c.Remove(0)

	if c.Len() != 2 {
		t.Fatalf("Len() = %d after Remove, want 2", c.Len())
	}
	if got := c.CurrentIndex(); got != 1 {
		t.Errorf("CurrentIndex() = %d after Remove, want 1", got)
	}
	if c.ResolveBlockFromNode(holder) != nil {
		t.Error("removed block's holder should no longer resolve")
	}
}

func TestResolveBlockFromNode(t *testing.T) {
	c := newTestContainer("a", "b")

	b := c.BlockAt(1)
	inner := dom.NewNode("text")
	b.Holder().Append(inner)

	if got := c.ResolveBlockFromNode(inner); got != b {
		t.Errorf("ResolveBlockFromNode(inner) = %v, want block b", got)
	}
	if got := c.ResolveBlockFromNode(b.Holder()); got != b {
		t.Errorf("ResolveBlockFromNode(holder) = %v, want block b", got)
	}

	outside := dom.NewNode("toolbar")
	if got := c.ResolveBlockFromNode(outside); got != nil {
		t.Errorf("ResolveBlockFromNode(outside) = %v, want nil", got)
	}
	if got := c.ResolveBlockFromNode(nil); got != nil {
		t.Errorf("ResolveBlockFromNode(nil) = %v, want nil", got)
	}
}

func TestBlockData(t *testing.T) {
	b := NewBlock("header", "Title", []byte(`{"level":2,"text":"Title"}`))

	if got := b.Data("level").Int(); got != 2 {
		t.Errorf("Data(level) = %d, want 2", got)
	}
	if got := b.Data("text").String(); got != "Title" {
		t.Errorf("Data(text) = %q, want %q", got, "Title")
	}

	empty := NewBlock("paragraph", "p", nil)
	if empty.Data("level").Exists() {
		t.Error("Data on empty payload should not exist")
	}
}

func TestBlockIdentity(t *testing.T) {
	a := NewBlock("paragraph", "same", nil)
	b := NewBlock("paragraph", "same", nil)

	if a.ID == b.ID {
		t.Error("two blocks should never share an ID")
	}
	if a.ID == "" {
		t.Error("block ID should not be empty")
	}
}
