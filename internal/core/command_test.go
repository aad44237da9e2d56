package core

import (
	"errors"
	"fmt"
	"testing"
)

// counterCommand mutates a shared integer so stack ordering is observable.
type counterCommand struct {
	target *int
	delta  int
	fail   error
}

func (c *counterCommand) Description() string { return fmt.Sprintf("add %d", c.delta) }

func (c *counterCommand) Execute() error {
	if c.fail != nil {
		return c.fail
	}
	*c.target += c.delta
	return nil
}

func (c *counterCommand) Undo() error {
	*c.target -= c.delta
	return nil
}

func TestHistoryApplyUndoRedo(t *testing.T) {
	h := NewHistory(10)
	var value int
	for i := 1; i <= 3; i++ {
		if err := h.Apply(&counterCommand{target: &value, delta: i}); err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}
	if value != 6 {
		t.Fatalf("value = %d, want 6", value)
	}
	if got := h.UndoDescription(); got != "add 3" {
		t.Fatalf("undo description = %q", got)
	}

	for want := 3; want >= 1; want-- {
		ok, err := h.Undo()
		if err != nil || !ok {
			t.Fatalf("undo: ok=%v err=%v", ok, err)
		}
	}
	if value != 0 {
		t.Fatalf("value after full undo = %d, want 0", value)
	}
	if ok, _ := h.Undo(); ok {
		t.Fatalf("undo on empty stack reported work")
	}

	for range 3 {
		ok, err := h.Redo()
		if err != nil || !ok {
			t.Fatalf("redo: ok=%v err=%v", ok, err)
		}
	}
	if value != 6 {
		t.Fatalf("value after full redo = %d, want 6", value)
	}
	if ok, _ := h.Redo(); ok {
		t.Fatalf("redo on empty stack reported work")
	}
}

func TestHistoryCapacityEvictsOldest(t *testing.T) {
	h := NewHistory(50)
	var value int
	for i := 0; i < 51; i++ {
		if err := h.Apply(&counterCommand{target: &value, delta: 1}); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}
	if h.UndoDepth() != 50 {
		t.Fatalf("undo depth = %d, want 50", h.UndoDepth())
	}
	undone := 0
	for {
		ok, err := h.Undo()
		if err != nil {
			t.Fatalf("undo: %v", err)
		}
		if !ok {
			break
		}
		undone++
	}
	if undone != 50 {
		t.Fatalf("undid %d commands, want 50", undone)
	}
	// The evicted first command can no longer be reversed.
	if value != 1 {
		t.Fatalf("value = %d, want the evicted command's effect to remain", value)
	}
}

func TestHistoryApplyClearsRedo(t *testing.T) {
	h := NewHistory(10)
	var value int
	_ = h.Apply(&counterCommand{target: &value, delta: 1})
	_ = h.Apply(&counterCommand{target: &value, delta: 2})
	if ok, _ := h.Undo(); !ok {
		t.Fatalf("undo failed")
	}
	if !h.CanRedo() {
		t.Fatalf("redo should be available after undo")
	}
	_ = h.Apply(&counterCommand{target: &value, delta: 5})
	if h.CanRedo() {
		t.Fatalf("new apply must clear the redo stack")
	}
}

func TestHistoryApplyFailureLeavesStacksUntouched(t *testing.T) {
	h := NewHistory(10)
	var value int
	boom := errors.New("boom")
	if err := h.Apply(&counterCommand{target: &value, delta: 1, fail: boom}); !errors.Is(err, boom) {
		t.Fatalf("apply error = %v, want wrapped boom", err)
	}
	if h.CanUndo() {
		t.Fatalf("failed command must not be recorded")
	}
}

func TestHistoryNotifiesOnChange(t *testing.T) {
	h := NewHistory(10)
	var value, calls int
	h.SetOnChange(func() { calls++ })
	_ = h.Apply(&counterCommand{target: &value, delta: 1})
	_, _ = h.Undo()
	_, _ = h.Redo()
	if calls != 3 {
		t.Fatalf("onChange calls = %d, want 3", calls)
	}
}

func TestCompositeExecutesInOrderAndUndoesInReverse(t *testing.T) {
	var order []string
	record := func(name string) *funcCommand {
		return &funcCommand{
			desc: name,
			exec: func() error { order = append(order, "exec "+name); return nil },
			undo: func() error { order = append(order, "undo "+name); return nil },
		}
	}
	c := NewComposite("batch", record("a"), record("b"))
	if c.Len() != 2 {
		t.Fatalf("len = %d", c.Len())
	}
	if err := c.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if err := c.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	want := []string{"exec a", "exec b", "undo b", "undo a"}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

type funcCommand struct {
	desc string
	exec func() error
	undo func() error
}

func (c *funcCommand) Description() string { return c.desc }
func (c *funcCommand) Execute() error      { return c.exec() }
func (c *funcCommand) Undo() error         { return c.undo() }
