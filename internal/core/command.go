package core

import "fmt"

// Command is a reversible unit of mutation. Execute and Undo must succeed
// for a correctly constructed command; an error from either is a contract
// violation by the caller, not a recoverable condition. Commands capture the
// concrete objects and indices they operate on at construction and never
// re-derive them, so they are valid only in strict stack (LIFO) order.
type Command interface {
	Description() string
	Execute() error
	Undo() error
}

// DefaultHistoryCapacity bounds the undo and redo stacks unless overridden.
const DefaultHistoryCapacity = 50

// History holds the bounded undo and redo stacks. Applying a command runs
// it, pushes it onto the undo stack (evicting the oldest entry past
// capacity), and clears the redo stack.
type History struct {
	capacity int
	undo     []Command
	redo     []Command
	onChange func()
}

// NewHistory constructs a history with the given stack capacity; values
// below one fall back to DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity}
}

// SetOnChange registers a callback invoked after every stack mutation.
func (h *History) SetOnChange(fn func()) { h.onChange = fn }

// Apply executes the command and records it for undo.
func (h *History) Apply(cmd Command) error {
	if err := cmd.Execute(); err != nil {
		return fmt.Errorf("execute %s: %w", cmd.Description(), err)
	}
	h.undo = append(h.undo, cmd)
	if len(h.undo) > h.capacity {
		copy(h.undo, h.undo[1:])
		h.undo = h.undo[:h.capacity]
	}
	h.redo = h.redo[:0]
	h.notify()
	return nil
}

// Undo reverses the most recent command. It reports false without touching
// anything when the undo stack is empty.
func (h *History) Undo() (bool, error) {
	if len(h.undo) == 0 {
		return false, nil
	}
	cmd := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	if err := cmd.Undo(); err != nil {
		return false, fmt.Errorf("undo %s: %w", cmd.Description(), err)
	}
	h.redo = append(h.redo, cmd)
	h.notify()
	return true, nil
}

// Redo re-executes the most recently undone command.
func (h *History) Redo() (bool, error) {
	if len(h.redo) == 0 {
		return false, nil
	}
	cmd := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	if err := cmd.Execute(); err != nil {
		return false, fmt.Errorf("redo %s: %w", cmd.Description(), err)
	}
	h.undo = append(h.undo, cmd)
	h.notify()
	return true, nil
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoDepth returns the number of commands available to undo.
func (h *History) UndoDepth() int { return len(h.undo) }

// RedoDepth returns the number of commands available to redo.
func (h *History) RedoDepth() int { return len(h.redo) }

// UndoDescription names the command Undo would reverse, or "".
func (h *History) UndoDescription() string {
	if len(h.undo) == 0 {
		return ""
	}
	return h.undo[len(h.undo)-1].Description()
}

// RedoDescription names the command Redo would re-apply, or "".
func (h *History) RedoDescription() string {
	if len(h.redo) == 0 {
		return ""
	}
	return h.redo[len(h.redo)-1].Description()
}

func (h *History) notify() {
	if h.onChange != nil {
		h.onChange()
	}
}

// Composite wraps an ordered list of sub-commands into one atomic stack
// entry: execute runs them in order, undo reverses them back to front. Used
// for committing batched field edits in one step.
type Composite struct {
	description string
	commands    []Command
}

// NewComposite builds a composite command with a human-readable description.
func NewComposite(description string, commands ...Command) *Composite {
	return &Composite{description: description, commands: commands}
}

// Description returns the composite's stack label.
func (c *Composite) Description() string { return c.description }

// Len returns the number of wrapped sub-commands.
func (c *Composite) Len() int { return len(c.commands) }

// Execute runs the sub-commands in order.
func (c *Composite) Execute() error {
	for _, cmd := range c.commands {
		if err := cmd.Execute(); err != nil {
			return err
		}
	}
	return nil
}

// Undo reverses the sub-commands back to front.
func (c *Composite) Undo() error {
	for i := len(c.commands) - 1; i >= 0; i-- {
		if err := c.commands[i].Undo(); err != nil {
			return err
		}
	}
	return nil
}
