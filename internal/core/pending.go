package core

import "fmt"

// PendingEdit buffers field-level changes to one rank between focus events.
// Keystroke-level writes mutate the live rank directly; Commit compares the
// captured before-snapshot against the current values and turns the
// difference into a single undoable command, so undo reverses a whole edit
// rather than each keystroke.
type PendingEdit struct {
	rank   *Rank
	name   string
	points int
	salary int
}

// BeginEdit captures the pre-edit snapshot of the commit-worthy fields.
func BeginEdit(rank *Rank) *PendingEdit {
	return &PendingEdit{rank: rank, name: rank.Name, points: rank.RequiredPoints, salary: rank.Salary}
}

// Dirty reports whether any buffered field differs from the snapshot.
func (p *PendingEdit) Dirty() bool {
	return p.rank.Name != p.name || p.rank.RequiredPoints != p.points || p.rank.Salary != p.salary
}

// Commit flushes the buffered edit into the history. Multiple changed fields
// collapse into one composite stack entry; an unchanged buffer is a no-op
// and reports false. The live rank already carries the new values, so the
// commands re-apply them idempotently when executed.
func (p *PendingEdit) Commit(history *History) (bool, error) {
	var commands []Command
	if p.rank.Name != p.name {
		cmd := NewRenameRank(p.rank, p.rank.Name)
		cmd.old = p.name
		commands = append(commands, cmd)
	}
	if p.rank.RequiredPoints != p.points {
		cmd := NewSetPoints(p.rank, p.rank.RequiredPoints)
		cmd.old = p.points
		commands = append(commands, cmd)
	}
	if p.rank.Salary != p.salary {
		cmd := NewSetSalary(p.rank, p.rank.Salary)
		cmd.old = p.salary
		commands = append(commands, cmd)
	}

	switch len(commands) {
	case 0:
		return false, nil
	case 1:
		if err := history.Apply(commands[0]); err != nil {
			return false, err
		}
	default:
		if err := history.Apply(NewComposite(fmt.Sprintf("edit rank %q", p.rank.Name), commands...)); err != nil {
			return false, err
		}
	}

	// Reset the snapshot so the same buffer can keep collecting edits.
	p.name = p.rank.Name
	p.points = p.rank.RequiredPoints
	p.salary = p.rank.Salary
	return true, nil
}
