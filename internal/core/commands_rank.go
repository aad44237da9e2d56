package core

import (
	"fmt"

	"rankcore/pkg/domain"
)

// AddRankCommand inserts a rank at a fixed top-level position.
type AddRankCommand struct {
	h     *Hierarchy
	rank  *Rank
	index int
}

// NewAddRank builds the command; index is captured now, not re-derived.
func NewAddRank(h *Hierarchy, rank *Rank, index int) *AddRankCommand {
	return &AddRankCommand{h: h, rank: rank, index: index}
}

func (c *AddRankCommand) Description() string { return fmt.Sprintf("add rank %q", c.rank.Name) }

func (c *AddRankCommand) Execute() error {
	c.h.Insert(c.index, c.rank)
	return nil
}

func (c *AddRankCommand) Undo() error {
	c.h.Remove(c.index)
	return nil
}

// RemoveRankCommand detaches a top-level rank. The full object is retained
// so undo can re-insert it at its original position.
type RemoveRankCommand struct {
	h     *Hierarchy
	rank  *Rank
	index int
}

// NewRemoveRank captures the rank and its current position.
func NewRemoveRank(h *Hierarchy, id string) (*RemoveRankCommand, error) {
	index := h.IndexOf(id)
	if index < 0 {
		return nil, fmt.Errorf("rank %s not found at top level", id)
	}
	return &RemoveRankCommand{h: h, rank: h.Ranks()[index], index: index}, nil
}

func (c *RemoveRankCommand) Description() string { return fmt.Sprintf("remove rank %q", c.rank.Name) }

func (c *RemoveRankCommand) Execute() error {
	c.h.Remove(c.index)
	return nil
}

func (c *RemoveRankCommand) Undo() error {
	c.h.Insert(c.index, c.rank)
	return nil
}

// MoveRankCommand relocates a top-level rank between two fixed positions.
type MoveRankCommand struct {
	h        *Hierarchy
	name     string
	from, to int
}

// NewMoveRank builds the command from explicit positions.
func NewMoveRank(h *Hierarchy, from, to int) *MoveRankCommand {
	return &MoveRankCommand{h: h, name: h.Ranks()[from].Name, from: from, to: to}
}

func (c *MoveRankCommand) Description() string {
	return fmt.Sprintf("move rank %q to position %d", c.name, c.to+1)
}

func (c *MoveRankCommand) Execute() error {
	c.h.Move(c.from, c.to)
	return nil
}

func (c *MoveRankCommand) Undo() error {
	c.h.Move(c.to, c.from)
	return nil
}

// CloneRankCommand inserts a deep copy of a source rank, with fresh ids for
// the copy and any pay bands, directly after the source.
type CloneRankCommand struct {
	h     *Hierarchy
	clone *Rank
	index int
}

// NewCloneRank prepares the copy up front so execute/redo insert the same
// object with the same identifiers.
func NewCloneRank(h *Hierarchy, sourceID string) (*CloneRankCommand, error) {
	index := h.IndexOf(sourceID)
	if index < 0 {
		return nil, fmt.Errorf("rank %s not found at top level", sourceID)
	}
	clone := h.Ranks()[index].Clone()
	reassignIDs(clone)
	clone.Name = clone.Name + " Copy"
	domain.SyncPayBandNames(clone)
	return &CloneRankCommand{h: h, clone: clone, index: index + 1}, nil
}

func (c *CloneRankCommand) Description() string { return fmt.Sprintf("clone rank %q", c.clone.Name) }

func (c *CloneRankCommand) Execute() error {
	c.h.Insert(c.index, c.clone)
	return nil
}

func (c *CloneRankCommand) Undo() error {
	c.h.Remove(c.index)
	return nil
}

// RenameRankCommand sets a rank's name and keeps derived pay band names in
// sync in both directions.
type RenameRankCommand struct {
	rank     *Rank
	old, new string
}

// NewRenameRank captures the previous name for undo.
func NewRenameRank(rank *Rank, name string) *RenameRankCommand {
	return &RenameRankCommand{rank: rank, old: rank.Name, new: name}
}

func (c *RenameRankCommand) Description() string {
	return fmt.Sprintf("rename rank %q to %q", c.old, c.new)
}

func (c *RenameRankCommand) Execute() error {
	c.rank.Name = c.new
	domain.SyncPayBandNames(c.rank)
	return nil
}

func (c *RenameRankCommand) Undo() error {
	c.rank.Name = c.old
	domain.SyncPayBandNames(c.rank)
	return nil
}

// SetPointsCommand updates a rank's XP threshold.
type SetPointsCommand struct {
	rank     *Rank
	old, new int
}

// NewSetPoints captures the previous threshold for undo.
func NewSetPoints(rank *Rank, points int) *SetPointsCommand {
	return &SetPointsCommand{rank: rank, old: rank.RequiredPoints, new: points}
}

func (c *SetPointsCommand) Description() string {
	return fmt.Sprintf("set %q required points to %d", c.rank.Name, c.new)
}

func (c *SetPointsCommand) Execute() error {
	c.rank.RequiredPoints = c.new
	return nil
}

func (c *SetPointsCommand) Undo() error {
	c.rank.RequiredPoints = c.old
	return nil
}

// SetSalaryCommand updates a rank's salary.
type SetSalaryCommand struct {
	rank     *Rank
	old, new int
}

// NewSetSalary captures the previous salary for undo.
func NewSetSalary(rank *Rank, salary int) *SetSalaryCommand {
	return &SetSalaryCommand{rank: rank, old: rank.Salary, new: salary}
}

func (c *SetSalaryCommand) Description() string {
	return fmt.Sprintf("set %q salary to %d", c.rank.Name, c.new)
}

func (c *SetSalaryCommand) Execute() error {
	c.rank.Salary = c.new
	return nil
}

func (c *SetSalaryCommand) Undo() error {
	c.rank.Salary = c.old
	return nil
}

// PromoteRankCommand converts a leaf rank into a parent carrying the given
// pay bands. A single stack entry reverses the whole conversion.
type PromoteRankCommand struct {
	h     *Hierarchy
	rank  *Rank
	bands []*Rank
}

// NewPromoteRank prepares the promotion. When bands is empty a default pair
// is derived from the rank's own threshold and salary.
func NewPromoteRank(h *Hierarchy, rank *Rank, bands ...*Rank) *PromoteRankCommand {
	if len(bands) == 0 {
		first := domain.NewRank("", rank.RequiredPoints, rank.Salary)
		second := domain.NewRank("", rank.RequiredPoints+100, rank.Salary)
		bands = []*Rank{first, second}
	}
	return &PromoteRankCommand{h: h, rank: rank, bands: bands}
}

func (c *PromoteRankCommand) Description() string {
	return fmt.Sprintf("promote rank %q to %d pay bands", c.rank.Name, len(c.bands))
}

func (c *PromoteRankCommand) Execute() error {
	c.rank.IsParent = true
	for i, band := range c.bands {
		c.h.InsertPayBand(c.rank, i, band)
	}
	return nil
}

func (c *PromoteRankCommand) Undo() error {
	for i := len(c.bands) - 1; i >= 0; i-- {
		c.h.RemovePayBand(c.rank, i)
	}
	c.rank.IsParent = false
	return nil
}

// DemoteRankCommand collapses a parent back into a leaf, retaining the
// removed pay bands for undo.
type DemoteRankCommand struct {
	h     *Hierarchy
	rank  *Rank
	bands []*Rank
}

// NewDemoteRank snapshots the current pay bands.
func NewDemoteRank(h *Hierarchy, rank *Rank) *DemoteRankCommand {
	bands := make([]*Rank, len(rank.PayBands))
	copy(bands, rank.PayBands)
	return &DemoteRankCommand{h: h, rank: rank, bands: bands}
}

func (c *DemoteRankCommand) Description() string {
	return fmt.Sprintf("demote rank %q", c.rank.Name)
}

func (c *DemoteRankCommand) Execute() error {
	for i := len(c.rank.PayBands) - 1; i >= 0; i-- {
		c.h.RemovePayBand(c.rank, i)
	}
	c.rank.IsParent = false
	return nil
}

func (c *DemoteRankCommand) Undo() error {
	c.rank.IsParent = true
	for i, band := range c.bands {
		c.h.InsertPayBand(c.rank, i, band)
	}
	return nil
}

// AddPayBandCommand inserts a pay band at a fixed position within a parent.
type AddPayBandCommand struct {
	h      *Hierarchy
	parent *Rank
	band   *Rank
	index  int
}

// NewAddPayBand builds the command; derived names are refreshed on execute.
func NewAddPayBand(h *Hierarchy, parent *Rank, band *Rank, index int) *AddPayBandCommand {
	return &AddPayBandCommand{h: h, parent: parent, band: band, index: index}
}

func (c *AddPayBandCommand) Description() string {
	return fmt.Sprintf("add pay band to %q", c.parent.Name)
}

func (c *AddPayBandCommand) Execute() error {
	c.h.InsertPayBand(c.parent, c.index, c.band)
	return nil
}

func (c *AddPayBandCommand) Undo() error {
	c.h.RemovePayBand(c.parent, c.index)
	return nil
}

// RemovePayBandCommand detaches a pay band, retaining it for undo.
type RemovePayBandCommand struct {
	h      *Hierarchy
	parent *Rank
	band   *Rank
	index  int
}

// NewRemovePayBand captures the band and its position.
func NewRemovePayBand(h *Hierarchy, parent *Rank, index int) *RemovePayBandCommand {
	return &RemovePayBandCommand{h: h, parent: parent, band: parent.PayBands[index], index: index}
}

func (c *RemovePayBandCommand) Description() string {
	return fmt.Sprintf("remove pay band %q", c.band.Name)
}

func (c *RemovePayBandCommand) Execute() error {
	c.h.RemovePayBand(c.parent, c.index)
	return nil
}

func (c *RemovePayBandCommand) Undo() error {
	c.h.InsertPayBand(c.parent, c.index, c.band)
	return nil
}

// MovePayBandCommand relocates a pay band within its parent between two
// fixed positions. Derived band names re-sync on every move.
type MovePayBandCommand struct {
	h        *Hierarchy
	parent   *Rank
	from, to int
}

// NewMovePayBand builds the command from explicit positions.
func NewMovePayBand(h *Hierarchy, parent *Rank, from, to int) *MovePayBandCommand {
	return &MovePayBandCommand{h: h, parent: parent, from: from, to: to}
}

func (c *MovePayBandCommand) Description() string {
	return fmt.Sprintf("move pay band of %q to position %d", c.parent.Name, c.to+1)
}

func (c *MovePayBandCommand) Execute() error {
	band := c.h.RemovePayBand(c.parent, c.from)
	c.h.InsertPayBand(c.parent, c.to, band)
	return nil
}

func (c *MovePayBandCommand) Undo() error {
	band := c.h.RemovePayBand(c.parent, c.to)
	c.h.InsertPayBand(c.parent, c.from, band)
	return nil
}

func reassignIDs(rank *Rank) {
	rank.ID = domain.NewRankID()
	for _, band := range rank.PayBands {
		band.ID = domain.NewRankID()
		band.ParentID = rank.ID
	}
}
