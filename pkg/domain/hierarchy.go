package domain

import "fmt"

// Hierarchy owns the ordered top-level rank list and an arena index keyed by
// rank id. Parent/child relations are id references rather than cyclic
// pointers; RebuildLinks restores them after bulk loads. Exactly one
// hierarchy is edited at a time and all access is single-threaded.
type Hierarchy struct {
	ranks []*Rank
	index map[string]*Rank
}

// NewHierarchy builds a hierarchy from the given top-level ranks and indexes
// every node, restoring pay-band parent references.
func NewHierarchy(ranks ...*Rank) *Hierarchy {
	h := &Hierarchy{ranks: ranks}
	h.RebuildLinks()
	return h
}

// Ranks returns the ordered top-level rank slice. Callers must not reorder
// it directly; mutations go through Insert/Remove/Move.
func (h *Hierarchy) Ranks() []*Rank { return h.ranks }

// Len returns the number of top-level ranks.
func (h *Hierarchy) Len() int { return len(h.ranks) }

// Find resolves a rank or pay band by id.
func (h *Hierarchy) Find(id string) (*Rank, bool) {
	r, ok := h.index[id]
	return r, ok
}

// IndexOf returns the top-level position of the rank with the given id, or -1
// when the id is absent or names a pay band.
func (h *Hierarchy) IndexOf(id string) int {
	for i, r := range h.ranks {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Insert places the rank at the given top-level position and indexes it.
func (h *Hierarchy) Insert(index int, rank *Rank) {
	if index < 0 || index > len(h.ranks) {
		panic(fmt.Sprintf("hierarchy: insert index %d out of range [0,%d]", index, len(h.ranks)))
	}
	h.ranks = append(h.ranks, nil)
	copy(h.ranks[index+1:], h.ranks[index:])
	h.ranks[index] = rank
	h.indexRank(rank)
}

// Remove detaches the top-level rank at the given position and returns it.
func (h *Hierarchy) Remove(index int) *Rank {
	if index < 0 || index >= len(h.ranks) {
		panic(fmt.Sprintf("hierarchy: remove index %d out of range [0,%d)", index, len(h.ranks)))
	}
	rank := h.ranks[index]
	h.ranks = append(h.ranks[:index], h.ranks[index+1:]...)
	h.unindexRank(rank)
	return rank
}

// Move shifts a top-level rank from one position to another.
func (h *Hierarchy) Move(from, to int) {
	rank := h.Remove(from)
	h.Insert(to, rank)
}

// InsertPayBand places a pay band inside the parent at the given position and
// refreshes derived band names.
func (h *Hierarchy) InsertPayBand(parent *Rank, index int, band *Rank) {
	if index < 0 || index > len(parent.PayBands) {
		panic(fmt.Sprintf("hierarchy: pay band index %d out of range [0,%d]", index, len(parent.PayBands)))
	}
	band.ParentID = parent.ID
	parent.PayBands = append(parent.PayBands, nil)
	copy(parent.PayBands[index+1:], parent.PayBands[index:])
	parent.PayBands[index] = band
	h.indexRank(band)
	SyncPayBandNames(parent)
}

// RemovePayBand detaches the pay band at the given position and refreshes
// derived band names on the remaining siblings.
func (h *Hierarchy) RemovePayBand(parent *Rank, index int) *Rank {
	if index < 0 || index >= len(parent.PayBands) {
		panic(fmt.Sprintf("hierarchy: pay band index %d out of range [0,%d)", index, len(parent.PayBands)))
	}
	band := parent.PayBands[index]
	parent.PayBands = append(parent.PayBands[:index], parent.PayBands[index+1:]...)
	band.ParentID = ""
	h.unindexRank(band)
	SyncPayBandNames(parent)
	return band
}

// Flatten returns the leaf nodes in serialization order: a parent with pay
// bands contributes its bands in order instead of itself. This is the order
// the wire format and the monotonic-XP checks operate on.
func (h *Hierarchy) Flatten() []*Rank {
	var flat []*Rank
	for _, rank := range h.ranks {
		if rank.IsParent && len(rank.PayBands) > 0 {
			flat = append(flat, rank.PayBands...)
			continue
		}
		flat = append(flat, rank)
	}
	return flat
}

// RebuildLinks reindexes the arena and restores pay-band ParentID references.
// Must be called after any bulk load that bypassed Insert (deserialization,
// session restore).
func (h *Hierarchy) RebuildLinks() {
	h.index = make(map[string]*Rank, len(h.ranks)*2)
	for _, rank := range h.ranks {
		rank.ParentID = ""
		h.indexRank(rank)
	}
}

// Clone returns a structurally independent deep copy of the hierarchy.
func (h *Hierarchy) Clone() *Hierarchy {
	ranks := make([]*Rank, len(h.ranks))
	for i, r := range h.ranks {
		ranks[i] = r.Clone()
	}
	return NewHierarchy(ranks...)
}

func (h *Hierarchy) indexRank(rank *Rank) {
	if h.index == nil {
		h.index = make(map[string]*Rank)
	}
	h.index[rank.ID] = rank
	for _, band := range rank.PayBands {
		band.ParentID = rank.ID
		h.index[band.ID] = band
	}
}

func (h *Hierarchy) unindexRank(rank *Rank) {
	delete(h.index, rank.ID)
	for _, band := range rank.PayBands {
		delete(h.index, band.ID)
	}
}
