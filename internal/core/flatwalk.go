package core

import "fmt"

// flatNode positions a leaf within the flattened hierarchy: pay bands carry
// their parent and band index, plain ranks stand alone. prev is the logical
// predecessor in serialization order; the ordering rules compare against it.
type flatNode struct {
	rank          *Rank
	parent        *Rank
	bandIndex     int
	firstOfParent bool
	prev          *flatNode
}

// flattenNodes walks the hierarchy in serialization order and annotates each
// leaf with its predecessor context. A pay band whose parent is missing from
// the arena is a programming-contract violation, not a validation issue.
func flattenNodes(view RuleView) []*flatNode {
	var nodes []*flatNode
	var prev *flatNode
	for _, rank := range view.Ranks() {
		if rank.IsParent && len(rank.PayBands) > 0 {
			for i, band := range rank.PayBands {
				if band.ParentID != rank.ID {
					panic(fmt.Sprintf("core: pay band %q has dangling parent reference %q", band.Name, band.ParentID))
				}
				node := &flatNode{rank: band, parent: rank, bandIndex: i, firstOfParent: i == 0, prev: prev}
				nodes = append(nodes, node)
				prev = node
			}
			continue
		}
		node := &flatNode{rank: rank, prev: prev}
		nodes = append(nodes, node)
		prev = node
	}
	return nodes
}

// minimumPoints returns the XP floor the node's logical predecessor imposes:
// the previous leaf's threshold, or zero for the very first node. Crossing
// out of a parent, the floor is the maximum threshold among that parent's
// bands, not whichever band happens to be flattened last.
func minimumPoints(node *flatNode) int {
	if node.prev == nil {
		return 0
	}
	if node.prev.parent != nil && node.prev.parent != node.parent {
		return node.prev.parent.MaxPoints()
	}
	return node.prev.rank.RequiredPoints
}
