package core

import (
	"context"
	"fmt"
	"strings"
)

// NewInheritanceRule returns the advisory rule comparing each leaf node in
// flattened order against its logical predecessor: stations, vehicles, and
// outfits the previous rank or pay band assigned but this one lacks are
// surfaced so the operator can decide whether the drop is intentional.
// Display lists truncate to three entries plus a remainder count.
func NewInheritanceRule() Rule {
	return inheritanceRule{}
}

type inheritanceRule struct{}

func (inheritanceRule) Name() string { return "rank_inheritance" }

func (inheritanceRule) Evaluate(_ context.Context, view RuleView) (Result, error) {
	res := Result{}
	for _, node := range flattenNodes(view) {
		if node.prev == nil {
			continue
		}
		prev, cur := node.prev.rank, node.rank

		var stations []string
		for _, s := range prev.Stations {
			if !cur.HasStation(s.StationName) {
				stations = append(stations, s.StationName)
			}
		}
		if len(stations) > 0 {
			res.Issues = append(res.Issues, inheritanceIssue(cur, CategoryStation,
				fmt.Sprintf("%s: stations assigned to %s are missing: %s", cur.Name, prev.Name, truncateList(stations, 3))))
		}

		var vehicles []string
		for _, v := range prev.Vehicles {
			if !cur.HasVehicle(v.Model) {
				vehicles = append(vehicles, v.Model)
			}
		}
		if len(vehicles) > 0 {
			res.Issues = append(res.Issues, inheritanceIssue(cur, CategoryVehicle,
				fmt.Sprintf("%s: vehicles assigned to %s are missing: %s", cur.Name, prev.Name, truncateList(vehicles, 3))))
		}

		var outfits []string
		for _, o := range prev.Outfits {
			if !cur.HasOutfit(o) {
				outfits = append(outfits, o)
			}
		}
		if len(outfits) > 0 {
			res.Issues = append(res.Issues, inheritanceIssue(cur, CategoryOutfit,
				fmt.Sprintf("%s: outfits assigned to %s are missing: %s", cur.Name, prev.Name, truncateList(outfits, 3))))
		}
	}
	return res, nil
}

func inheritanceIssue(rank *Rank, category Category, message string) Issue {
	return Issue{
		Rule:     "rank_inheritance",
		Severity: SeverityAdvisory,
		Category: category,
		RankID:   rank.ID,
		Message:  message,
	}
}

// truncateList joins up to max items and summarizes the rest as "N more".
func truncateList(items []string, max int) string {
	if len(items) <= max {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(items[:max], ", "), len(items)-max)
}
