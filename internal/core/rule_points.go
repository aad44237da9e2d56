package core

import (
	"context"
	"fmt"

	"rankcore/pkg/domain"
)

// NewPointsOrderRule returns the rule enforcing the monotonic XP ordering
// over the flattened hierarchy: thresholds never decrease, equality is only
// legal for the first pay band of a parent against its predecessor's
// maximum, and the very first node merely has to be non-negative.
func NewPointsOrderRule() Rule {
	return pointsOrderRule{}
}

type pointsOrderRule struct{}

func (pointsOrderRule) Name() string { return "rank_points" }

func (pointsOrderRule) Evaluate(_ context.Context, view RuleView) (Result, error) {
	res := Result{}
	for _, node := range flattenNodes(view) {
		points := node.rank.RequiredPoints
		if points < 0 {
			res.Issues = append(res.Issues, Issue{
				Rule:     "rank_points",
				Severity: SeverityError,
				Category: CategoryRank,
				RankID:   node.rank.ID,
				Message:  fmt.Sprintf("%s: required points must be ≥ 0", node.rank.Name),
			})
			continue
		}
		if node.prev == nil {
			continue
		}
		minimum := minimumPoints(node)
		switch {
		case node.firstOfParent && points < minimum:
			res.Issues = append(res.Issues, Issue{
				Rule:     "rank_points",
				Severity: SeverityError,
				Category: CategoryRank,
				RankID:   node.rank.ID,
				Message:  fmt.Sprintf("%s: required points %d below the preceding threshold %d", node.rank.Name, points, minimum),
			})
		case !node.firstOfParent && points <= minimum:
			res.Issues = append(res.Issues, Issue{
				Rule:     "rank_points",
				Severity: SeverityError,
				Category: CategoryRank,
				RankID:   node.rank.ID,
				Message:  fmt.Sprintf("%s: required points %d must exceed the preceding threshold %d", node.rank.Name, points, minimum),
			})
		}
	}
	return res, nil
}

var _ domain.Rule = pointsOrderRule{}
