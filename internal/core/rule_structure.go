package core

import (
	"context"
	"fmt"
)

// NewPayBandStructureRule returns the rule flagging parents with exactly one
// pay band. Zero bands means the promotion has not happened yet and two or
// more is the working shape; one is a tolerated transient the operator must
// resolve before generation.
func NewPayBandStructureRule() Rule {
	return payBandStructureRule{}
}

type payBandStructureRule struct{}

func (payBandStructureRule) Name() string { return "rank_structure" }

func (payBandStructureRule) Evaluate(_ context.Context, view RuleView) (Result, error) {
	res := Result{}
	for _, rank := range view.Ranks() {
		if rank.IsParent && len(rank.PayBands) == 1 {
			res.Issues = append(res.Issues, Issue{
				Rule:     "rank_structure",
				Severity: SeverityError,
				Category: CategoryRank,
				RankID:   rank.ID,
				Message:  fmt.Sprintf("%s: must have more than one pay band", rank.Name),
			})
		}
	}
	return res, nil
}
