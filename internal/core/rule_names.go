package core

import (
	"context"
	"fmt"
	"strings"
)

// NewDuplicateNameRule returns the advisory rule flagging rank or pay band
// names reused anywhere in the hierarchy, compared case-insensitively.
func NewDuplicateNameRule() Rule {
	return duplicateNameRule{}
}

type duplicateNameRule struct{}

func (duplicateNameRule) Name() string { return "rank_names" }

func (duplicateNameRule) Evaluate(_ context.Context, view RuleView) (Result, error) {
	counts := make(map[string]int)
	var walk []*Rank
	for _, rank := range view.Ranks() {
		walk = append(walk, rank)
		walk = append(walk, rank.PayBands...)
	}
	for _, rank := range walk {
		counts[strings.ToLower(rank.Name)]++
	}

	res := Result{}
	for _, rank := range walk {
		if counts[strings.ToLower(rank.Name)] > 1 {
			res.Issues = append(res.Issues, Issue{
				Rule:     "rank_names",
				Severity: SeverityAdvisory,
				Category: CategoryRank,
				RankID:   rank.ID,
				Message:  fmt.Sprintf("%s: name is used by another rank", rank.Name),
			})
		}
	}
	return res, nil
}
