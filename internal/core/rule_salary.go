package core

import (
	"context"
	"fmt"
)

// NewSalaryOrderRule returns the rule checking salaries: negatives are
// errors, a salary below the logical predecessor's is a warning only.
func NewSalaryOrderRule() Rule {
	return salaryOrderRule{}
}

type salaryOrderRule struct{}

func (salaryOrderRule) Name() string { return "rank_salary" }

func (salaryOrderRule) Evaluate(_ context.Context, view RuleView) (Result, error) {
	res := Result{}
	for _, node := range flattenNodes(view) {
		salary := node.rank.Salary
		if salary < 0 {
			res.Issues = append(res.Issues, Issue{
				Rule:     "rank_salary",
				Severity: SeverityError,
				Category: CategoryRank,
				RankID:   node.rank.ID,
				Message:  fmt.Sprintf("%s: salary must be ≥ 0", node.rank.Name),
			})
			continue
		}
		if node.prev != nil && salary < node.prev.rank.Salary {
			res.Issues = append(res.Issues, Issue{
				Rule:     "rank_salary",
				Severity: SeverityWarning,
				Category: CategoryRank,
				RankID:   node.rank.ID,
				Message:  fmt.Sprintf("%s: salary %d is below the preceding rank's %d", node.rank.Name, salary, node.prev.rank.Salary),
			})
		}
	}
	return res, nil
}
