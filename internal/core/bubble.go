package core

import "strings"

// BubbleSeverity aggregates a parent rank's presentation severity from a
// validation result. For an expanded node only the rank's own issues count;
// for a collapsed parent the worst severity among its pay bands bubbles up
// and the messages are concatenated. The aggregate is recomputed on every
// call and never stored on the node, so it cannot go stale against view
// state.
func BubbleSeverity(result Result, rank *Rank, expanded bool) (Severity, string) {
	issues := result.ForRank(rank.ID)
	if !expanded {
		for _, band := range rank.PayBands {
			issues = append(issues, result.ForRank(band.ID)...)
		}
	}
	if len(issues) == 0 {
		return "", ""
	}
	var worst Severity
	messages := make([]string, 0, len(issues))
	for _, issue := range issues {
		if issue.Severity.Worse(worst) {
			worst = issue.Severity
		}
		messages = append(messages, issue.Message)
	}
	return worst, strings.Join(messages, "; ")
}
