package domain

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Severity classifies validation issues.
type Severity string

// Issue severities, highest to lowest. Errors block file generation,
// warnings require operator confirmation, advisories are dismissible.
const (
	SeverityError    Severity = "error"
	SeverityWarning  Severity = "warning"
	SeverityAdvisory Severity = "advisory"
)

var severityWeight = map[Severity]int{
	SeverityError:    3,
	SeverityWarning:  2,
	SeverityAdvisory: 1,
}

// Worse reports whether s outranks other.
func (s Severity) Worse(other Severity) bool {
	return severityWeight[s] > severityWeight[other]
}

// Category groups issues by the collection they concern.
type Category string

// Issue categories.
const (
	CategoryRank    Category = "Rank"
	CategoryVehicle Category = "Vehicle"
	CategoryStation Category = "Station"
	CategoryOutfit  Category = "Outfit"
)

// Issue reports a single validation finding against a rank or pay band.
// ItemName is set when the finding concerns an individual collection entry
// so it can be dismissed or removed on its own.
type Issue struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Category Category `json:"category"`
	RankID   string   `json:"rank_id"`
	ItemName string   `json:"item_name,omitempty"`
	Message  string   `json:"message"`
}

// DismissKey identifies an advisory across validation passes so a dismissal
// survives re-evaluation. The message participates as a hash so edited
// findings resurface.
func (i Issue) DismissKey() string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.ToLower(i.Message)))
	return fmt.Sprintf("%s|%s|%s|%x", i.RankID, i.Category, strings.ToLower(i.ItemName), h.Sum64())
}

// Result aggregates issues from the rules engine.
type Result struct {
	Issues []Issue
}

// Merge appends issues from another result.
func (r *Result) Merge(other Result) {
	if len(other.Issues) == 0 {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}

// HasErrors returns true when the result contains error-severity issues.
func (r Result) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Worst returns the highest severity present, or the empty severity when the
// result is clean.
func (r Result) Worst() Severity {
	var worst Severity
	for _, issue := range r.Issues {
		if issue.Severity.Worse(worst) {
			worst = issue.Severity
		}
	}
	return worst
}

// ForRank returns the issues attributed to the given rank id.
func (r Result) ForRank(id string) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.RankID == id {
			out = append(out, issue)
		}
	}
	return out
}

// BlockedError is returned when error-severity issues prevent generating the
// output file.
type BlockedError struct {
	Result Result
}

func (e BlockedError) Error() string {
	return "generation blocked by validation errors"
}
