package domain

import "context"

// RuleView provides read-only access to the hierarchy and the injected
// catalogs for rule evaluation. Rules never mutate through it.
type RuleView interface {
	Ranks() []*Rank
	Flatten() []*Rank
	Find(id string) (*Rank, bool)
	StationCatalog() StationCatalog
	VehicleCatalog() VehicleCatalog
	OutfitCatalog() OutfitCatalog
}

// Rule defines one validation concern evaluated over a hierarchy snapshot.
// Evaluation must be deterministic and side-effect free; malformed data
// (negative numbers, empty names) yields issues, never an error.
type Rule interface {
	Name() string
	Evaluate(ctx context.Context, view RuleView) (Result, error)
}

// RulesEngine orchestrates rule evaluation.
type RulesEngine struct {
	rules []Rule
}

// NewRulesEngine constructs an empty engine instance.
func NewRulesEngine() *RulesEngine {
	return &RulesEngine{}
}

// Register appends a rule to the engine.
func (e *RulesEngine) Register(rule Rule) {
	e.rules = append(e.rules, rule)
}

// Rules returns the registered rules in registration order.
func (e *RulesEngine) Rules() []Rule { return e.rules }

// Evaluate executes all registered rules and aggregates their results.
func (e *RulesEngine) Evaluate(ctx context.Context, view RuleView) (Result, error) {
	var combined Result
	for _, rule := range e.rules {
		res, err := rule.Evaluate(ctx, view)
		if err != nil {
			return Result{}, err
		}
		combined.Merge(res)
	}
	return combined, nil
}
