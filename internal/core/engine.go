// Package core implements the editing engine behind the rank hierarchy
// editor: the validation rules, the command-based undo/redo history, and the
// orchestration service that ties them to the codec and the injected
// collaborators.
package core

import "rankcore/pkg/domain"

type (
	Rank              = domain.Rank
	StationAssignment = domain.StationAssignment
	Vehicle           = domain.Vehicle
	Hierarchy         = domain.Hierarchy
	Severity          = domain.Severity
	Category          = domain.Category
	Issue             = domain.Issue
	Result            = domain.Result
	Rule              = domain.Rule
	RulesEngine       = domain.RulesEngine
	RuleView          = domain.RuleView
	StationCatalog    = domain.StationCatalog
	VehicleCatalog    = domain.VehicleCatalog
	OutfitCatalog     = domain.OutfitCatalog
)

const (
	SeverityError    = domain.SeverityError
	SeverityWarning  = domain.SeverityWarning
	SeverityAdvisory = domain.SeverityAdvisory
)

const (
	CategoryRank    = domain.CategoryRank
	CategoryVehicle = domain.CategoryVehicle
	CategoryStation = domain.CategoryStation
	CategoryOutfit  = domain.CategoryOutfit
)

// NewRulesEngine constructs an empty engine instance.
func NewRulesEngine() *RulesEngine {
	return domain.NewRulesEngine()
}

// NewDefaultRulesEngine builds a rules engine with the built-in policy set.
func NewDefaultRulesEngine() *RulesEngine {
	engine := NewRulesEngine()
	engine.Register(NewPointsOrderRule())
	engine.Register(NewSalaryOrderRule())
	engine.Register(NewPayBandStructureRule())
	engine.Register(NewDuplicateNameRule())
	engine.Register(NewCatalogReferenceRule())
	engine.Register(NewInheritanceRule())
	return engine
}

// hierarchyView adapts a hierarchy plus the injected catalogs to the
// read-only RuleView contract.
type hierarchyView struct {
	h        *Hierarchy
	stations StationCatalog
	vehicles VehicleCatalog
	outfits  OutfitCatalog
}

var _ domain.RuleView = hierarchyView{}

func (v hierarchyView) Ranks() []*Rank                 { return v.h.Ranks() }
func (v hierarchyView) Flatten() []*Rank               { return v.h.Flatten() }
func (v hierarchyView) Find(id string) (*Rank, bool)   { return v.h.Find(id) }
func (v hierarchyView) StationCatalog() StationCatalog { return v.stations }
func (v hierarchyView) VehicleCatalog() VehicleCatalog { return v.vehicles }
func (v hierarchyView) OutfitCatalog() OutfitCatalog   { return v.outfits }
