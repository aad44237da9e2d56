package domain

// StationEntry describes an external station catalog record. The editor only
// reads it for display and agency grouping; the catalog is never mutated.
type StationEntry struct {
	Name   string   `json:"name" yaml:"name"`
	Agency string   `json:"agency" yaml:"agency"`
	Zones  []string `json:"zones,omitempty" yaml:"zones,omitempty"`
}

// VehicleEntry describes an external vehicle catalog record keyed by model.
type VehicleEntry struct {
	Model       string   `json:"model" yaml:"model"`
	DisplayName string   `json:"display_name" yaml:"display_name"`
	Agencies    []string `json:"agencies,omitempty" yaml:"agencies,omitempty"`
}

// OutfitEntry describes an external outfit catalog record keyed by its
// combined identifier string.
type OutfitEntry struct {
	Name   string `json:"name" yaml:"name"`
	Agency string `json:"agency,omitempty" yaml:"agency,omitempty"`
}

// StationCatalog resolves station names against the external catalog.
type StationCatalog interface {
	HasStation(name string) bool
	Station(name string) (StationEntry, bool)
}

// VehicleCatalog resolves vehicle models against the external catalog.
type VehicleCatalog interface {
	HasVehicle(model string) bool
	Vehicle(model string) (VehicleEntry, bool)
}

// OutfitCatalog resolves combined outfit identifiers against the external
// catalog.
type OutfitCatalog interface {
	HasOutfit(name string) bool
	Outfit(name string) (OutfitEntry, bool)
}
