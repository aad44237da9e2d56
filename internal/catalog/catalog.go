// Package catalog provides read-only reference catalogs the validation rules
// resolve station, vehicle, and outfit references against. Lookups are
// case-insensitive; catalogs are immutable after construction.
package catalog

import (
	"strings"

	"rankcore/pkg/domain"
)

// Compile-time contract assertions.
var (
	_ domain.StationCatalog = (*Stations)(nil)
	_ domain.VehicleCatalog = (*Vehicles)(nil)
	_ domain.OutfitCatalog  = (*Outfits)(nil)
)

// Stations is an in-memory station catalog.
type Stations struct {
	byName map[string]domain.StationEntry
}

// NewStations indexes the given entries by lowercased name.
func NewStations(entries ...domain.StationEntry) *Stations {
	c := &Stations{byName: make(map[string]domain.StationEntry, len(entries))}
	for _, e := range entries {
		c.byName[strings.ToLower(e.Name)] = e
	}
	return c
}

func (c *Stations) HasStation(name string) bool {
	_, ok := c.byName[strings.ToLower(name)]
	return ok
}

func (c *Stations) Station(name string) (domain.StationEntry, bool) {
	e, ok := c.byName[strings.ToLower(name)]
	return e, ok
}

// Len reports the number of catalog entries.
func (c *Stations) Len() int { return len(c.byName) }

// Vehicles is an in-memory vehicle catalog keyed by model.
type Vehicles struct {
	byModel map[string]domain.VehicleEntry
}

// NewVehicles indexes the given entries by lowercased model.
func NewVehicles(entries ...domain.VehicleEntry) *Vehicles {
	c := &Vehicles{byModel: make(map[string]domain.VehicleEntry, len(entries))}
	for _, e := range entries {
		c.byModel[strings.ToLower(e.Model)] = e
	}
	return c
}

func (c *Vehicles) HasVehicle(model string) bool {
	_, ok := c.byModel[strings.ToLower(model)]
	return ok
}

func (c *Vehicles) Vehicle(model string) (domain.VehicleEntry, bool) {
	e, ok := c.byModel[strings.ToLower(model)]
	return e, ok
}

// Len reports the number of catalog entries.
func (c *Vehicles) Len() int { return len(c.byModel) }

// Outfits is an in-memory outfit catalog keyed by the combined identifier.
type Outfits struct {
	byName map[string]domain.OutfitEntry
}

// NewOutfits indexes the given entries by lowercased identifier.
func NewOutfits(entries ...domain.OutfitEntry) *Outfits {
	c := &Outfits{byName: make(map[string]domain.OutfitEntry, len(entries))}
	for _, e := range entries {
		c.byName[strings.ToLower(e.Name)] = e
	}
	return c
}

func (c *Outfits) HasOutfit(name string) bool {
	_, ok := c.byName[strings.ToLower(name)]
	return ok
}

func (c *Outfits) Outfit(name string) (domain.OutfitEntry, bool) {
	e, ok := c.byName[strings.ToLower(name)]
	return e, ok
}

// Len reports the number of catalog entries.
func (c *Outfits) Len() int { return len(c.byName) }
