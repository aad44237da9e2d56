// Package domain defines the rank hierarchy entities, validation primitives,
// and collaborator interfaces used by rankcore.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Rank represents a progression tier. A rank is either a leaf carrying its
// own threshold and salary or, when IsParent is set, a container of ordered
// pay bands. Pay bands are themselves Rank values whose ParentID points back
// into the hierarchy arena; a pay band never has pay bands of its own.
type Rank struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	RequiredPoints int                 `json:"required_points"`
	Salary         int                 `json:"salary"`
	IsParent       bool                `json:"is_parent"`
	ParentID       string              `json:"parent_id,omitempty"`
	PayBands       []*Rank             `json:"pay_bands,omitempty"`
	Stations       []StationAssignment `json:"stations,omitempty"`
	Vehicles       []Vehicle           `json:"vehicles,omitempty"`
	Outfits        []string            `json:"outfits,omitempty"`
}

// StationAssignment captures a rank's claim on a station from the external
// station catalog, with station-scoped overrides that shadow the rank's
// global vehicle and outfit lists.
type StationAssignment struct {
	StationName      string    `json:"station_name"`
	Zones            []string  `json:"zones,omitempty"`
	StyleID          int       `json:"style_id"`
	VehicleOverrides []Vehicle `json:"vehicle_overrides,omitempty"`
	OutfitOverrides  []string  `json:"outfit_overrides,omitempty"`
}

// Vehicle is an immutable catalog reference. Two vehicles are considered the
// same assignment when their models match, regardless of display name.
type Vehicle struct {
	Model       string   `json:"model"`
	DisplayName string   `json:"display_name"`
	Agencies    []string `json:"agencies,omitempty"`
}

// Same reports whether two vehicles identify the same catalog entry.
func (v Vehicle) Same(other Vehicle) bool {
	return strings.EqualFold(v.Model, other.Model)
}

// NewRankID returns a fresh stable identifier for a rank.
func NewRankID() string {
	return uuid.NewString()
}

// NewRank constructs a leaf rank with a generated identifier.
func NewRank(name string, points, salary int) *Rank {
	return &Rank{ID: NewRankID(), Name: name, RequiredPoints: points, Salary: salary}
}

// Clone returns a deep copy of the rank, its pay bands, and all nested
// collections. Identifiers are preserved; callers cloning into the same
// hierarchy must reassign them.
func (r *Rank) Clone() *Rank {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Stations = cloneStations(r.Stations)
	cp.Vehicles = cloneVehicles(r.Vehicles)
	cp.Outfits = cloneStrings(r.Outfits)
	if len(r.PayBands) > 0 {
		cp.PayBands = make([]*Rank, len(r.PayBands))
		for i, band := range r.PayBands {
			cp.PayBands[i] = band.Clone()
		}
	}
	return &cp
}

// MaxPoints returns the highest XP threshold the rank represents: the
// maximum among its pay bands for a populated parent, otherwise the rank's
// own. The maximum is scanned rather than taken from the last band so the
// floor stays correct even while bands are misordered mid-edit.
func (r *Rank) MaxPoints() int {
	if r.IsParent && len(r.PayBands) > 0 {
		max := r.PayBands[0].RequiredPoints
		for _, band := range r.PayBands[1:] {
			if band.RequiredPoints > max {
				max = band.RequiredPoints
			}
		}
		return max
	}
	return r.RequiredPoints
}

// HasVehicle reports whether the rank's global vehicle list already carries
// the given model.
func (r *Rank) HasVehicle(model string) bool {
	for _, v := range r.Vehicles {
		if strings.EqualFold(v.Model, model) {
			return true
		}
	}
	return false
}

// HasOutfit reports whether the rank's global outfit list carries the given
// combined identifier.
func (r *Rank) HasOutfit(name string) bool {
	for _, o := range r.Outfits {
		if strings.EqualFold(o, name) {
			return true
		}
	}
	return false
}

// HasStation reports whether the rank is assigned the named station.
func (r *Rank) HasStation(name string) bool {
	return r.StationIndex(name) >= 0
}

// StationIndex returns the position of the named station assignment, or -1.
func (r *Rank) StationIndex(name string) int {
	for i, s := range r.Stations {
		if strings.EqualFold(s.StationName, name) {
			return i
		}
	}
	return -1
}

// SyncPayBandNames rewrites every pay band name to the derived form
// "{parent} {roman index}". The engine calls this after renames and after
// any pay band reorder; it is a no-op for leaf ranks.
func SyncPayBandNames(parent *Rank) {
	for i, band := range parent.PayBands {
		band.Name = parent.Name + " " + RomanNumeral(i+1)
	}
}

func cloneStations(in []StationAssignment) []StationAssignment {
	if in == nil {
		return nil
	}
	out := make([]StationAssignment, len(in))
	for i, s := range in {
		out[i] = s
		out[i].Zones = cloneStrings(s.Zones)
		out[i].VehicleOverrides = cloneVehicles(s.VehicleOverrides)
		out[i].OutfitOverrides = cloneStrings(s.OutfitOverrides)
	}
	return out
}

func cloneVehicles(in []Vehicle) []Vehicle {
	if in == nil {
		return nil
	}
	out := make([]Vehicle, len(in))
	for i, v := range in {
		out[i] = v
		out[i].Agencies = cloneStrings(v.Agencies)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
