package core

import "fmt"

// RankLevel selects the rank-wide collection instead of a station override
// scope when passed as the station index of an item command.
const RankLevel = -1

// AddStationCommand appends a station assignment to a rank.
type AddStationCommand struct {
	rank    *Rank
	station StationAssignment
	index   int
}

// NewAddStation captures the insertion position (end of list) now.
func NewAddStation(rank *Rank, station StationAssignment) *AddStationCommand {
	return &AddStationCommand{rank: rank, station: station, index: len(rank.Stations)}
}

func (c *AddStationCommand) Description() string {
	return fmt.Sprintf("assign station %q to %q", c.station.StationName, c.rank.Name)
}

func (c *AddStationCommand) Execute() error {
	c.rank.Stations = append(c.rank.Stations, StationAssignment{})
	copy(c.rank.Stations[c.index+1:], c.rank.Stations[c.index:])
	c.rank.Stations[c.index] = c.station
	return nil
}

func (c *AddStationCommand) Undo() error {
	c.rank.Stations = append(c.rank.Stations[:c.index], c.rank.Stations[c.index+1:]...)
	return nil
}

// RemoveStationCommand detaches a station assignment, retaining the full
// value (including overrides) for undo.
type RemoveStationCommand struct {
	rank    *Rank
	station StationAssignment
	index   int
}

// NewRemoveStation captures the assignment and its position.
func NewRemoveStation(rank *Rank, index int) *RemoveStationCommand {
	return &RemoveStationCommand{rank: rank, station: rank.Stations[index], index: index}
}

func (c *RemoveStationCommand) Description() string {
	return fmt.Sprintf("remove station %q from %q", c.station.StationName, c.rank.Name)
}

func (c *RemoveStationCommand) Execute() error {
	c.rank.Stations = append(c.rank.Stations[:c.index], c.rank.Stations[c.index+1:]...)
	return nil
}

func (c *RemoveStationCommand) Undo() error {
	c.rank.Stations = append(c.rank.Stations, StationAssignment{})
	copy(c.rank.Stations[c.index+1:], c.rank.Stations[c.index:])
	c.rank.Stations[c.index] = c.station
	return nil
}

// AddVehicleCommand appends a vehicle to the rank-wide list or to a station
// override scope.
type AddVehicleCommand struct {
	rank    *Rank
	station int
	vehicle Vehicle
	index   int
}

// NewAddVehicle targets the rank-wide list when station is RankLevel,
// otherwise the override list of the station at that position.
func NewAddVehicle(rank *Rank, station int, vehicle Vehicle) *AddVehicleCommand {
	c := &AddVehicleCommand{rank: rank, station: station, vehicle: vehicle}
	c.index = len(*c.list())
	return c
}

func (c *AddVehicleCommand) list() *[]Vehicle {
	if c.station == RankLevel {
		return &c.rank.Vehicles
	}
	return &c.rank.Stations[c.station].VehicleOverrides
}

func (c *AddVehicleCommand) Description() string {
	if c.station == RankLevel {
		return fmt.Sprintf("add vehicle %q to %q", c.vehicle.Model, c.rank.Name)
	}
	return fmt.Sprintf("add vehicle %q to %q at %q", c.vehicle.Model, c.rank.Name, c.rank.Stations[c.station].StationName)
}

func (c *AddVehicleCommand) Execute() error {
	list := c.list()
	*list = append(*list, Vehicle{})
	copy((*list)[c.index+1:], (*list)[c.index:])
	(*list)[c.index] = c.vehicle
	return nil
}

func (c *AddVehicleCommand) Undo() error {
	list := c.list()
	*list = append((*list)[:c.index], (*list)[c.index+1:]...)
	return nil
}

// RemoveVehicleCommand detaches a vehicle from the rank-wide list or a
// station override scope.
type RemoveVehicleCommand struct {
	rank    *Rank
	station int
	vehicle Vehicle
	index   int
}

// NewRemoveVehicle captures the vehicle and its position.
func NewRemoveVehicle(rank *Rank, station, index int) *RemoveVehicleCommand {
	c := &RemoveVehicleCommand{rank: rank, station: station, index: index}
	c.vehicle = (*c.list())[index]
	return c
}

func (c *RemoveVehicleCommand) list() *[]Vehicle {
	if c.station == RankLevel {
		return &c.rank.Vehicles
	}
	return &c.rank.Stations[c.station].VehicleOverrides
}

func (c *RemoveVehicleCommand) Description() string {
	return fmt.Sprintf("remove vehicle %q from %q", c.vehicle.Model, c.rank.Name)
}

func (c *RemoveVehicleCommand) Execute() error {
	list := c.list()
	*list = append((*list)[:c.index], (*list)[c.index+1:]...)
	return nil
}

func (c *RemoveVehicleCommand) Undo() error {
	list := c.list()
	*list = append(*list, Vehicle{})
	copy((*list)[c.index+1:], (*list)[c.index:])
	(*list)[c.index] = c.vehicle
	return nil
}

// AddOutfitCommand appends an outfit identifier to the rank-wide list or a
// station override scope.
type AddOutfitCommand struct {
	rank    *Rank
	station int
	outfit  string
	index   int
}

// NewAddOutfit targets the rank-wide list when station is RankLevel.
func NewAddOutfit(rank *Rank, station int, outfit string) *AddOutfitCommand {
	c := &AddOutfitCommand{rank: rank, station: station, outfit: outfit}
	c.index = len(*c.list())
	return c
}

func (c *AddOutfitCommand) list() *[]string {
	if c.station == RankLevel {
		return &c.rank.Outfits
	}
	return &c.rank.Stations[c.station].OutfitOverrides
}

func (c *AddOutfitCommand) Description() string {
	return fmt.Sprintf("add outfit %q to %q", c.outfit, c.rank.Name)
}

func (c *AddOutfitCommand) Execute() error {
	list := c.list()
	*list = append(*list, "")
	copy((*list)[c.index+1:], (*list)[c.index:])
	(*list)[c.index] = c.outfit
	return nil
}

func (c *AddOutfitCommand) Undo() error {
	list := c.list()
	*list = append((*list)[:c.index], (*list)[c.index+1:]...)
	return nil
}

// RemoveOutfitCommand detaches an outfit identifier.
type RemoveOutfitCommand struct {
	rank    *Rank
	station int
	outfit  string
	index   int
}

// NewRemoveOutfit captures the identifier and its position.
func NewRemoveOutfit(rank *Rank, station, index int) *RemoveOutfitCommand {
	c := &RemoveOutfitCommand{rank: rank, station: station, index: index}
	c.outfit = (*c.list())[index]
	return c
}

func (c *RemoveOutfitCommand) list() *[]string {
	if c.station == RankLevel {
		return &c.rank.Outfits
	}
	return &c.rank.Stations[c.station].OutfitOverrides
}

func (c *RemoveOutfitCommand) Description() string {
	return fmt.Sprintf("remove outfit %q from %q", c.outfit, c.rank.Name)
}

func (c *RemoveOutfitCommand) Execute() error {
	list := c.list()
	*list = append((*list)[:c.index], (*list)[c.index+1:]...)
	return nil
}

func (c *RemoveOutfitCommand) Undo() error {
	list := c.list()
	*list = append(*list, "")
	copy((*list)[c.index+1:], (*list)[c.index:])
	(*list)[c.index] = c.outfit
	return nil
}

// CopyStationsCommand replaces a rank's station assignments with deep copies
// of another rank's. One stack entry snapshots the full previous list, so
// the destructive copy reverses in a single undo.
type CopyStationsCommand struct {
	dst    *Rank
	src    *Rank
	prev   []StationAssignment
	copied []StationAssignment
}

// NewCopyStations snapshots both the previous list and the copy to apply.
func NewCopyStations(dst, src *Rank) *CopyStationsCommand {
	return &CopyStationsCommand{
		dst:    dst,
		src:    src,
		prev:   dst.Stations,
		copied: src.Clone().Stations,
	}
}

func (c *CopyStationsCommand) Description() string {
	return fmt.Sprintf("copy stations from %q to %q", c.src.Name, c.dst.Name)
}

func (c *CopyStationsCommand) Execute() error {
	c.dst.Stations = c.copied
	return nil
}

func (c *CopyStationsCommand) Undo() error {
	c.dst.Stations = c.prev
	return nil
}

// RemoveAllVehiclesCommand clears a vehicle list in one stack entry.
type RemoveAllVehiclesCommand struct {
	rank    *Rank
	station int
	prev    []Vehicle
}

// NewRemoveAllVehicles snapshots the current list.
func NewRemoveAllVehicles(rank *Rank, station int) *RemoveAllVehiclesCommand {
	c := &RemoveAllVehiclesCommand{rank: rank, station: station}
	c.prev = *c.list()
	return c
}

func (c *RemoveAllVehiclesCommand) list() *[]Vehicle {
	if c.station == RankLevel {
		return &c.rank.Vehicles
	}
	return &c.rank.Stations[c.station].VehicleOverrides
}

func (c *RemoveAllVehiclesCommand) Description() string {
	return fmt.Sprintf("remove all vehicles from %q", c.rank.Name)
}

func (c *RemoveAllVehiclesCommand) Execute() error {
	*c.list() = nil
	return nil
}

func (c *RemoveAllVehiclesCommand) Undo() error {
	*c.list() = c.prev
	return nil
}

// AddMissingOutfitsCommand appends every outfit the source rank carries that
// the destination lacks, as one stack entry.
type AddMissingOutfitsCommand struct {
	dst  *Rank
	src  *Rank
	prev []string
	next []string
}

// NewAddMissingOutfits computes the merged list up front.
func NewAddMissingOutfits(dst, src *Rank) *AddMissingOutfitsCommand {
	next := append([]string(nil), dst.Outfits...)
	for _, outfit := range src.Outfits {
		if !dst.HasOutfit(outfit) {
			next = append(next, outfit)
		}
	}
	return &AddMissingOutfitsCommand{dst: dst, src: src, prev: dst.Outfits, next: next}
}

func (c *AddMissingOutfitsCommand) Description() string {
	return fmt.Sprintf("add outfits from %q to %q", c.src.Name, c.dst.Name)
}

func (c *AddMissingOutfitsCommand) Execute() error {
	c.dst.Outfits = c.next
	return nil
}

func (c *AddMissingOutfitsCommand) Undo() error {
	c.dst.Outfits = c.prev
	return nil
}
