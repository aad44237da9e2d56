package core

import (
	"testing"

	"rankcore/pkg/domain"
)

func ladder() (*Hierarchy, *Rank, *Rank) {
	rookie := domain.NewRank("Rookie", 0, 1000)
	captain := domain.NewRank("Captain", 300, 3000)
	return domain.NewHierarchy(rookie, captain), rookie, captain
}

func names(h *Hierarchy) []string {
	var out []string
	for _, r := range h.Ranks() {
		out = append(out, r.Name)
	}
	return out
}

func TestAddRemoveRankRoundTrip(t *testing.T) {
	h, _, _ := ladder()
	officer := domain.NewRank("Officer", 100, 2000)

	add := NewAddRank(h, officer, 1)
	if err := add.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := names(h); got[1] != "Officer" {
		t.Fatalf("ranks = %v", got)
	}
	if _, ok := h.Find(officer.ID); !ok {
		t.Fatalf("inserted rank not indexed")
	}
	if err := add.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if h.Len() != 2 {
		t.Fatalf("undo did not remove the rank")
	}

	rm, err := NewRemoveRank(h, h.Ranks()[0].ID)
	if err != nil {
		t.Fatalf("new remove: %v", err)
	}
	if err := rm.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if h.Ranks()[0].Name != "Captain" {
		t.Fatalf("ranks = %v", names(h))
	}
	if err := rm.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if h.Ranks()[0].Name != "Rookie" {
		t.Fatalf("undo did not restore position: %v", names(h))
	}
}

func TestRemoveRankUnknownID(t *testing.T) {
	h, _, _ := ladder()
	if _, err := NewRemoveRank(h, "missing"); err == nil {
		t.Fatalf("expected error for unknown id")
	}
}

func TestMoveRankRoundTrip(t *testing.T) {
	h, _, _ := ladder()
	mv := NewMoveRank(h, 0, 1)
	if err := mv.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if h.Ranks()[1].Name != "Rookie" {
		t.Fatalf("ranks = %v", names(h))
	}
	if err := mv.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if h.Ranks()[0].Name != "Rookie" {
		t.Fatalf("ranks = %v", names(h))
	}
}

func TestCloneRankFreshIdentifiers(t *testing.T) {
	officer := domain.NewRank("Officer", 100, 2000)
	h := domain.NewHierarchy(officer)
	promoted(h, officer, domain.NewRank("", 100, 2000), domain.NewRank("", 200, 2500))

	clone, err := NewCloneRank(h, officer.ID)
	if err != nil {
		t.Fatalf("new clone: %v", err)
	}
	if err := clone.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	copyRank := h.Ranks()[1]
	if copyRank.Name != "Officer Copy" {
		t.Fatalf("clone name = %q", copyRank.Name)
	}
	if copyRank.ID == officer.ID {
		t.Fatalf("clone shares the source id")
	}
	if copyRank.PayBands[0].ID == officer.PayBands[0].ID {
		t.Fatalf("cloned band shares the source id")
	}
	if copyRank.PayBands[0].Name != "Officer Copy I" {
		t.Fatalf("cloned band name = %q", copyRank.PayBands[0].Name)
	}
	if err := clone.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if h.Len() != 1 {
		t.Fatalf("undo left the clone in place")
	}
}

func TestRenameRankSyncsBandNames(t *testing.T) {
	officer := domain.NewRank("Officer", 0, 0)
	h := domain.NewHierarchy(officer)
	promoted(h, officer, domain.NewRank("", 100, 2000), domain.NewRank("", 200, 2500))

	cmd := NewRenameRank(officer, "Sergeant")
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if officer.PayBands[0].Name != "Sergeant I" || officer.PayBands[1].Name != "Sergeant II" {
		t.Fatalf("band names = %q, %q", officer.PayBands[0].Name, officer.PayBands[1].Name)
	}
	if err := cmd.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if officer.Name != "Officer" || officer.PayBands[0].Name != "Officer I" {
		t.Fatalf("undo did not restore names: %q, %q", officer.Name, officer.PayBands[0].Name)
	}
}

func TestPromoteDemoteRoundTrip(t *testing.T) {
	officer := domain.NewRank("Officer", 100, 2000)
	h := domain.NewHierarchy(officer)

	promote := NewPromoteRank(h, officer)
	if err := promote.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !officer.IsParent || len(officer.PayBands) != 2 {
		t.Fatalf("promotion produced %d bands, parent=%v", len(officer.PayBands), officer.IsParent)
	}
	if officer.PayBands[0].RequiredPoints != 100 || officer.PayBands[1].RequiredPoints != 200 {
		t.Fatalf("default band thresholds = %d, %d", officer.PayBands[0].RequiredPoints, officer.PayBands[1].RequiredPoints)
	}
	if officer.PayBands[0].Name != "Officer I" {
		t.Fatalf("band name = %q", officer.PayBands[0].Name)
	}

	bands := append([]*Rank(nil), officer.PayBands...)
	demote := NewDemoteRank(h, officer)
	if err := demote.Execute(); err != nil {
		t.Fatalf("demote: %v", err)
	}
	if officer.IsParent || len(officer.PayBands) != 0 {
		t.Fatalf("demotion left %d bands, parent=%v", len(officer.PayBands), officer.IsParent)
	}
	if _, ok := h.Find(bands[0].ID); ok {
		t.Fatalf("removed band still indexed")
	}
	if err := demote.Undo(); err != nil {
		t.Fatalf("undo demote: %v", err)
	}
	if !officer.IsParent || len(officer.PayBands) != 2 {
		t.Fatalf("undo did not restore the bands")
	}
	if officer.PayBands[0].ID != bands[0].ID {
		t.Fatalf("undo restored different band objects")
	}
	if err := promote.Undo(); err != nil {
		t.Fatalf("undo promote: %v", err)
	}
	if officer.IsParent {
		t.Fatalf("undo promote left the parent flag set")
	}
}

func TestPayBandCommandsRenumberSiblings(t *testing.T) {
	officer := domain.NewRank("Officer", 0, 0)
	h := domain.NewHierarchy(officer)
	promoted(h, officer, domain.NewRank("", 100, 2000), domain.NewRank("", 300, 3000))

	add := NewAddPayBand(h, officer, domain.NewRank("", 200, 2500), 1)
	if err := add.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if officer.PayBands[1].RequiredPoints != 200 {
		t.Fatalf("band inserted at wrong position")
	}
	if officer.PayBands[2].Name != "Officer III" {
		t.Fatalf("siblings not renumbered: %q", officer.PayBands[2].Name)
	}

	rm := NewRemovePayBand(h, officer, 1)
	if err := rm.Execute(); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(officer.PayBands) != 2 || officer.PayBands[1].Name != "Officer II" {
		t.Fatalf("removal did not renumber: %v", officer.PayBands[1].Name)
	}
	if err := rm.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if officer.PayBands[1].RequiredPoints != 200 || officer.PayBands[1].Name != "Officer II" {
		t.Fatalf("undo did not restore the band")
	}
}

func TestMovePayBandReordersAndResyncsNames(t *testing.T) {
	officer := domain.NewRank("Officer", 0, 0)
	h := domain.NewHierarchy(officer)
	first := domain.NewRank("", 100, 2000)
	second := domain.NewRank("", 200, 2500)
	promoted(h, officer, first, second)

	cmd := NewMovePayBand(h, officer, 0, 1)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if officer.PayBands[0].ID != second.ID || officer.PayBands[1].ID != first.ID {
		t.Fatalf("bands not reordered: %v", officer.PayBands)
	}
	if officer.PayBands[0].Name != "Officer I" || officer.PayBands[1].Name != "Officer II" {
		t.Fatalf("derived names not resynced: %q, %q", officer.PayBands[0].Name, officer.PayBands[1].Name)
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if officer.PayBands[0].ID != first.ID || officer.PayBands[0].Name != "Officer I" {
		t.Fatalf("undo did not restore order: %v", officer.PayBands)
	}
}

func TestStationCommands(t *testing.T) {
	rank := domain.NewRank("Officer", 100, 2000)
	add := NewAddStation(rank, StationAssignment{StationName: "Mission Row", Zones: []string{"Downtown"}})
	if err := add.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(rank.Stations) != 1 || rank.Stations[0].StationName != "Mission Row" {
		t.Fatalf("stations = %v", rank.Stations)
	}

	rank.Stations[0].VehicleOverrides = []Vehicle{{Model: "police"}}
	rm := NewRemoveStation(rank, 0)
	if err := rm.Execute(); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(rank.Stations) != 0 {
		t.Fatalf("stations = %v", rank.Stations)
	}
	if err := rm.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if len(rank.Stations[0].VehicleOverrides) != 1 {
		t.Fatalf("undo dropped the station overrides")
	}
}

func TestVehicleCommandsRankAndOverrideScopes(t *testing.T) {
	rank := domain.NewRank("Officer", 100, 2000)
	rank.Stations = []StationAssignment{{StationName: "Mission Row"}}

	global := NewAddVehicle(rank, RankLevel, Vehicle{Model: "police"})
	if err := global.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	scoped := NewAddVehicle(rank, 0, Vehicle{Model: "police2"})
	if err := scoped.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(rank.Vehicles) != 1 || len(rank.Stations[0].VehicleOverrides) != 1 {
		t.Fatalf("vehicle scopes wrong: %v / %v", rank.Vehicles, rank.Stations[0].VehicleOverrides)
	}

	rm := NewRemoveVehicle(rank, 0, 0)
	if err := rm.Execute(); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(rank.Stations[0].VehicleOverrides) != 0 || len(rank.Vehicles) != 1 {
		t.Fatalf("remove hit the wrong scope")
	}
	if err := rm.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if rank.Stations[0].VehicleOverrides[0].Model != "police2" {
		t.Fatalf("undo did not restore the override")
	}
}

func TestOutfitCommands(t *testing.T) {
	rank := domain.NewRank("Officer", 100, 2000)
	add := NewAddOutfit(rank, RankLevel, "patrol.uniform")
	if err := add.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	rm := NewRemoveOutfit(rank, RankLevel, 0)
	if err := rm.Execute(); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(rank.Outfits) != 0 {
		t.Fatalf("outfits = %v", rank.Outfits)
	}
	if err := rm.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if len(rank.Outfits) != 1 || rank.Outfits[0] != "patrol.uniform" {
		t.Fatalf("undo did not restore the outfit")
	}
}

func TestCopyStationsIsOneUndoStep(t *testing.T) {
	src := domain.NewRank("Rookie", 0, 1000)
	src.Stations = []StationAssignment{{StationName: "Mission Row", OutfitOverrides: []string{"a"}}}
	dst := domain.NewRank("Officer", 100, 2000)
	dst.Stations = []StationAssignment{{StationName: "Vespucci"}}

	cmd := NewCopyStations(dst, src)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(dst.Stations) != 1 || dst.Stations[0].StationName != "Mission Row" {
		t.Fatalf("copy result = %v", dst.Stations)
	}
	// The copy must be independent of the source.
	dst.Stations[0].OutfitOverrides[0] = "changed"
	if src.Stations[0].OutfitOverrides[0] != "a" {
		t.Fatalf("copied stations alias the source")
	}
	if err := cmd.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if dst.Stations[0].StationName != "Vespucci" {
		t.Fatalf("undo did not restore the previous list")
	}
}

func TestRemoveAllVehicles(t *testing.T) {
	rank := domain.NewRank("Officer", 100, 2000)
	rank.Vehicles = []Vehicle{{Model: "police"}, {Model: "police2"}}

	cmd := NewRemoveAllVehicles(rank, RankLevel)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(rank.Vehicles) != 0 {
		t.Fatalf("vehicles = %v", rank.Vehicles)
	}
	if err := cmd.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if len(rank.Vehicles) != 2 {
		t.Fatalf("undo did not restore the list")
	}
}

func TestAddMissingOutfitsSkipsExisting(t *testing.T) {
	src := domain.NewRank("Rookie", 0, 1000)
	src.Outfits = []string{"patrol.uniform", "dress.uniform"}
	dst := domain.NewRank("Officer", 100, 2000)
	dst.Outfits = []string{"PATROL.UNIFORM"}

	cmd := NewAddMissingOutfits(dst, src)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(dst.Outfits) != 2 || dst.Outfits[1] != "dress.uniform" {
		t.Fatalf("outfits = %v", dst.Outfits)
	}
	if err := cmd.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if len(dst.Outfits) != 1 {
		t.Fatalf("undo did not restore the list")
	}
}
