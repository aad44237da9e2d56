package core

import (
	"context"
	"fmt"
)

// NewCatalogReferenceRule returns the rule verifying every station, vehicle,
// and outfit identifier against the injected catalogs. Missing entries are
// errors; ItemName is set so a finding can be dismissed or resolved by
// removing the individual item.
func NewCatalogReferenceRule() Rule {
	return catalogReferenceRule{}
}

type catalogReferenceRule struct{}

func (catalogReferenceRule) Name() string { return "catalog_refs" }

func (catalogReferenceRule) Evaluate(_ context.Context, view RuleView) (Result, error) {
	res := Result{}
	for _, rank := range view.Ranks() {
		checkRankReferences(&res, view, rank)
		for _, band := range rank.PayBands {
			checkRankReferences(&res, view, band)
		}
	}
	return res, nil
}

func checkRankReferences(res *Result, view RuleView, rank *Rank) {
	for _, v := range rank.Vehicles {
		if !view.VehicleCatalog().HasVehicle(v.Model) {
			res.Issues = append(res.Issues, missingRef(rank, CategoryVehicle, v.Model,
				fmt.Sprintf("%s: vehicle %q has no catalog entry", rank.Name, v.Model)))
		}
	}
	for _, o := range rank.Outfits {
		if !view.OutfitCatalog().HasOutfit(o) {
			res.Issues = append(res.Issues, missingRef(rank, CategoryOutfit, o,
				fmt.Sprintf("%s: outfit %q has no catalog entry", rank.Name, o)))
		}
	}
	for _, s := range rank.Stations {
		if !view.StationCatalog().HasStation(s.StationName) {
			res.Issues = append(res.Issues, missingRef(rank, CategoryStation, s.StationName,
				fmt.Sprintf("%s: station %q has no catalog entry", rank.Name, s.StationName)))
		}
		for _, v := range s.VehicleOverrides {
			if !view.VehicleCatalog().HasVehicle(v.Model) {
				res.Issues = append(res.Issues, missingRef(rank, CategoryVehicle, v.Model,
					fmt.Sprintf("%s / %s: vehicle %q has no catalog entry", rank.Name, s.StationName, v.Model)))
			}
		}
		for _, o := range s.OutfitOverrides {
			if !view.OutfitCatalog().HasOutfit(o) {
				res.Issues = append(res.Issues, missingRef(rank, CategoryOutfit, o,
					fmt.Sprintf("%s / %s: outfit %q has no catalog entry", rank.Name, s.StationName, o)))
			}
		}
	}
}

func missingRef(rank *Rank, category Category, item, message string) Issue {
	return Issue{
		Rule:     "catalog_refs",
		Severity: SeverityError,
		Category: category,
		RankID:   rank.ID,
		ItemName: item,
		Message:  message,
	}
}
