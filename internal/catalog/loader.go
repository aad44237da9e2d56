package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"rankcore/pkg/domain"
)

// File names expected under a catalog directory.
const (
	stationsFile = "stations.yaml"
	vehiclesFile = "vehicles.yaml"
	outfitsFile  = "outfits.yaml"
)

type catalogFile struct {
	Stations []domain.StationEntry `yaml:"stations,omitempty"`
	Vehicles []domain.VehicleEntry `yaml:"vehicles,omitempty"`
	Outfits  []domain.OutfitEntry  `yaml:"outfits,omitempty"`
}

// LoadDir reads the three catalog files from dir. Missing files yield empty
// catalogs; malformed ones fail.
func LoadDir(dir string) (*Stations, *Vehicles, *Outfits, error) {
	var merged catalogFile
	for _, name := range []string{stationsFile, vehiclesFile, outfitsFile} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, nil, nil, fmt.Errorf("read catalog %s: %w", name, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, nil, nil, fmt.Errorf("parse catalog %s: %w", name, err)
		}
		merged.Stations = append(merged.Stations, file.Stations...)
		merged.Vehicles = append(merged.Vehicles, file.Vehicles...)
		merged.Outfits = append(merged.Outfits, file.Outfits...)
	}
	return NewStations(merged.Stations...), NewVehicles(merged.Vehicles...), NewOutfits(merged.Outfits...), nil
}
