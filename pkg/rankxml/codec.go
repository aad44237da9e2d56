// Package rankxml implements the canonical XML wire format for rank
// hierarchies. The file is the only bit-exact external contract the editor
// honors: element ordering, flattening of pay bands, and omission of empty
// collections are all fixed here.
package rankxml

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"rankcore/pkg/domain"
)

// DecodeError reports unparseable input along with the position of the
// offending fragment.
type DecodeError struct {
	Line   int
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("rankxml: decode failed at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("rankxml: decode failed at byte offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

type xmlDocument struct {
	XMLName xml.Name  `xml:"Ranks"`
	Ranks   []xmlRank `xml:"Rank"`
}

type xmlRank struct {
	Name           string       `xml:"Name"`
	RequiredPoints int          `xml:"RequiredPoints"`
	Salary         int          `xml:"Salary"`
	Stations       *xmlStations `xml:"Stations,omitempty"`
	Vehicles       *xmlVehicles `xml:"Vehicles,omitempty"`
	Outfits        *xmlOutfits  `xml:"Outfits,omitempty"`
}

type xmlStations struct {
	Stations []xmlStation `xml:"Station"`
}

type xmlStation struct {
	StationName string       `xml:"StationName"`
	Zones       *xmlZones    `xml:"Zones,omitempty"`
	StyleID     int          `xml:"StyleID"`
	Vehicles    *xmlVehicles `xml:"Vehicles,omitempty"`
	Outfits     *xmlOutfits  `xml:"Outfits,omitempty"`
}

type xmlZones struct {
	Zones []string `xml:"Zone"`
}

type xmlVehicles struct {
	Vehicles []xmlVehicle `xml:"Vehicle"`
}

type xmlVehicle struct {
	Model string `xml:"model,attr"`
	Name  string `xml:",chardata"`
}

type xmlOutfits struct {
	Outfits []xmlOutfit `xml:"Outfit"`
}

type xmlOutfit struct {
	Name string `xml:",chardata"`
}

// Serialize renders the hierarchy in canonical form: UTF-8 declaration, two
// space indent, parents flattened into their pay bands in order, and empty
// collections omitted entirely.
func Serialize(h *domain.Hierarchy) ([]byte, error) {
	doc := xmlDocument{}
	for _, rank := range h.Flatten() {
		doc.Ranks = append(doc.Ranks, encodeRank(rank))
	}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rankxml: encode: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Deserialize parses canonical XML into a flat hierarchy. Ranks receive
// fresh identifiers and arena links are rebuilt; the parent/pay-band
// grouping is not part of the wire format and is not re-inferred here.
func Deserialize(data []byte) (*domain.Hierarchy, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var doc xmlDocument
	if err := dec.Decode(&doc); err != nil {
		de := &DecodeError{Offset: dec.InputOffset(), Err: err}
		if syn, ok := err.(*xml.SyntaxError); ok {
			de.Line = syn.Line
		}
		return nil, de
	}
	ranks := make([]*domain.Rank, 0, len(doc.Ranks))
	for _, xr := range doc.Ranks {
		ranks = append(ranks, decodeRank(xr))
	}
	return domain.NewHierarchy(ranks...), nil
}

func encodeRank(rank *domain.Rank) xmlRank {
	out := xmlRank{
		Name:           rank.Name,
		RequiredPoints: rank.RequiredPoints,
		Salary:         rank.Salary,
		Vehicles:       encodeVehicles(rank.Vehicles),
		Outfits:        encodeOutfits(rank.Outfits),
	}
	if len(rank.Stations) > 0 {
		stations := &xmlStations{}
		for _, s := range rank.Stations {
			stations.Stations = append(stations.Stations, encodeStation(s))
		}
		out.Stations = stations
	}
	return out
}

func encodeStation(s domain.StationAssignment) xmlStation {
	out := xmlStation{
		StationName: s.StationName,
		StyleID:     s.StyleID,
		Vehicles:    encodeVehicles(s.VehicleOverrides),
		Outfits:     encodeOutfits(s.OutfitOverrides),
	}
	if len(s.Zones) > 0 {
		out.Zones = &xmlZones{Zones: append([]string(nil), s.Zones...)}
	}
	return out
}

func encodeVehicles(vehicles []domain.Vehicle) *xmlVehicles {
	if len(vehicles) == 0 {
		return nil
	}
	out := &xmlVehicles{}
	for _, v := range vehicles {
		out.Vehicles = append(out.Vehicles, xmlVehicle{Model: v.Model, Name: v.DisplayName})
	}
	return out
}

func encodeOutfits(outfits []string) *xmlOutfits {
	if len(outfits) == 0 {
		return nil
	}
	out := &xmlOutfits{}
	for _, o := range outfits {
		out.Outfits = append(out.Outfits, xmlOutfit{Name: o})
	}
	return out
}

func decodeRank(xr xmlRank) *domain.Rank {
	rank := domain.NewRank(xr.Name, xr.RequiredPoints, xr.Salary)
	if xr.Stations != nil {
		for _, xs := range xr.Stations.Stations {
			rank.Stations = append(rank.Stations, decodeStation(xs))
		}
	}
	rank.Vehicles = decodeVehicles(xr.Vehicles)
	rank.Outfits = decodeOutfits(xr.Outfits)
	return rank
}

func decodeStation(xs xmlStation) domain.StationAssignment {
	out := domain.StationAssignment{
		StationName:      xs.StationName,
		StyleID:          xs.StyleID,
		VehicleOverrides: decodeVehicles(xs.Vehicles),
		OutfitOverrides:  decodeOutfits(xs.Outfits),
	}
	if xs.Zones != nil {
		out.Zones = append([]string(nil), xs.Zones.Zones...)
	}
	return out
}

func decodeVehicles(in *xmlVehicles) []domain.Vehicle {
	if in == nil {
		return nil
	}
	out := make([]domain.Vehicle, 0, len(in.Vehicles))
	for _, v := range in.Vehicles {
		out = append(out, domain.Vehicle{Model: v.Model, DisplayName: v.Name})
	}
	return out
}

func decodeOutfits(in *xmlOutfits) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in.Outfits))
	for _, o := range in.Outfits {
		out = append(out, o.Name)
	}
	return out
}
