package airdex

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	geohash "github.com/TomiHiltunen/geohash-golang"
)

// BoundingBox is the smallest lat/lon box enclosing a set of coordinates.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// CountryAggregate summarizes the airports of one country (or, with an
// empty Country, the whole dataset).
type CountryAggregate struct {
	Country  string      `json:"country"`
	Total    int         `json:"total"`
	WithIATA int         `json:"with_iata"`
	WithICAO int         `json:"with_icao"`
	Bounds   BoundingBox `json:"bounds"`
}

// DatasetStats is the global aggregate plus a per-country breakdown.
type DatasetStats struct {
	Global    CountryAggregate            `json:"global"`
	Countries map[string]CountryAggregate `json:"countries"`
}

// CountryStats returns the aggregate for one country, matched
// case-insensitively and ignoring diacritics. An unknown country yields a
// zero-count aggregate, not an error. Recomputed per call; a single linear
// pass over the snapshot.
func (s *Snapshot) CountryStats(country string) CountryAggregate {
	want := normalizeText(country)
	agg := CountryAggregate{Country: country}
	for _, rec := range s.records {
		if normalizeText(rec.Country) != want {
			continue
		}
		if agg.Total == 0 {
			agg.Country = rec.Country // canonical spelling from the data
		}
		accumulate(&agg, rec)
	}
	return agg
}

// Stats returns the global aggregate and a per-country breakdown keyed by
// the country names as they appear in the dataset.
func (s *Snapshot) Stats() DatasetStats {
	st := DatasetStats{
		Global:    CountryAggregate{},
		Countries: make(map[string]CountryAggregate),
	}
	for _, rec := range s.records {
		accumulate(&st.Global, rec)

		agg, ok := st.Countries[rec.Country]
		if !ok {
			agg = CountryAggregate{Country: rec.Country}
		}
		accumulate(&agg, rec)
		st.Countries[rec.Country] = agg
	}
	return st
}

// TopCountries returns per-country aggregates ordered by descending
// airport count, ties broken by country name ascending. limit <= 0
// returns all countries.
func (s *Snapshot) TopCountries(limit int) []CountryAggregate {
	byCountry := s.Stats().Countries
	out := make([]CountryAggregate, 0, len(byCountry))
	for _, agg := range byCountry {
		out = append(out, agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Country < out[j].Country
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// accumulate folds one record into an aggregate.
func accumulate(agg *CountryAggregate, rec AirportRecord) {
	if agg.Total == 0 {
		agg.Bounds = BoundingBox{
			MinLat: rec.Latitude, MaxLat: rec.Latitude,
			MinLon: rec.Longitude, MaxLon: rec.Longitude,
		}
	} else {
		if rec.Latitude < agg.Bounds.MinLat {
			agg.Bounds.MinLat = rec.Latitude
		}
		if rec.Latitude > agg.Bounds.MaxLat {
			agg.Bounds.MaxLat = rec.Latitude
		}
		if rec.Longitude < agg.Bounds.MinLon {
			agg.Bounds.MinLon = rec.Longitude
		}
		if rec.Longitude > agg.Bounds.MaxLon {
			agg.Bounds.MaxLon = rec.Longitude
		}
	}
	agg.Total++
	if rec.IATA != "" {
		agg.WithIATA++
	}
	if rec.ICAO != "" {
		agg.WithICAO++
	}
}

// exportGeohashPrecision gives ~5m geohash resolution, plenty for placing
// an airport on a map.
const exportGeohashPrecision = 9

// exportAirport is the JSON shape of one airport in a country report.
type exportAirport struct {
	IATA      string  `json:"iata,omitempty"`
	ICAO      string  `json:"icao,omitempty"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation int     `json:"elevation,omitempty"`
	Geohash   string  `json:"geohash"`
}

// countryReport is the JSON document written by ExportCountry.
type countryReport struct {
	Country  string          `json:"country"`
	Total    int             `json:"total_airports"`
	WithIATA int             `json:"with_iata"`
	WithICAO int             `json:"with_icao"`
	Bounds   BoundingBox     `json:"bounds"`
	Airports []exportAirport `json:"airports"`
}

// ExportCountry writes a JSON report of every airport in a country,
// sorted by city then name, each annotated with its geohash. Matching is
// the same case/diacritic-insensitive comparison CountryStats uses.
// Fails when the country has no airports in the snapshot.
func (s *Snapshot) ExportCountry(w io.Writer, country string) error {
	want := normalizeText(country)

	var recs []AirportRecord
	for _, rec := range s.records {
		if normalizeText(rec.Country) == want {
			recs = append(recs, rec)
		}
	}
	if len(recs) == 0 {
		return fmt.Errorf("no airports for country %q", country)
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].City != recs[j].City {
			return recs[i].City < recs[j].City
		}
		return recs[i].Name < recs[j].Name
	})

	agg := CountryAggregate{}
	report := countryReport{Country: recs[0].Country}
	for _, rec := range recs {
		accumulate(&agg, rec)
		report.Airports = append(report.Airports, exportAirport{
			IATA:      rec.IATA,
			ICAO:      rec.ICAO,
			Name:      rec.Name,
			City:      rec.City,
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
			Elevation: rec.Elevation,
			Geohash:   geohash.EncodeWithPrecision(rec.Latitude, rec.Longitude, exportGeohashPrecision),
		})
	}
	report.Total = agg.Total
	report.WithIATA = agg.WithIATA
	report.WithICAO = agg.WithICAO
	report.Bounds = agg.Bounds

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
