package airdex

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryStats(t *testing.T) {
	snap := testSnapshot(t)

	us := snap.CountryStats("United States")
	assert.Equal(t, "United States", us.Country)
	assert.Equal(t, 4, us.Total)
	assert.Equal(t, 4, us.WithIATA)
	assert.Equal(t, 4, us.WithICAO)
	assert.InDelta(t, 33.9425, us.Bounds.MinLat, 1e-9)
	assert.InDelta(t, 40.7772, us.Bounds.MaxLat, 1e-9)
	assert.InDelta(t, -118.4081, us.Bounds.MinLon, 1e-9)
	assert.InDelta(t, -73.7789, us.Bounds.MaxLon, 1e-9)

	// The UK has one ICAO-only airport.
	uk := snap.CountryStats("united kingdom") // case-insensitive
	assert.Equal(t, "United Kingdom", uk.Country)
	assert.Equal(t, 3, uk.Total)
	assert.Equal(t, 2, uk.WithIATA)
	assert.Equal(t, 3, uk.WithICAO)

	unknown := snap.CountryStats("Atlantis")
	assert.Zero(t, unknown.Total)
	assert.Zero(t, unknown.WithIATA)
}

func TestGlobalStats(t *testing.T) {
	snap := testSnapshot(t)
	records := testAirports()

	st := snap.Stats()
	assert.Equal(t, len(records), st.Global.Total)
	assert.Equal(t, len(records)-1, st.Global.WithIATA) // one ICAO-only record
	assert.Equal(t, len(records), st.Global.WithICAO)

	// Per-country totals sum to the global total.
	sum := 0
	for country, agg := range st.Countries {
		assert.Equal(t, country, agg.Country)
		sum += agg.Total
	}
	assert.Equal(t, st.Global.Total, sum)

	// Per-country aggregates agree with the single-country operation.
	assert.Equal(t, snap.CountryStats("Japan"), st.Countries["Japan"])
}

func TestStatsIdempotent(t *testing.T) {
	snap := testSnapshot(t)

	assert.Equal(t, snap.Stats(), snap.Stats())
	assert.Equal(t, snap.CountryStats("France"), snap.CountryStats("France"))
}

func TestTopCountries(t *testing.T) {
	snap := testSnapshot(t)

	top := snap.TopCountries(3)
	require.Len(t, top, 3)
	assert.Equal(t, "United States", top[0].Country)
	assert.Equal(t, 4, top[0].Total)
	assert.Equal(t, "United Kingdom", top[1].Country)
	assert.Equal(t, 3, top[1].Total)
	assert.Equal(t, "Japan", top[2].Country)
	assert.Equal(t, 2, top[2].Total)

	all := snap.TopCountries(0)
	assert.Len(t, all, 9)
	for i := 1; i < len(all); i++ {
		if all[i].Total == all[i-1].Total {
			assert.Less(t, all[i-1].Country, all[i].Country,
				"equal counts must be ordered by country name")
		} else {
			assert.Less(t, all[i].Total, all[i-1].Total)
		}
	}
}

func TestExportCountry(t *testing.T) {
	snap := testSnapshot(t)

	var buf bytes.Buffer
	require.NoError(t, snap.ExportCountry(&buf, "japan"))

	var report struct {
		Country  string `json:"country"`
		Total    int    `json:"total_airports"`
		WithIATA int    `json:"with_iata"`
		Airports []struct {
			IATA    string `json:"iata"`
			Name    string `json:"name"`
			City    string `json:"city"`
			Geohash string `json:"geohash"`
		} `json:"airports"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, "Japan", report.Country)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.WithIATA)
	require.Len(t, report.Airports, 2)

	// Sorted by city then name; both are Tokyo, so name order decides.
	assert.Equal(t, "NRT", report.Airports[0].IATA)
	assert.Equal(t, "HND", report.Airports[1].IATA)
	for _, a := range report.Airports {
		assert.Len(t, a.Geohash, exportGeohashPrecision)
	}
}

func TestExportCountryUnknown(t *testing.T) {
	snap := testSnapshot(t)

	var buf bytes.Buffer
	err := snap.ExportCountry(&buf, "Atlantis")
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}
