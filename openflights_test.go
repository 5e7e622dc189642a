package airdex

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOpenFlights = `1,"John F Kennedy Intl","New York","United States","JFK","KJFK",40.639751,-73.778925,13,-5,"A","America/New_York","airport","OurAirports"
2,"Goroka Airport","Goroka","Papua New Guinea","GKA","AYGA",-6.081689834590001,145.391998291,5282,10,"U","Pacific/Port_Moresby","airport","OurAirports"
3,"Strip With No Codes","Somewhere","Nowhere",\N,\N,12.5,13.5,100,0,"U","UTC","airport","OurAirports"
4,"Bad Coordinates","Broken","Nowhere","XXX","XXXX",not-a-number,0,0,0,"U","UTC","airport","OurAirports"
`

func TestParseOpenFlights(t *testing.T) {
	records, err := ParseOpenFlights(strings.NewReader(sampleOpenFlights))
	require.NoError(t, err)
	require.Len(t, records, 3) // the bad-coordinate row is dropped

	jfk := records[0]
	assert.Equal(t, "JFK", jfk.IATA)
	assert.Equal(t, "KJFK", jfk.ICAO)
	assert.Equal(t, "John F Kennedy Intl", jfk.Name)
	assert.Equal(t, "New York", jfk.City)
	assert.Equal(t, "United States", jfk.Country)
	assert.InDelta(t, 40.639751, jfk.Latitude, 1e-9)
	assert.InDelta(t, -73.778925, jfk.Longitude, 1e-9)
	assert.Equal(t, 13, jfk.Elevation)

	// \N nulls become empty strings.
	assert.Empty(t, records[2].IATA)
	assert.Empty(t, records[2].ICAO)
	assert.Equal(t, "Strip With No Codes", records[2].Name)
}

func TestParseOpenFlightsIntoStore(t *testing.T) {
	records, err := ParseOpenFlights(strings.NewReader(sampleOpenFlights))
	require.NoError(t, err)

	store := NewStore()
	rejected, err := store.Load(records)
	require.NoError(t, err)
	assert.Empty(t, rejected)

	results, err := store.Snapshot().Lookup("GKA")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Goroka Airport", results[0].Name)
}

func TestRecordDumpRoundTrip(t *testing.T) {
	records := testAirports()

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, records))

	got, err := ReadRecords(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}
