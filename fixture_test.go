package airdex

import "testing"

// testAirports is a small but varied dataset: duplicate cities, an
// ICAO-only field, diacritics, an airport near the antimeridian and one in
// the high Arctic.
func testAirports() []AirportRecord {
	return []AirportRecord{
		{IATA: "JFK", ICAO: "KJFK", Name: "John F Kennedy International Airport", City: "New York", Country: "United States", Latitude: 40.6398, Longitude: -73.7789, Elevation: 13},
		{IATA: "LGA", ICAO: "KLGA", Name: "LaGuardia Airport", City: "New York", Country: "United States", Latitude: 40.7772, Longitude: -73.8726, Elevation: 21},
		{IATA: "EWR", ICAO: "KEWR", Name: "Newark Liberty International Airport", City: "Newark", Country: "United States", Latitude: 40.6925, Longitude: -74.1687, Elevation: 18},
		{IATA: "LAX", ICAO: "KLAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States", Latitude: 33.9425, Longitude: -118.4081, Elevation: 125},
		{IATA: "LHR", ICAO: "EGLL", Name: "Heathrow Airport", City: "London", Country: "United Kingdom", Latitude: 51.4706, Longitude: -0.4619, Elevation: 83},
		{IATA: "LGW", ICAO: "EGKK", Name: "Gatwick Airport", City: "London", Country: "United Kingdom", Latitude: 51.1481, Longitude: -0.1903, Elevation: 202},
		{ICAO: "EGTK", Name: "Oxford Kidlington Airport", City: "Oxford", Country: "United Kingdom", Latitude: 51.8369, Longitude: -1.32, Elevation: 270},
		{IATA: "CDG", ICAO: "LFPG", Name: "Charles de Gaulle International Airport", City: "Paris", Country: "France", Latitude: 49.0128, Longitude: 2.55, Elevation: 392},
		{IATA: "GRU", ICAO: "SBGR", Name: "Guarulhos International Airport", City: "São Paulo", Country: "Brazil", Latitude: -23.4356, Longitude: -46.4731, Elevation: 2459},
		{IATA: "SYD", ICAO: "YSSY", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia", Latitude: -33.9461, Longitude: 151.1772, Elevation: 21},
		{IATA: "NRT", ICAO: "RJAA", Name: "Narita International Airport", City: "Tokyo", Country: "Japan", Latitude: 35.7647, Longitude: 140.3864, Elevation: 141},
		{IATA: "HND", ICAO: "RJTT", Name: "Tokyo Haneda International Airport", City: "Tokyo", Country: "Japan", Latitude: 35.5523, Longitude: 139.7797, Elevation: 35},
		{IATA: "DEL", ICAO: "VIDP", Name: "Indira Gandhi International Airport", City: "Delhi", Country: "India", Latitude: 28.5665, Longitude: 77.1031, Elevation: 777},
		{IATA: "NAN", ICAO: "NFFN", Name: "Nadi International Airport", City: "Nadi", Country: "Fiji", Latitude: -17.7554, Longitude: 177.4434, Elevation: 59},
		{IATA: "LYR", ICAO: "ENSB", Name: "Svalbard Airport Longyear", City: "Longyearbyen", Country: "Norway", Latitude: 78.2461, Longitude: 15.4656, Elevation: 88},
	}
}

// testSnapshot loads the fixture into a fresh store and returns the
// snapshot.
func testSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	store := NewStore()
	if _, err := store.Load(testAirports()); err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return store.Snapshot()
}
