package airdex

import "math"

// cellKey identifies one 1°x1° cell of the spatial grid.
// Cells are keyed by the floor of the raw coordinates, so a record sitting
// exactly on a boundary deterministically belongs to the floor cell.
type cellKey struct {
	Lat int
	Lon int
}

// cellFor returns the grid cell containing the given coordinates.
// Longitude 180 is folded onto -180 so the antimeridian has a single
// column of cells.
func cellFor(lat, lon float64) cellKey {
	k := cellKey{Lat: int(math.Floor(lat)), Lon: int(math.Floor(lon))}
	if k.Lon == 180 {
		k.Lon = -180
	}
	return k
}

// indexes holds every derived lookup structure for one snapshot. All slices
// hold positions into the snapshot's record slice. Indexes are built in
// full at load time and never mutated afterwards.
type indexes struct {
	iata map[string][]int // IATA code -> records (duplicate-tolerant)
	icao map[string][]int // ICAO code -> records
	name map[string][]int // normalized name token -> records
	city map[string][]int // normalized city token -> records
	grid map[cellKey][]int
}

// buildIndexes derives all lookup structures from a validated record slice.
// Pure: it reads the records and touches nothing else.
func buildIndexes(records []AirportRecord) *indexes {
	idx := &indexes{
		iata: make(map[string][]int),
		icao: make(map[string][]int),
		name: make(map[string][]int),
		city: make(map[string][]int),
		grid: make(map[cellKey][]int),
	}

	for i, rec := range records {
		if rec.IATA != "" {
			idx.iata[rec.IATA] = append(idx.iata[rec.IATA], i)
		}
		if rec.ICAO != "" {
			idx.icao[rec.ICAO] = append(idx.icao[rec.ICAO], i)
		}
		for _, tok := range tokenize(rec.Name) {
			idx.name[tok] = appendUnique(idx.name[tok], i)
		}
		for _, tok := range tokenize(rec.City) {
			idx.city[tok] = appendUnique(idx.city[tok], i)
		}
		cell := cellFor(rec.Latitude, rec.Longitude)
		idx.grid[cell] = append(idx.grid[cell], i)
	}
	return idx
}

// appendUnique appends i to a posting list unless it is already the last
// element. Records are indexed one at a time, so a repeated token within
// one record only ever shows up as a trailing duplicate.
func appendUnique(list []int, i int) []int {
	if n := len(list); n > 0 && list[n-1] == i {
		return list
	}
	return append(list, i)
}
