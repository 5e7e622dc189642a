package airdex

import (
	"math"
	"sort"
)

// Kilometers per degree of latitude at the equator, the minimum along a
// meridian. Both cell spans divide by this minimum: on the 6371 km sphere
// one degree is about 111.195 km, so dividing by the smaller constant
// rounds every span outward and the derived cell set stays a superset of
// the true radius.
const kmPerDegreeLat = 110.574

// NearbyResult pairs a record with its exact great-circle distance from
// the query point.
type NearbyResult struct {
	Record     AirportRecord
	DistanceKm float64
}

// Nearby returns every record within radiusKm of the reference point,
// sorted ascending by distance with ties broken by IATA code then name.
// limit > 0 truncates the result after sorting; limit <= 0 returns all.
//
// Candidates come from the spatial grid only: the cell span is computed
// conservatively from the radius (widening longitude by cos(lat) and
// covering the poles and the antimeridian), so no full scan is needed and
// no in-radius record is ever missed. Exact haversine filtering removes
// the false positives the grid admits.
//
// Fails with *ErrInvalidCoordinate for an out-of-range reference point and
// *ErrInvalidRadius for a non-positive radius.
func (s *Snapshot) Nearby(lat, lon, radiusKm float64, limit int) ([]NearbyResult, error) {
	if !validCoord(lat, lon) {
		return nil, &ErrInvalidCoordinate{Latitude: lat, Longitude: lon}
	}
	if math.IsNaN(radiusKm) || radiusKm <= 0 {
		return nil, &ErrInvalidRadius{RadiusKm: radiusKm}
	}

	results := []NearbyResult{}
	for _, cell := range coveringCells(lat, lon, radiusKm) {
		for _, i := range s.idx.grid[cell] {
			rec := s.records[i]
			d := haversineKm(lat, lon, rec.Latitude, rec.Longitude)
			if d <= radiusKm {
				results = append(results, NearbyResult{Record: rec, DistanceKm: d})
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		if results[i].Record.IATA != results[j].Record.IATA {
			return results[i].Record.IATA < results[j].Record.IATA
		}
		return results[i].Record.Name < results[j].Record.Name
	})

	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results, nil
}

// coveringCells lists every grid cell that could contain a point within
// radiusKm of (lat, lon). Both spans divide by the conservative
// km-per-degree minimum, with the longitude span additionally divided by
// cos of the band's highest absolute latitude, so the returned set is
// always a superset of the true circle.
func coveringCells(lat, lon, radiusKm float64) []cellKey {
	latSpan := radiusKm / kmPerDegreeLat

	latLo := math.Max(-90, lat-latSpan)
	latHi := math.Min(90, lat+latSpan)

	// Widest latitude in the band has the most longitude compression.
	maxAbsLat := math.Max(math.Abs(latLo), math.Abs(latHi))
	cosLat := math.Cos(maxAbsLat * math.Pi / 180)

	fullRing := false
	var lonSpan float64
	if latLo <= -90+1e-9 || latHi >= 90-1e-9 || cosLat < 1e-6 {
		// Band touches a pole: every longitude is within reach.
		fullRing = true
	} else {
		lonSpan = radiusKm / (kmPerDegreeLat * cosLat)
		if lonSpan >= 180 {
			fullRing = true
		}
	}

	cellLatLo := int(math.Floor(latLo))
	cellLatHi := int(math.Floor(latHi)) // latHi is already clamped to 90

	var cells []cellKey
	seen := make(map[cellKey]bool)
	add := func(k cellKey) {
		if !seen[k] {
			seen[k] = true
			cells = append(cells, k)
		}
	}

	for clat := cellLatLo; clat <= cellLatHi; clat++ {
		if fullRing {
			for clon := -180; clon < 180; clon++ {
				add(cellKey{Lat: clat, Lon: clon})
			}
			continue
		}
		lo := int(math.Floor(lon - lonSpan))
		hi := int(math.Floor(lon + lonSpan))
		for clon := lo; clon <= hi; clon++ {
			add(cellKey{Lat: clat, Lon: wrapLonCell(clon)})
		}
	}
	return cells
}

// wrapLonCell maps an unbounded integer longitude cell onto [-180, 180),
// wrapping across the antimeridian.
func wrapLonCell(c int) int {
	c = ((c+180)%360 + 360) % 360
	return c - 180
}
