package airdex

import "math"

// earthRadiusKm is the Earth's mean radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// points, computed with the haversine formula. It is symmetric and returns
// 0 for identical points. Inputs outside [-90,90] latitude or [-180,180]
// longitude (or NaN/Inf) fail with *ErrInvalidCoordinate.
func Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	if !validCoord(lat1, lon1) {
		return 0, &ErrInvalidCoordinate{Latitude: lat1, Longitude: lon1}
	}
	if !validCoord(lat2, lon2) {
		return 0, &ErrInvalidCoordinate{Latitude: lat2, Longitude: lon2}
	}
	return haversineKm(lat1, lon1, lat2, lon2), nil
}

// haversineKm is the unvalidated haversine kernel. Callers are responsible
// for coordinate range checks.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const degToRad = math.Pi / 180

	phi1 := lat1 * degToRad
	phi2 := lat2 * degToRad
	dPhi := (lat2 - lat1) * degToRad
	dLambda := (lon2 - lon1) * degToRad

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	// Clamp against floating-point drift before the square root.
	a = math.Max(0, math.Min(1, a))
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// validCoord reports whether a latitude/longitude pair is in range and
// finite.
func validCoord(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
