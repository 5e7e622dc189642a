// Package airdex is an in-memory query engine over a static catalog of
// airport records. It loads a validated snapshot once, builds exact-code,
// tokenized-text and spatial-grid indexes over it, and answers four kinds
// of read-only queries: identifier/name/city lookup, great-circle distance,
// radius-bounded nearby search, and country-level statistics.
//
// The engine never mutates a published snapshot; reloads build a fresh
// snapshot off to the side and publish it atomically.
package airdex

import (
	"fmt"
	"strings"
)

// AirportRecord is one validated airport. Records are immutable once loaded;
// the engine only ever hands out copies.
//
// Identity note: IATA and ICAO codes may be absent and, in degraded
// datasets, duplicated. Nothing downstream assumes either is unique.
type AirportRecord struct {
	IATA      string  // 3-letter IATA code, or "" if unassigned
	ICAO      string  // 4-letter ICAO code, or "" if unassigned
	Name      string  // Airport name, never empty after validation
	City      string  // Served city
	Country   string  // Country name or code, as supplied by the loader
	Latitude  float64 // Degrees, [-90, 90]
	Longitude float64 // Degrees, [-180, 180]
	Elevation int     // Feet above sea level; 0 when unknown
}

// Rejection records why one raw record was dropped during Load.
// Rejections are reported back to the caller and logged, never surfaced
// as query-time errors.
type Rejection struct {
	Index  int    // Position in the input slice
	Reason string // Human-readable reason
}

func (r Rejection) String() string {
	return fmt.Sprintf("record %d: %s", r.Index, r.Reason)
}

// validateRecord checks the AirportRecord invariants. It returns a reason
// string when the record must be dropped, or "" when it is acceptable.
func validateRecord(r AirportRecord) string {
	if strings.TrimSpace(r.IATA) == "" &&
		strings.TrimSpace(r.ICAO) == "" &&
		strings.TrimSpace(r.Name) == "" {
		return "no IATA, ICAO or name"
	}
	if r.Name == "" {
		return "empty name"
	}
	if iata := strings.TrimSpace(r.IATA); iata != "" && !isAlphaCode(iata, 3) {
		return fmt.Sprintf("malformed IATA code %q", r.IATA)
	}
	if icao := strings.TrimSpace(r.ICAO); icao != "" && !isAlphaCode(icao, 4) {
		return fmt.Sprintf("malformed ICAO code %q", r.ICAO)
	}
	if r.Latitude < -90 || r.Latitude > 90 || r.Latitude != r.Latitude {
		return fmt.Sprintf("latitude %v out of range", r.Latitude)
	}
	if r.Longitude < -180 || r.Longitude > 180 || r.Longitude != r.Longitude {
		return fmt.Sprintf("longitude %v out of range", r.Longitude)
	}
	return ""
}

// isAlphaCode reports whether s is exactly n ASCII letters.
func isAlphaCode(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}

// canonRecord normalizes a record's code fields in place: codes are
// upper-cased and trimmed so that index keys are uniform.
func canonRecord(r AirportRecord) AirportRecord {
	r.IATA = strings.ToUpper(strings.TrimSpace(r.IATA))
	r.ICAO = strings.ToUpper(strings.TrimSpace(r.ICAO))
	r.Name = strings.TrimSpace(r.Name)
	r.City = strings.TrimSpace(r.City)
	r.Country = strings.TrimSpace(r.Country)
	return r
}
