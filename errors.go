package airdex

import "fmt"

// ErrInvalidDataset indicates that a Load produced zero valid records.
// The load attempt is abandoned and any previously published snapshot
// remains active.
type ErrInvalidDataset struct {
	Supplied int // Records supplied to Load
	Rejected int // Records dropped by validation
}

func (e *ErrInvalidDataset) Error() string {
	return fmt.Sprintf("invalid dataset: %d of %d records rejected, none valid", e.Rejected, e.Supplied)
}

// ErrInvalidQuery indicates a blank or oversized query string. Length is
// the query's actual rune count, so a whitespace-only query carries a
// nonzero Length.
type ErrInvalidQuery struct {
	Length int // Query length in runes
	Max    int // Configured maximum
}

func (e *ErrInvalidQuery) Error() string {
	if e.Length == 0 {
		return "invalid query: empty"
	}
	if e.Length > e.Max {
		return fmt.Sprintf("invalid query: %d runes exceeds maximum %d", e.Length, e.Max)
	}
	return fmt.Sprintf("invalid query: blank (%d runes)", e.Length)
}

// ErrInvalidCoordinate indicates a latitude/longitude outside valid ranges
// (or NaN/Inf) passed to Distance or Nearby.
type ErrInvalidCoordinate struct {
	Latitude  float64
	Longitude float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: (%v, %v)", e.Latitude, e.Longitude)
}

// ErrInvalidRadius indicates a non-positive (or NaN) radius passed to Nearby.
type ErrInvalidRadius struct {
	RadiusKm float64
}

func (e *ErrInvalidRadius) Error() string {
	return fmt.Sprintf("invalid radius: %v km", e.RadiusKm)
}
