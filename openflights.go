package airdex

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"
)

// OpenFlightsURL is the canonical location of the OpenFlights airport
// database (~7000 airports worldwide).
const OpenFlightsURL = "https://raw.githubusercontent.com/jpatokal/openflights/master/data/airports.dat"

// httpClient is a shared HTTP client with a bounded timeout for dataset
// downloads.
var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// ParseOpenFlights reads OpenFlights airports.dat CSV into airport
// records. Rows with too few columns or unparseable coordinates are
// skipped here; full validation (code shapes, coordinate ranges) happens
// again in Store.Load, which owns the reject reporting.
//
// airports.dat columns: id, name, city, country, IATA, ICAO, latitude,
// longitude, altitude(ft), tz offset, DST, tz name, type, source. Null
// fields hold the literal `\N`.
func ParseOpenFlights(r io.Reader) ([]AirportRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row length checked below
	cr.LazyQuotes = true

	var records []AirportRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading openflights csv: %w", err)
		}
		if len(row) < 9 {
			continue
		}

		lat, errLat := strconv.ParseFloat(row[6], 64)
		lon, errLon := strconv.ParseFloat(row[7], 64)
		if errLat != nil || errLon != nil {
			// Rather than defaulting to (0,0), which would plant the
			// record on Null Island, drop rows with bad coordinates.
			continue
		}
		elev, _ := strconv.Atoi(row[8]) // unknown elevation stays 0

		records = append(records, AirportRecord{
			IATA:      nullField(row[4]),
			ICAO:      nullField(row[5]),
			Name:      nullField(row[1]),
			City:      nullField(row[2]),
			Country:   nullField(row[3]),
			Latitude:  lat,
			Longitude: lon,
			Elevation: elev,
		})
	}
	return records, nil
}

// nullField maps OpenFlights' `\N` null marker to an empty string.
func nullField(s string) string {
	if s == `\N` {
		return ""
	}
	return s
}

// DownloadOpenFlights fetches the airports.dat file to a local path.
// Partial files are removed on failure so a retry starts clean.
func DownloadOpenFlights(url, path string) error {
	resp, err := httpClient.Get(url)
	if err != nil {
		return fmt.Errorf("HTTP GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP GET %s: status %d", url, resp.StatusCode)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}

	success := false
	defer func() {
		out.Close()
		if !success {
			os.Remove(path) // best-effort cleanup of partial file
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	// Explicit close catches flush errors before the file is trusted.
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", path, err)
	}
	success = true
	return nil
}
