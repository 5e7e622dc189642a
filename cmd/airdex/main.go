// Command airdex is a thin command-line adapter over the airdex query
// engine. It loads an airport dataset, runs one query, and prints the
// result; all real work happens in the library.
//
// Usage:
//
//	airdex -data airports.dat lookup "kennedy"
//	airdex -data airports.dat distance JFK LHR
//	airdex -data airports.dat nearby 51.47 -0.45 100
//	airdex -data airports.dat stats "United States"
//	airdex -data airports.dat top 10
//	airdex -data airports.dat export Japan
//	airdex fetch airports.dat
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/airdex/airdex"
)

func main() {
	dataPath := flag.String("data", "airports.dat", "path to an OpenFlights .dat/.csv file or a .gob/.gob.bz2 record dump")
	verbose := flag.Bool("v", false, "log load details")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	cmd, args := args[0], args[1:]

	if cmd == "fetch" {
		target := *dataPath
		if len(args) > 0 {
			target = args[0]
		}
		if err := airdex.DownloadOpenFlights(airdex.OpenFlightsURL, target); err != nil {
			fatal(err)
		}
		fmt.Printf("downloaded %s\n", target)
		return
	}

	snap, err := loadSnapshot(*dataPath, *verbose)
	if err != nil {
		fatal(err)
	}

	switch cmd {
	case "lookup":
		if len(args) != 1 {
			fatalUsage("lookup <query>")
		}
		results, err := snap.Lookup(args[0], airdex.LookupOptions{FuzzyDistance: 1, Limit: 10})
		if err != nil {
			fatal(err)
		}
		if len(results) == 0 {
			fmt.Println("no matches")
			return
		}
		for _, r := range results {
			printAirport(r)
		}

	case "distance":
		if len(args) != 2 {
			fatalUsage("distance <code> <code>")
		}
		a, err := one(snap, args[0])
		if err != nil {
			fatal(err)
		}
		b, err := one(snap, args[1])
		if err != nil {
			fatal(err)
		}
		km, err := airdex.Distance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("%s -> %s: %.1f km (%.1f mi)\n", a.Name, b.Name, km, km*0.621371)

	case "nearby":
		if len(args) != 3 {
			fatalUsage("nearby <lat> <lon> <radiusKm>")
		}
		lat, err1 := strconv.ParseFloat(args[0], 64)
		lon, err2 := strconv.ParseFloat(args[1], 64)
		radius, err3 := strconv.ParseFloat(args[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			fatalUsage("nearby <lat> <lon> <radiusKm>")
		}
		results, err := snap.Nearby(lat, lon, radius, 0)
		if err != nil {
			fatal(err)
		}
		for _, nr := range results {
			fmt.Printf("%7.1f km  ", nr.DistanceKm)
			printAirport(nr.Record)
		}

	case "stats":
		if len(args) == 0 {
			st := snap.Stats()
			fmt.Printf("airports: %d  with IATA: %d  with ICAO: %d  countries: %d\n",
				st.Global.Total, st.Global.WithIATA, st.Global.WithICAO, len(st.Countries))
			return
		}
		agg := snap.CountryStats(strings.Join(args, " "))
		fmt.Printf("%s: %d airports (IATA %d, ICAO %d), bounds [%.2f..%.2f, %.2f..%.2f]\n",
			agg.Country, agg.Total, agg.WithIATA, agg.WithICAO,
			agg.Bounds.MinLat, agg.Bounds.MaxLat, agg.Bounds.MinLon, agg.Bounds.MaxLon)

	case "top":
		n := 10
		if len(args) > 0 {
			if v, err := strconv.Atoi(args[0]); err == nil {
				n = v
			}
		}
		for i, agg := range snap.TopCountries(n) {
			fmt.Printf("%2d. %-30s %4d airports\n", i+1, agg.Country, agg.Total)
		}

	case "export":
		if len(args) == 0 {
			fatalUsage("export <country>")
		}
		if err := snap.ExportCountry(os.Stdout, strings.Join(args, " ")); err != nil {
			fatal(err)
		}

	default:
		usage()
		os.Exit(2)
	}
}

// loadSnapshot reads the dataset file and loads it into a fresh store.
func loadSnapshot(path string, verbose bool) (*airdex.Snapshot, error) {
	var records []airdex.AirportRecord
	var err error
	if strings.HasSuffix(path, ".gob") || strings.HasSuffix(path, ".gob.bz2") {
		records, err = airdex.ReadRecordsFile(path)
	} else {
		var fh *os.File
		fh, err = os.Open(path)
		if err == nil {
			defer fh.Close()
			records, err = airdex.ParseOpenFlights(fh)
		}
	}
	if err != nil {
		return nil, err
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
	}

	store := airdex.NewStore(airdex.WithLogger(logger))
	rejected, err := store.Load(records)
	if err != nil {
		return nil, err
	}
	if verbose && len(rejected) > 0 {
		fmt.Fprintf(os.Stderr, "%d records rejected during load\n", len(rejected))
	}
	return store.Snapshot(), nil
}

// one resolves a query that should identify a single airport.
func one(snap *airdex.Snapshot, query string) (airdex.AirportRecord, error) {
	results, err := snap.Lookup(query, airdex.LookupOptions{Limit: 1})
	if err != nil {
		return airdex.AirportRecord{}, err
	}
	if len(results) == 0 {
		return airdex.AirportRecord{}, fmt.Errorf("airport %q not found", query)
	}
	return results[0], nil
}

func printAirport(r airdex.AirportRecord) {
	codes := r.IATA
	if r.ICAO != "" {
		if codes != "" {
			codes += "/"
		}
		codes += r.ICAO
	}
	fmt.Printf("%-9s %s - %s, %s (%.4f, %.4f)\n",
		codes, r.Name, r.City, r.Country, r.Latitude, r.Longitude)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: airdex [-data FILE] [-v] COMMAND [args]

Commands:
  lookup <query>              find airports by code, name or city
  distance <code> <code>      great-circle distance between two airports
  nearby <lat> <lon> <km>     airports within a radius, nearest first
  stats [country]             aggregate counts, globally or per country
  top [n]                     countries ranked by airport count
  export <country>            JSON report of a country's airports
  fetch [path]                download the OpenFlights dataset
`)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func fatalUsage(sig string) {
	fmt.Fprintf(os.Stderr, "Usage: airdex %s\n", sig)
	os.Exit(2)
}
