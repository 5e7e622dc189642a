package airdex

import (
	"compress/bzip2"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"strings"
)

// Dataset caching: a parsed record set can be saved as a gob dump so later
// processes skip re-parsing the source CSV. Only the records are
// serialized; indexes are cheap to rebuild and always derived fresh by
// Store.Load, so a cache can never carry a stale or corrupt index.

// WriteRecords gob-encodes a record slice to w.
func WriteRecords(w io.Writer, records []AirportRecord) error {
	if err := gob.NewEncoder(w).Encode(records); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	return nil
}

// ReadRecords decodes a record slice written by WriteRecords.
func ReadRecords(r io.Reader) ([]AirportRecord, error) {
	var records []AirportRecord
	if err := gob.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	return records, nil
}

// ReadRecordsFile loads a record dump from disk, decompressing
// transparently when the file carries a .bz2 suffix.
func ReadRecordsFile(path string) ([]AirportRecord, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fh.Close()

	var r io.Reader = fh
	if strings.HasSuffix(path, ".bz2") {
		r = bzip2.NewReader(fh)
	}
	return ReadRecords(r)
}

// WriteRecordsFile saves a record dump to disk.
func WriteRecordsFile(path string, records []AirportRecord) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteRecords(fh, records); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
