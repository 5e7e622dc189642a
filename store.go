package airdex

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Default query limits. Both can be overridden per Store with options.
const (
	// defaultMaxQueryLen bounds lookup input length (in runes) so that
	// edit-distance scans stay cheap regardless of caller input.
	defaultMaxQueryLen = 256

	// defaultMaxFuzzyDistance caps LookupOptions.FuzzyDistance; higher
	// values degrade into scanning the whole token index for junk matches.
	defaultMaxFuzzyDistance = 3
)

// config carries Store settings down into each snapshot.
type config struct {
	logger       *zap.Logger
	maxQueryLen  int
	maxFuzzyDist int
}

// Option is a functional option for configuring a Store.
type Option func(*config)

// WithLogger sets the logger used for load-time reporting (rejected
// records, load summaries). Queries never log.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxQueryLength overrides the maximum accepted lookup query length.
func WithMaxQueryLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxQueryLen = n
		}
	}
}

// WithMaxFuzzyDistance overrides the cap on LookupOptions.FuzzyDistance.
func WithMaxFuzzyDistance(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxFuzzyDist = n
		}
	}
}

// Store owns the active dataset snapshot. Any number of goroutines may
// query the snapshot returned by Snapshot concurrently; Load publishes a
// replacement atomically, so in-flight queries see either the old or the
// new snapshot in full, never a mix.
type Store struct {
	cfg    config
	loadMu sync.Mutex // serializes concurrent Load calls
	active atomic.Pointer[Snapshot]
}

// Snapshot is one immutable, fully indexed view of the dataset. A Snapshot
// and everything reachable from it is read-only after construction, so it
// is safe for unlimited concurrent use.
type Snapshot struct {
	records []AirportRecord
	idx     *indexes
	cfg     config
}

// NewStore creates an empty Store. Snapshot returns nil until the first
// successful Load.
func NewStore(opts ...Option) *Store {
	cfg := config{
		logger:       zap.NewNop(),
		maxQueryLen:  defaultMaxQueryLen,
		maxFuzzyDist: defaultMaxFuzzyDistance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store{cfg: cfg}
}

// Load validates records, builds a fresh snapshot with all indexes, and
// publishes it. Invalid records are dropped individually and returned as
// Rejections; the load only fails, with *ErrInvalidDataset, when no
// valid record remains, in which case any previous snapshot stays active.
//
// Index construction happens off to the side: readers never observe a
// half-built snapshot.
func (s *Store) Load(records []AirportRecord) ([]Rejection, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	valid := make([]AirportRecord, 0, len(records))
	var rejected []Rejection
	for i, raw := range records {
		rec := canonRecord(raw)
		if reason := validateRecord(rec); reason != "" {
			rejected = append(rejected, Rejection{Index: i, Reason: reason})
			s.cfg.logger.Debug("record rejected",
				zap.Int("index", i),
				zap.String("reason", reason))
			continue
		}
		valid = append(valid, rec)
	}

	if len(valid) == 0 {
		err := &ErrInvalidDataset{Supplied: len(records), Rejected: len(rejected)}
		s.cfg.logger.Warn("dataset load failed", zap.Error(err))
		return rejected, err
	}

	snap := &Snapshot{
		records: valid,
		idx:     buildIndexes(valid),
		cfg:     s.cfg,
	}
	s.active.Store(snap)

	s.cfg.logger.Info("dataset loaded",
		zap.Int("records", len(valid)),
		zap.Int("rejected", len(rejected)),
		zap.Int("iata_codes", len(snap.idx.iata)),
		zap.Int("icao_codes", len(snap.idx.icao)),
		zap.Int("grid_cells", len(snap.idx.grid)))
	return rejected, nil
}

// Snapshot returns a read-only handle to the currently active snapshot,
// or nil if nothing has been loaded yet. The handle remains fully valid
// after later reloads; it just stops being the active one.
func (s *Store) Snapshot() *Snapshot {
	return s.active.Load()
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.records)
}

// Records returns a copy of the snapshot's record slice.
func (s *Snapshot) Records() []AirportRecord {
	out := make([]AirportRecord, len(s.records))
	copy(out, s.records)
	return out
}
