package airdex

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Field selects which record fields a Lookup may match against.
type Field int

const (
	FieldAny  Field = iota // All of the below
	FieldIATA              // Exact IATA code match
	FieldICAO              // Exact ICAO code match
	FieldCity              // City tokens
	FieldName              // Airport name tokens
)

// LookupOptions configures a Lookup call.
type LookupOptions struct {
	// Fields restricts matching to the given fields. Empty means FieldAny.
	Fields []Field

	// FuzzyDistance enables typo tolerance: a query token also matches an
	// index token within this Levenshtein edit distance. 0 disables it.
	// Values above the store's cap are clamped.
	FuzzyDistance int

	// Limit truncates the result to at most this many records. 0 means all.
	Limit int
}

// Match-quality weights for the ranking score. One query token contributes
// the best quality over all index tokens it matched; the record's score is
// the mean contribution across query tokens, so it also encodes the
// fraction of query tokens matched. Weights are tunable, not load-bearing:
// tests pin the relative order (full > prefix > substring > fuzzy), not
// the values.
const (
	qualityFull      = 1.0
	qualityPrefix    = 0.75
	qualitySubstring = 0.5
	qualityFuzzy     = 0.4
)

// fieldScope is the resolved form of LookupOptions.Fields.
type fieldScope struct {
	iata, icao, city, name bool
}

func resolveScope(fields []Field) fieldScope {
	if len(fields) == 0 {
		return fieldScope{iata: true, icao: true, city: true, name: true}
	}
	var sc fieldScope
	for _, f := range fields {
		switch f {
		case FieldAny:
			return fieldScope{iata: true, icao: true, city: true, name: true}
		case FieldIATA:
			sc.iata = true
		case FieldICAO:
			sc.icao = true
		case FieldCity:
			sc.city = true
		case FieldName:
			sc.name = true
		}
	}
	return sc
}

// Lookup resolves a query against the snapshot and returns matching
// records ordered best-first. Resolution order:
//
//  1. A query that normalizes to exactly 3 letters is tried as an IATA
//     code (case-insensitive) and returns immediately on a hit.
//  2. Exactly 4 letters is tried the same way as an ICAO code.
//  3. Otherwise the query is tokenized and matched against the name and
//     city token indexes, ranked by score, then shorter name, then IATA
//     ascending, then name ascending for deterministic output.
//
// No match yields an empty slice, not an error. Only an empty or oversized
// query fails, with *ErrInvalidQuery.
func (s *Snapshot) Lookup(query string, opts ...LookupOptions) ([]AirportRecord, error) {
	var opt LookupOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	n := len([]rune(query))
	if n > s.cfg.maxQueryLen {
		return nil, &ErrInvalidQuery{Length: n, Max: s.cfg.maxQueryLen}
	}
	if strings.TrimSpace(query) == "" {
		return nil, &ErrInvalidQuery{Length: n, Max: s.cfg.maxQueryLen}
	}
	norm := normalizeText(query)
	if norm == "" {
		// Nothing indexable left after normalization (punctuation only).
		return []AirportRecord{}, nil
	}
	if opt.FuzzyDistance > s.cfg.maxFuzzyDist {
		opt.FuzzyDistance = s.cfg.maxFuzzyDist
	}

	scope := resolveScope(opt.Fields)

	// Exact code fast paths.
	code := strings.ReplaceAll(norm, " ", "")
	if scope.iata && isAlphaCode(code, 3) {
		if hits, ok := s.idx.iata[strings.ToUpper(code)]; ok {
			return s.takeRecords(hits, opt.Limit), nil
		}
	}
	if scope.icao && isAlphaCode(code, 4) {
		if hits, ok := s.idx.icao[strings.ToUpper(code)]; ok {
			return s.takeRecords(hits, opt.Limit), nil
		}
	}

	if !scope.city && !scope.name {
		// Code-only scope and no exact hit.
		return []AirportRecord{}, nil
	}

	return s.fuzzyLookup(strings.Fields(norm), scope, opt), nil
}

// fuzzyLookup unions candidates from the token indexes and ranks them.
func (s *Snapshot) fuzzyLookup(queryTokens []string, scope fieldScope, opt LookupOptions) []AirportRecord {
	// perToken[rec][i] is the best quality query token i achieved for rec.
	perToken := make(map[int][]float64)

	collect := func(tokenIdx map[string][]int) {
		for key, postings := range tokenIdx {
			for i, qt := range queryTokens {
				q := matchQuality(qt, key, opt.FuzzyDistance)
				if q == 0 {
					continue
				}
				for _, rec := range postings {
					tq := perToken[rec]
					if tq == nil {
						tq = make([]float64, len(queryTokens))
						perToken[rec] = tq
					}
					if q > tq[i] {
						tq[i] = q
					}
				}
			}
		}
	}
	if scope.name {
		collect(s.idx.name)
	}
	if scope.city {
		collect(s.idx.city)
	}

	type scored struct {
		rec   int
		score float64
	}
	ranked := make([]scored, 0, len(perToken))
	for rec, tq := range perToken {
		sum := 0.0
		for _, q := range tq {
			sum += q
		}
		ranked = append(ranked, scored{rec: rec, score: sum / float64(len(queryTokens))})
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.score != b.score {
			return a.score > b.score
		}
		ra, rb := s.records[a.rec], s.records[b.rec]
		if len(ra.Name) != len(rb.Name) {
			return len(ra.Name) < len(rb.Name)
		}
		if ra.IATA != rb.IATA {
			return ra.IATA < rb.IATA
		}
		return ra.Name < rb.Name
	})

	n := len(ranked)
	if opt.Limit > 0 && opt.Limit < n {
		n = opt.Limit
	}
	out := make([]AirportRecord, n)
	for i := 0; i < n; i++ {
		out[i] = s.records[ranked[i].rec]
	}
	return out
}

// matchQuality grades how well a query token matches an index token.
// Returns 0 for no match.
func matchQuality(queryTok, indexTok string, fuzzyDist int) float64 {
	switch {
	case queryTok == indexTok:
		return qualityFull
	case strings.HasPrefix(indexTok, queryTok):
		return qualityPrefix
	case strings.Contains(indexTok, queryTok):
		return qualitySubstring
	}
	// Edit distance only pays off on tokens long enough to carry a typo.
	if fuzzyDist > 0 && len(queryTok) > 2 {
		if levenshtein.ComputeDistance(queryTok, indexTok) <= fuzzyDist {
			return qualityFuzzy
		}
	}
	return 0
}

// takeRecords copies out the records behind a posting list, respecting an
// optional limit. Exact-code hits are ordered IATA/ICAO ascending, then
// name, for determinism when a code is duplicated.
func (s *Snapshot) takeRecords(postings []int, limit int) []AirportRecord {
	out := make([]AirportRecord, 0, len(postings))
	for _, i := range postings {
		out = append(out, s.records[i])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IATA != out[j].IATA {
			return out[i].IATA < out[j].IATA
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}
