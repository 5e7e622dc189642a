package airdex

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeText lower-cases s, strips diacritics and punctuation, and
// collapses whitespace. "São Paulo–Guarulhos" becomes "sao paulo guarulhos".
//
// Diacritic removal decomposes to NFD, drops combining marks (Unicode
// category Mn) and recomposes. The transform chain is built per call:
// chained transformers carry internal buffers and are not safe to share
// across goroutines.
func normalizeText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		// Transform failure leaves diacritics in place; lower-casing and
		// punctuation removal still apply.
		stripped = s
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r) || unicode.IsPunct(r) || r == '|':
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// tokenize splits normalized text into index tokens.
func tokenize(s string) []string {
	return strings.Fields(normalizeText(s))
}
