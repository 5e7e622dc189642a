package airdex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"London", "london"},
		{"São Paulo", "sao paulo"},
		{"Zürich", "zurich"},
		{"Charles de Gaulle", "charles de gaulle"},
		{"O'Hare Int'l", "o hare int l"},
		{"  spaced   out  ", "spaced out"},
		{"Paris-Charles-de-Gaulle", "paris charles de gaulle"},
		{"MALMÖ", "malmo"},
		{"", ""},
		{"---", ""},
		{"A1", "a1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeText(tt.in), "normalizeText(%q)", tt.in)
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"john", "f", "kennedy"}, tokenize("John F. Kennedy"))
	assert.Empty(t, tokenize("  ..  "))
}

func TestCellFor(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     cellKey
	}{
		{40.6398, -73.7789, cellKey{40, -74}},
		{-23.4356, -46.4731, cellKey{-24, -47}},
		{0, 0, cellKey{0, 0}},
		{-0.5, -0.5, cellKey{-1, -1}},
		{51.0, 2.0, cellKey{51, 2}}, // boundary: floor of the raw value
		{90, 180, cellKey{90, -180}},
		{-90, -180, cellKey{-90, -180}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cellFor(tt.lat, tt.lon), "cellFor(%v, %v)", tt.lat, tt.lon)
	}
}

func TestWrapLonCell(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{179, 179},
		{180, -180},
		{181, -179},
		{-180, -180},
		{-181, 179},
		{540, -180},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, wrapLonCell(tt.in), "wrapLonCell(%d)", tt.in)
	}
}
