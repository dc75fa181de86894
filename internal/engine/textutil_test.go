package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitISODuration(t *testing.T) {
	tests := []struct {
		in      string
		h, m, s int
		ok      bool
	}{
		{"PT1H5M30S", 1, 5, 30, true},
		{"PT4M", 0, 4, 0, true},
		{"PT59S", 0, 0, 59, true},
		{"PT", 0, 0, 0, true},
		{"P1DT2H", 0, 0, 0, false},
		{"", 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, s, ok := SplitISODuration(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, []int{tt.h, tt.m, tt.s}, []int{h, m, s})
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[string]string{
		"PT1H5M30S": "1h 5m",
		"PT2H":      "2h 0m",
		"PT4M10S":   "4m 10s",
		"PT45S":     "45s",
		"PT":        "0s",
		"bogus":     "Unknown",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatDuration(in), "FormatDuration(%q)", in)
	}
}

func TestFormatCount(t *testing.T) {
	tests := map[uint64]string{
		0:         "0",
		999:       "999",
		1_000:     "1.0K",
		4_321:     "4.3K",
		999_999:   "1000.0K",
		1_234_567: "1.2M",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatCount(in), "FormatCount(%d)", in)
	}
}
