package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		in, out  time.Time
		expected int
	}{
		{"two nights", day("2024-01-01"), day("2024-01-03"), 2},
		{"one night", day("2024-02-28"), day("2024-02-29"), 1},
		{"same day", day("2024-01-01"), day("2024-01-01"), 0},
		{"reversed clamps to zero", day("2024-01-05"), day("2024-01-01"), 0},
		{"time of day ignored", time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC), time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Nights(tc.in, tc.out))
		})
	}
}

func TestParseStay(t *testing.T) {
	ci, co, err := parseStay("2024-01-01", "2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, day("2024-01-01"), ci)
	assert.Equal(t, day("2024-01-03"), co)

	_, _, err = parseStay("2024-01-03", "2024-01-03")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, _, err = parseStay("2024-01-05", "2024-01-03")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, _, err = parseStay("01/01/2024", "2024-01-03")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = parseStay("2024-01-01", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
