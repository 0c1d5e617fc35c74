package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_AcceptedLayouts(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"date only", "2025-01-15"},
		{"datetime", "2025-01-15T10:30:00"},
		{"rfc3339", "2025-01-15T10:30:00Z"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.value)
			require.NoError(t, err)
			assert.Equal(t, 2025, got.Year())
			assert.Equal(t, time.January, got.Month())
			assert.Equal(t, 15, got.Day())
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, value := range []string{"", "not-a-date", "15/01/2025"} {
		_, err := ParseDate(value)
		assert.Error(t, err, "value %q", value)
	}
}

func TestDaysBetween(t *testing.T) {
	from, err := ParseDate("2025-01-01")
	require.NoError(t, err)
	to, err := ParseDate("2025-01-31")
	require.NoError(t, err)

	assert.Equal(t, 30, DaysBetween(from, to))
	assert.Equal(t, -30, DaysBetween(to, from))
	assert.Equal(t, 0, DaysBetween(from, from))
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 2, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetween(Midnight(from), Midnight(to)))
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{10.005, 10.01},
		{10.004, 10.0},
		{-10.005, -10.01},
		{2.675, 2.68},
		{0, 0},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.want, Round2(tc.in), 0.0001, "Round2(%v)", tc.in)
	}
}

func TestWithinTolerance(t *testing.T) {
	assert.True(t, WithinTolerance(100.00, 100.01, 0.01))
	assert.False(t, WithinTolerance(100.00, 100.02, 0.01))
	assert.True(t, WithinTolerance(100.0, 100.0, 0))
	assert.False(t, WithinTolerance(100.0, 100.001, 0))
}
