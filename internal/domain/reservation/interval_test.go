//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start string, duration time.Duration) reservation.Interval {
	t.Helper()
	st, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	ivl, err := reservation.NewInterval(st, duration)
	require.NoError(t, err)
	return ivl
}

func TestNewInterval(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		ivl, err := reservation.NewInterval(start, 90*time.Minute)
		require.NoError(t, err)

		assert.Equal(t, start, ivl.Start())
		assert.Equal(t, start.Add(90*time.Minute), ivl.End())
		assert.Equal(t, 90, ivl.DurationMinutes())
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		loc := time.FixedZone("JST", 9*3600)
		start := time.Date(2026, 9, 1, 21, 0, 0, 0, loc)
		ivl, err := reservation.NewInterval(start, time.Hour)
		require.NoError(t, err)

		assert.Equal(t, time.UTC, ivl.Start().Location())
		assert.Equal(t, 12, ivl.Start().Hour())
	})

	t.Run("rejects zero duration", func(t *testing.T) {
		_, err := reservation.NewInterval(time.Now(), 0)
		assert.ErrorIs(t, err, reservation.ErrNonPositiveDuration)
	})

	t.Run("rejects negative duration", func(t *testing.T) {
		_, err := reservation.NewInterval(time.Now(), -time.Minute)
		assert.ErrorIs(t, err, reservation.ErrNonPositiveDuration)
	})
}

func TestInterval_Overlaps(t *testing.T) {
	base := mustInterval(t, "2026-09-01T12:00:00Z", 90*time.Minute)

	testCases := []struct {
		name     string
		other    reservation.Interval
		overlaps bool
	}{
		{
			name:     "identical interval",
			other:    mustInterval(t, "2026-09-01T12:00:00Z", 90*time.Minute),
			overlaps: true,
		},
		{
			name:     "partial overlap at tail",
			other:    mustInterval(t, "2026-09-01T13:00:00Z", 90*time.Minute),
			overlaps: true,
		},
		{
			name:     "partial overlap at head",
			other:    mustInterval(t, "2026-09-01T11:00:00Z", 90*time.Minute),
			overlaps: true,
		},
		{
			name:     "contained within",
			other:    mustInterval(t, "2026-09-01T12:30:00Z", 30*time.Minute),
			overlaps: true,
		},
		{
			name:     "contains the other",
			other:    mustInterval(t, "2026-09-01T11:00:00Z", 4*time.Hour),
			overlaps: true,
		},
		{
			name:     "back to back after: shared boundary does not overlap",
			other:    mustInterval(t, "2026-09-01T13:30:00Z", 90*time.Minute),
			overlaps: false,
		},
		{
			name:     "back to back before: shared boundary does not overlap",
			other:    mustInterval(t, "2026-09-01T10:30:00Z", 90*time.Minute),
			overlaps: false,
		},
		{
			name:     "fully disjoint",
			other:    mustInterval(t, "2026-09-01T18:00:00Z", time.Hour),
			overlaps: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, base.Overlaps(tc.other))
			// Overlap is symmetric
			assert.Equal(t, tc.overlaps, tc.other.Overlaps(base))
		})
	}
}
