package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestGenerateBetween(t *testing.T) {
	t.Run("three day gap over ten days", func(t *testing.T) {
		got := GenerateBetween(d(2024, 1, 1), d(2024, 1, 10), 3)
		want := []time.Time{d(2024, 1, 1), d(2024, 1, 4), d(2024, 1, 7), d(2024, 1, 10)}
		assert.Equal(t, want, got)
	})

	t.Run("stride past the end bound", func(t *testing.T) {
		got := GenerateBetween(d(2024, 1, 1), d(2024, 1, 9), 4)
		want := []time.Time{d(2024, 1, 1), d(2024, 1, 5), d(2024, 1, 9)}
		assert.Equal(t, want, got)

		got = GenerateBetween(d(2024, 1, 1), d(2024, 1, 8), 4)
		want = []time.Time{d(2024, 1, 1), d(2024, 1, 5)}
		assert.Equal(t, want, got)
	})

	t.Run("single day range", func(t *testing.T) {
		got := GenerateBetween(d(2024, 3, 15), d(2024, 3, 15), 7)
		assert.Equal(t, []time.Time{d(2024, 3, 15)}, got)
	})

	t.Run("bounds are normalized to midnight", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC)
		end := time.Date(2024, 1, 3, 6, 0, 0, 0, time.UTC)
		got := GenerateBetween(start, end, 1)
		require.Len(t, got, 3)
		for _, e := range got {
			assert.Equal(t, 0, e.Hour())
			assert.Equal(t, 0, e.Minute())
		}
	})

	t.Run("empty on bad input", func(t *testing.T) {
		assert.Empty(t, GenerateBetween(time.Time{}, d(2024, 1, 10), 3))
		assert.Empty(t, GenerateBetween(d(2024, 1, 1), time.Time{}, 3))
		assert.Empty(t, GenerateBetween(d(2024, 1, 1), d(2024, 1, 10), 0))
		assert.Empty(t, GenerateBetween(d(2024, 1, 1), d(2024, 1, 10), -2))
		assert.Empty(t, GenerateBetween(d(2024, 1, 10), d(2024, 1, 1), 3))
	})

	t.Run("properties hold over a range of gaps", func(t *testing.T) {
		start, end := d(2024, 2, 1), d(2024, 4, 30)
		for gap := 1; gap <= 21; gap++ {
			seq := GenerateBetween(start, end, gap)
			require.NotEmpty(t, seq)
			assert.Equal(t, start, seq[0])
			for i, e := range seq {
				assert.False(t, e.Before(start))
				assert.False(t, e.After(end))
				if i > 0 {
					assert.Equal(t, float64(gap*24), e.Sub(seq[i-1]).Hours())
				}
			}
		}
	})
}

func TestParseIn(t *testing.T) {
	got, ok := ParseIn("2024-06-01", time.UTC)
	require.True(t, ok)
	assert.Equal(t, d(2024, 6, 1), got)

	got, ok = ParseIn("2024-06-01T10:30:00Z", time.UTC)
	require.True(t, ok)
	assert.Equal(t, d(2024, 6, 1), Midnight(got))

	_, ok = ParseIn("not a date", time.UTC)
	assert.False(t, ok)
	_, ok = ParseIn("", time.UTC)
	assert.False(t, ok)
}

func TestParseInUsesLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// a plain date is that calendar day in loc, not in UTC
	got, ok := ParseIn("2024-04-10", ny)
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 4, 10, 0, 0, 0, 0, ny)))
	assert.Equal(t, ny, got.Location())

	// timestamps with an offset are shifted into loc before use
	got, ok = ParseIn("2024-04-10T23:30:00Z", ny)
	require.True(t, ok)
	assert.Equal(t, ny, got.Location())
	assert.True(t, Midnight(got).Equal(time.Date(2024, 4, 10, 0, 0, 0, 0, ny)))
}

func TestMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Colombo")
	require.NoError(t, err)
	in := time.Date(2024, 5, 20, 23, 59, 59, 1e8, loc)
	out := Midnight(in)
	assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, loc), out)
	assert.Equal(t, loc, out.Location())
}
