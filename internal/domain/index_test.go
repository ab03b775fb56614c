package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	indexStart = time.Date(2024, 6, 26, 14, 0, 0, 0, time.UTC)
	indexEnd   = time.Date(2024, 6, 26, 14, 0, 59, 0, time.UTC)
)

func TestFormatTimeKey(t *testing.T) {
	assert.Equal(t, "26-14:00:05", FormatTimeKey(time.Date(2024, 6, 26, 14, 0, 5, 0, time.UTC)))

	t.Run("truncates sub-second precision", func(t *testing.T) {
		withMillis := time.Date(2024, 6, 26, 14, 0, 5, 999_000_000, time.UTC)
		assert.Equal(t, "26-14:00:05", FormatTimeKey(withMillis))
	})
}

func TestNewLocationIndex(t *testing.T) {
	t.Run("covers every second inclusive", func(t *testing.T) {
		idx := NewLocationIndex(indexStart, indexEnd)

		assert.Equal(t, 60, idx.Len())
		for ts := indexStart; !ts.After(indexEnd); ts = ts.Add(time.Second) {
			assert.True(t, idx.Has(FormatTimeKey(ts)), "missing second %v", ts)
		}
	})

	t.Run("pre-filled seconds resolve to nil", func(t *testing.T) {
		idx := NewLocationIndex(indexStart, indexEnd)
		assert.Nil(t, idx.Lookup(FormatTimeKey(indexStart)))
	})

	t.Run("excludes out-of-range seconds", func(t *testing.T) {
		idx := NewLocationIndex(indexStart, indexEnd)
		assert.False(t, idx.Has(FormatTimeKey(indexStart.Add(-time.Second))))
		assert.False(t, idx.Has(FormatTimeKey(indexEnd.Add(time.Second))))
	})

	t.Run("truncates sub-second bounds", func(t *testing.T) {
		idx := NewLocationIndex(indexStart.Add(400*time.Millisecond), indexEnd.Add(900*time.Millisecond))
		assert.Equal(t, 60, idx.Len())
		assert.True(t, idx.Has(FormatTimeKey(indexStart)))
		assert.True(t, idx.Has(FormatTimeKey(indexEnd)))
	})

	t.Run("single-second range", func(t *testing.T) {
		idx := NewLocationIndex(indexStart, indexStart)
		assert.Equal(t, 1, idx.Len())
	})
}

func TestLocationIndexPutLookup(t *testing.T) {
	lat, lon := 53.41, -2.99

	t.Run("stores and returns a fix", func(t *testing.T) {
		idx := NewLocationIndex(indexStart, indexEnd)
		key := FormatTimeKey(indexStart.Add(5 * time.Second))

		idx.Put(key, Location{Latitude: &lat, Longitude: &lon, Accuracy: 3.5, Speed: 1.25})

		loc := idx.Lookup(key)
		require.NotNil(t, loc)
		assert.Equal(t, lat, *loc.Latitude)
		assert.Equal(t, lon, *loc.Longitude)
		assert.Equal(t, 3.5, loc.Accuracy)
	})

	t.Run("ignores out-of-range key", func(t *testing.T) {
		idx := NewLocationIndex(indexStart, indexEnd)
		key := FormatTimeKey(indexEnd.Add(time.Minute))

		idx.Put(key, Location{Latitude: &lat})

		assert.Equal(t, 60, idx.Len())
		assert.Nil(t, idx.Lookup(key))
	})

	t.Run("later fix for the same second wins", func(t *testing.T) {
		idx := NewLocationIndex(indexStart, indexEnd)
		key := FormatTimeKey(indexStart)
		other := 51.5

		idx.Put(key, Location{Latitude: &lat})
		idx.Put(key, Location{Latitude: &other})

		require.NotNil(t, idx.Lookup(key))
		assert.Equal(t, other, *idx.Lookup(key).Latitude)
	})
}

func TestLocationIndexEach(t *testing.T) {
	idx := NewLocationIndex(indexStart, indexEnd)
	lat := 53.41
	idx.Put(FormatTimeKey(indexStart.Add(10*time.Second)), Location{Latitude: &lat})

	var keys []string
	fixes := 0
	idx.Each(func(key string, loc *Location) {
		keys = append(keys, key)
		if loc != nil {
			fixes++
		}
	})

	require.Len(t, keys, 60)
	assert.Equal(t, 1, fixes)

	// Chronological order, first to last second.
	assert.Equal(t, FormatTimeKey(indexStart), keys[0])
	assert.Equal(t, FormatTimeKey(indexEnd), keys[59])
	assert.IsIncreasing(t, keys)
}
