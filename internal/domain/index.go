package domain

import "time"

// TimeKeyLayout is the second-resolution correlation key format:
// day-of-month plus clock time, e.g. "26-14:03:59".
const TimeKeyLayout = "02-15:04:05"

// FormatTimeKey truncates a timestamp to the second and renders it as
// a time key.
func FormatTimeKey(t time.Time) string {
	return t.Format(TimeKeyLayout)
}

// LocationIndex maps every second of a capture to the GPS fix recorded
// during that second, or nil when no fix exists. The index is pre-filled
// for the whole [start, end] range so membership doubles as the
// in-range check for incoming records.
type LocationIndex struct {
	start   time.Time
	end     time.Time
	entries map[string]*Location
}

// NewLocationIndex builds an index covering [start, end] inclusive at
// one-second granularity. Sub-second precision on either bound is
// truncated.
func NewLocationIndex(start, end time.Time) *LocationIndex {
	idx := &LocationIndex{
		start:   start.Truncate(time.Second),
		end:     end.Truncate(time.Second),
		entries: make(map[string]*Location),
	}
	for t := idx.start; !t.After(idx.end); t = t.Add(time.Second) {
		idx.entries[FormatTimeKey(t)] = nil
	}
	return idx
}

// Has reports whether key falls inside the capture range.
func (idx *LocationIndex) Has(key string) bool {
	_, ok := idx.entries[key]
	return ok
}

// Put stores a fix for key. Keys outside the pre-built range are
// ignored; the walker has already rejected those records.
func (idx *LocationIndex) Put(key string, loc Location) {
	if _, ok := idx.entries[key]; !ok {
		return
	}
	idx.entries[key] = &loc
}

// Lookup returns the fix for key, or nil when the second has no fix or
// falls outside the range. A miss is an expected join result, not an
// error.
func (idx *LocationIndex) Lookup(key string) *Location {
	return idx.entries[key]
}

// Len returns the number of seconds covered by the index.
func (idx *LocationIndex) Len() int {
	return len(idx.entries)
}

// Each visits every second of the range in chronological order. Go map
// iteration is unordered, so the walk re-derives keys from the bounds.
func (idx *LocationIndex) Each(fn func(key string, loc *Location)) {
	for t := idx.start; !t.After(idx.end); t = t.Add(time.Second) {
		key := FormatTimeKey(t)
		fn(key, idx.entries[key])
	}
}
