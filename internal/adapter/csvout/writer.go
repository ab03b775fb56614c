// Package csvout builds and writes the three correlated outputs of a
// conversion run. Each row builder joins timestamps back through the
// per-second location index; a join miss produces empty location
// fields, never a dropped row.
package csvout

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/underrobyn/nsg-json-parser/internal/domain"
)

// Fixed header rows. The signalling "detail" column is reserved and
// always empty; downstream tooling expects the column to exist.
var (
	CoordinateHeader = []string{"timestamp", "Latitude", "Longitude", "Accuracy", "Speed"}
	SignallingHeader = []string{"category", "direction", "detail", "timestamp", "title", "latitude", "longitude"}
	EventHeader      = []string{"description", "timestamp", "title", "latitude", "longitude"}
)

// CoordinateRows returns one row per second that has a GPS fix, in
// chronological order.
func CoordinateRows(idx *domain.LocationIndex) [][]string {
	var rows [][]string
	idx.Each(func(key string, loc *domain.Location) {
		if loc == nil {
			return
		}
		rows = append(rows, []string{
			key,
			formatCoordinate(loc.Latitude),
			formatCoordinate(loc.Longitude),
			formatRounded(loc.Accuracy),
			formatRounded(loc.Speed),
		})
	})
	return rows
}

// SignallingRows returns one row per layer-3 message, joined to the
// location recorded during the same second.
func SignallingRows(messages []domain.Layer3Message, idx *domain.LocationIndex) [][]string {
	rows := make([][]string, 0, len(messages))
	for _, msg := range messages {
		key := domain.FormatTimeKey(msg.Timestamp)
		lat, lon := joinLocation(idx, key)
		rows = append(rows, []string{
			string(msg.Category),
			string(msg.Direction),
			"", // detail: reserved, never populated
			key,
			msg.Title,
			lat,
			lon,
		})
	}
	return rows
}

// EventRows returns one row per modem event, joined to the location
// recorded during the same second.
func EventRows(events []domain.ModemEvent, idx *domain.LocationIndex) [][]string {
	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		key := domain.FormatTimeKey(ev.Timestamp)
		lat, lon := joinLocation(idx, key)
		rows = append(rows, []string{
			ev.Description,
			key,
			ev.Title,
			lat,
			lon,
		})
	}
	return rows
}

// Write emits a header plus data rows as CSV. Returns the number of
// data rows written.
func Write(w io.Writer, header []string, rows [][]string) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return i, fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return len(rows), cw.Error()
}

// joinLocation resolves a time key to its latitude/longitude fields.
// Out-of-range keys and fix-less seconds both yield empty fields.
func joinLocation(idx *domain.LocationIndex, key string) (string, string) {
	loc := idx.Lookup(key)
	if loc == nil {
		return "", ""
	}
	return formatCoordinate(loc.Latitude), formatCoordinate(loc.Longitude)
}

// formatCoordinate renders a latitude/longitude at full precision, or
// an empty field when the fix omitted it.
func formatCoordinate(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// formatRounded renders accuracy/speed with exactly two decimals.
func formatRounded(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
