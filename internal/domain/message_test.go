package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
	}{
		{"lte", "lte", CategoryLTE},
		{"uppercase", "LTE", CategoryLTE},
		{"mixed case", "Wcdma", CategoryWCDMA},
		{"gsm", "gsm", CategoryGSM},
		{"nr", "nr", CategoryNR},
		{"emm", "emm", CategoryEMM},
		{"esm", "esm", CategoryESM},
		{"padded", "  lte  ", CategoryLTE},
		{"empty", "", CategoryUnknown},
		{"unrecognized", "5g-sa", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCategory(tt.input))
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Direction
	}{
		{"up", "up", DirectionUp},
		{"down", "down", DirectionDown},
		{"uppercase", "UP", DirectionUp},
		{"empty", "", DirectionUnknown},
		{"unrecognized", "sideways", DirectionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDirection(tt.input))
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"rfc3339", "2024-06-26T14:00:05Z", time.Date(2024, 6, 26, 14, 0, 5, 0, time.UTC)},
		{"fractional", "2024-06-26T14:00:05.250Z", time.Date(2024, 6, 26, 14, 0, 5, 250_000_000, time.UTC)},
		{"no zone", "2024-06-26T14:00:05", time.Date(2024, 6, 26, 14, 0, 5, 0, time.UTC)},
		{"space separator", "2024-06-26 14:00:05.1", time.Date(2024, 6, 26, 14, 0, 5, 100_000_000, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %v, want %v", got, tt.expected)
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := ParseTimestamp("")
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseTimestamp("yesterday at noon")
		require.Error(t, err)
	})
}

func TestParseLayer3Message(t *testing.T) {
	t.Run("full message", func(t *testing.T) {
		raw := RawMessage{
			Category:           "LTE",
			Direction:          "down",
			Detail:             []byte(`{"rrc":"setup"}`),
			PCAPPacket:         "0a0b0c",
			EquipmentTimestamp: "2024-06-26T14:00:05Z",
			Title:              "RRC Connection Setup",
		}

		msg, err := ParseLayer3Message(raw)
		require.NoError(t, err)
		assert.Equal(t, CategoryLTE, msg.Category)
		assert.Equal(t, DirectionDown, msg.Direction)
		assert.Equal(t, "RRC Connection Setup", msg.Title)
		assert.Equal(t, "0a0b0c", msg.PCAP)
		assert.JSONEq(t, `{"rrc":"setup"}`, string(msg.Detail))
		assert.Equal(t, time.Date(2024, 6, 26, 14, 0, 5, 0, time.UTC), msg.Timestamp.UTC())
	})

	t.Run("prefers equipment timestamp", func(t *testing.T) {
		raw := RawMessage{
			Category:           "emm",
			EquipmentTimestamp: "2024-06-26T14:00:05Z",
			Timestamp:          "2024-06-26T14:00:09Z",
		}

		msg, err := ParseLayer3Message(raw)
		require.NoError(t, err)
		assert.Equal(t, 5, msg.Timestamp.Second())
	})

	t.Run("falls back to handset timestamp", func(t *testing.T) {
		raw := RawMessage{
			Category:  "emm",
			Timestamp: "2024-06-26T14:00:09Z",
		}

		msg, err := ParseLayer3Message(raw)
		require.NoError(t, err)
		assert.Equal(t, 9, msg.Timestamp.Second())
	})

	t.Run("no timestamp", func(t *testing.T) {
		_, err := ParseLayer3Message(RawMessage{Category: "lte"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse message timestamp")
	})
}

func TestParseModemEvent(t *testing.T) {
	t.Run("full event", func(t *testing.T) {
		raw := RawEvent{
			Description: "Serving cell changed",
			Timestamp:   "2024-06-26T14:01:00Z",
			Title:       "Cell Reselection",
		}

		ev, err := ParseModemEvent(raw)
		require.NoError(t, err)
		assert.Equal(t, "Serving cell changed", ev.Description)
		assert.Equal(t, "Cell Reselection", ev.Title)
		assert.Equal(t, time.Date(2024, 6, 26, 14, 1, 0, 0, time.UTC), ev.Timestamp.UTC())
	})

	t.Run("prefers handset timestamp", func(t *testing.T) {
		raw := RawEvent{
			Timestamp:          "2024-06-26T14:00:09Z",
			EquipmentTimestamp: "2024-06-26T14:00:05Z",
		}

		ev, err := ParseModemEvent(raw)
		require.NoError(t, err)
		assert.Equal(t, 9, ev.Timestamp.Second())
	})

	t.Run("falls back to equipment timestamp", func(t *testing.T) {
		raw := RawEvent{EquipmentTimestamp: "2024-06-26T14:00:05Z"}

		ev, err := ParseModemEvent(raw)
		require.NoError(t, err)
		assert.Equal(t, 5, ev.Timestamp.Second())
	})

	t.Run("no timestamp", func(t *testing.T) {
		_, err := ParseModemEvent(RawEvent{Title: "Handover"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse event timestamp")
	})
}

func TestRecordTimestamp(t *testing.T) {
	t.Run("prefers handset timestamp", func(t *testing.T) {
		rec := RawRecord{
			Timestamp:          "2024-06-26T14:00:09Z",
			EquipmentTimestamp: "2024-06-26T14:00:05Z",
		}

		ts, err := rec.RecordTimestamp()
		require.NoError(t, err)
		assert.Equal(t, 9, ts.Second())
	})

	t.Run("falls back to equipment timestamp", func(t *testing.T) {
		rec := RawRecord{EquipmentTimestamp: "2024-06-26T14:00:05Z"}

		ts, err := rec.RecordTimestamp()
		require.NoError(t, err)
		assert.Equal(t, 5, ts.Second())
	})

	t.Run("no timestamp", func(t *testing.T) {
		_, err := RawRecord{}.RecordTimestamp()
		require.Error(t, err)
	})
}
