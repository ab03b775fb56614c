package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// RawDump mirrors the top-level structure of an NSG JSON export.
type RawDump struct {
	Device    string      `json:"device"`
	StartTime string      `json:"starttime"`
	EndTime   string      `json:"endtime"`
	Data      []RawRecord `json:"data"`
}

// RawRecord is one entry of the "data" array. Every field is optional
// in the export; a record may carry a location, messages, events, any
// combination, or nothing useful at all.
type RawRecord struct {
	Timestamp          string       `json:"Timestamp"`
	EquipmentTimestamp string       `json:"EquipmentTimestamp"`
	Location           *RawLocation `json:"Location"`
	Messages           []RawMessage `json:"messages"`
	Events             []RawEvent   `json:"events"`
}

// RawLocation is a GPS fix as NSG exports it. Latitude and longitude
// are pointers because a fix without coordinates is valid and must
// produce empty output fields rather than 0,0.
type RawLocation struct {
	Latitude  *float64 `json:"Latitude"`
	Longitude *float64 `json:"Longitude"`
	Accuracy  float64  `json:"Accuracy"`
	Speed     float64  `json:"Speed"`
}

// RawMessage is a layer-3 signalling message as NSG exports it.
type RawMessage struct {
	Category           string          `json:"Category"`
	Direction          string          `json:"Direction"`
	Detail             json.RawMessage `json:"Detail"`
	PCAPPacket         string          `json:"PCAPPacket"`
	EquipmentTimestamp string          `json:"EquipmentTimestamp"`
	Timestamp          string          `json:"Timestamp"`
	Title              string          `json:"Title"`
}

// RawEvent is a modem event as NSG exports it.
type RawEvent struct {
	Description        string `json:"Description"`
	Timestamp          string `json:"Timestamp"`
	EquipmentTimestamp string `json:"EquipmentTimestamp"`
	Title              string `json:"Title"`
}

// Timestamp layouts seen across NSG releases: RFC 3339 with or without
// fractional seconds, and the space-separated local-time variant.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp parses an NSG ISO-8601 timestamp string.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// RecordTimestamp resolves a record's effective timestamp, preferring
// the handset clock over the modem clock.
func (r RawRecord) RecordTimestamp() (time.Time, error) {
	if r.Timestamp != "" {
		return ParseTimestamp(r.Timestamp)
	}
	if r.EquipmentTimestamp != "" {
		return ParseTimestamp(r.EquipmentTimestamp)
	}
	return time.Time{}, fmt.Errorf("record has no timestamp")
}
