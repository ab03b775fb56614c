package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Category is the protocol family of a layer-3 signalling message.
type Category string

const (
	CategoryUnknown Category = "unknown"
	CategoryGSM     Category = "gsm"
	CategoryWCDMA   Category = "wcdma"
	CategoryLTE     Category = "lte"
	CategoryNR      Category = "nr"
	CategoryESM     Category = "esm"
	CategoryEMM     Category = "emm"
)

// ParseCategory normalizes an NSG category string. Unrecognized values
// map to CategoryUnknown so new NSG releases degrade gracefully.
func ParseCategory(s string) Category {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryGSM, CategoryWCDMA, CategoryLTE, CategoryNR, CategoryESM, CategoryEMM:
		return c
	default:
		return CategoryUnknown
	}
}

// Direction indicates whether a message travelled uplink or downlink.
type Direction string

const (
	DirectionUnknown Direction = "unknown"
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
)

// ParseDirection normalizes an NSG direction string.
func ParseDirection(s string) Direction {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case DirectionUp, DirectionDown:
		return d
	default:
		return DirectionUnknown
	}
}

// Layer3Message is a parsed signalling message.
type Layer3Message struct {
	Category  Category
	Direction Direction
	Detail    json.RawMessage
	PCAP      string
	Timestamp time.Time
	Title     string
}

// ModemEvent is a parsed modem event.
type ModemEvent struct {
	Description string
	Timestamp   time.Time
	Title       string
}

// ParseLayer3Message converts a raw message, preferring the modem clock
// ("EquipmentTimestamp") over the handset clock.
func ParseLayer3Message(raw RawMessage) (Layer3Message, error) {
	ts := raw.EquipmentTimestamp
	if ts == "" {
		ts = raw.Timestamp
	}
	t, err := ParseTimestamp(ts)
	if err != nil {
		return Layer3Message{}, fmt.Errorf("parse message timestamp: %w", err)
	}
	return Layer3Message{
		Category:  ParseCategory(raw.Category),
		Direction: ParseDirection(raw.Direction),
		Detail:    raw.Detail,
		PCAP:      raw.PCAPPacket,
		Timestamp: t,
		Title:     raw.Title,
	}, nil
}

// ParseModemEvent converts a raw event, preferring the handset clock.
func ParseModemEvent(raw RawEvent) (ModemEvent, error) {
	ts := raw.Timestamp
	if ts == "" {
		ts = raw.EquipmentTimestamp
	}
	t, err := ParseTimestamp(ts)
	if err != nil {
		return ModemEvent{}, fmt.Errorf("parse event timestamp: %w", err)
	}
	return ModemEvent{
		Description: raw.Description,
		Timestamp:   t,
		Title:       raw.Title,
	}, nil
}
