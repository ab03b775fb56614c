package domain

import "time"

// Report summarizes one conversion run.
type Report struct {
	Device            string    `json:"device"`
	Records           int       `json:"records"`
	Locations         int       `json:"locations"`
	Messages          int       `json:"messages"`
	Events            int       `json:"events"`
	SkippedNoTime     int       `json:"skipped_no_timestamp"`
	SkippedOutOfRange int       `json:"skipped_out_of_range"`
	SkippedBadChild   int       `json:"skipped_bad_child"`
	RowsCoordinates   int       `json:"rows_coordinates"`
	RowsSignalling    int       `json:"rows_signalling"`
	RowsEvents        int       `json:"rows_events"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// NewReport stamps a report for device with the package clock.
func NewReport(device string) Report {
	return Report{Device: device, GeneratedAt: clock.Now()}
}
