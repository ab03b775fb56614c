package domain

import "math"

// Location is a cleaned GPS fix ready for output.
type Location struct {
	Latitude  *float64
	Longitude *float64
	Accuracy  float64
	Speed     float64
}

// CleanLocation rounds accuracy and speed to two decimal places and
// carries coordinates through untouched.
func CleanLocation(raw RawLocation) Location {
	return Location{
		Latitude:  raw.Latitude,
		Longitude: raw.Longitude,
		Accuracy:  round2(raw.Accuracy),
		Speed:     round2(raw.Speed),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
