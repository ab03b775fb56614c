package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestNewReport(t *testing.T) {
	fixedTime := time.Date(2024, 6, 26, 15, 30, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixedTime))
	defer SetClock(nil)

	report := NewReport("Pixel 7 Pro")

	assert.Equal(t, "Pixel 7 Pro", report.Device)
	assert.Equal(t, fixedTime, report.GeneratedAt)
	assert.Zero(t, report.Records)
}
