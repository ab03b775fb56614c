package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/underrobyn/nsg-json-parser/internal/domain"
)

// LoadDump reads and validates an NSG JSON export. A malformed file or
// a missing required top-level key is fatal for that file.
func LoadDump(path string) (domain.RawDump, time.Time, time.Time, error) {
	var dump domain.RawDump

	data, err := os.ReadFile(path)
	if err != nil {
		return dump, time.Time{}, time.Time{}, fmt.Errorf("read dump: %w", err)
	}
	if err := json.Unmarshal(data, &dump); err != nil {
		return dump, time.Time{}, time.Time{}, fmt.Errorf("parse dump %s: %w", path, err)
	}

	if dump.Device == "" {
		return dump, time.Time{}, time.Time{}, fmt.Errorf("dump %s: missing device", path)
	}
	if dump.Data == nil {
		return dump, time.Time{}, time.Time{}, fmt.Errorf("dump %s: missing data array", path)
	}

	start, err := domain.ParseTimestamp(dump.StartTime)
	if err != nil {
		return dump, time.Time{}, time.Time{}, fmt.Errorf("dump %s: starttime: %w", path, err)
	}
	end, err := domain.ParseTimestamp(dump.EndTime)
	if err != nil {
		return dump, time.Time{}, time.Time{}, fmt.Errorf("dump %s: endtime: %w", path, err)
	}
	if end.Before(start) {
		return dump, time.Time{}, time.Time{}, fmt.Errorf("dump %s: endtime precedes starttime", path)
	}

	return dump, start, end, nil
}
