// Command genmock generates a synthetic NSG JSON dump fixture for tests
// and demos. It builds the dump from the actual domain types so the
// fixture always matches what the converter expects, and it is
// deterministic for a given seed.
//
// Usage:
//
//	go run ./cmd/genmock -out testdata/mock_dump.json -duration 120 -seed 1
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/underrobyn/nsg-json-parser/internal/domain"
)

// Fixed capture start so fixtures are reproducible run to run.
var captureStart = time.Date(2024, time.June, 26, 14, 0, 0, 0, time.UTC)

var messageTitles = map[domain.Category][]string{
	domain.CategoryLTE: {"RRC Connection Request", "RRC Connection Setup", "Measurement Report", "RRC Connection Reconfiguration"},
	domain.CategoryEMM: {"Attach Request", "Attach Accept", "Tracking Area Update Request", "Service Request"},
	domain.CategoryESM: {"Activate Default EPS Bearer Context Request", "PDN Connectivity Request"},
	domain.CategoryNR:  {"RRC Setup Request", "RRC Reconfiguration"},
}

var eventTitles = []string{"RAT Change", "Cell Reselection", "Handover", "Signal Lost"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the generated dump")
	duration := flag.Int("duration", 120, "capture length in seconds")
	seed := flag.Int64("seed", 1, "PRNG seed")
	device := flag.String("device", "Pixel 7 Pro", "device name embedded in the dump")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *duration < 1 {
		return fmt.Errorf("duration must be at least 1 second")
	}

	rng := rand.New(rand.NewSource(*seed))
	dump := generate(rng, *device, *duration)

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dump: %w", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("write dump: %w", err)
	}

	log.Printf("wrote %s: %d records over %ds", *out, len(dump.Data), *duration)
	return nil
}

// generate walks one simulated drive: a GPS fix most seconds with a
// slowly drifting position, sporadic signalling bursts, and occasional
// modem events.
func generate(rng *rand.Rand, device string, seconds int) domain.RawDump {
	end := captureStart.Add(time.Duration(seconds-1) * time.Second)

	lat, lon := 53.4084, -2.9916 // Liverpool city centre
	records := make([]domain.RawRecord, 0, seconds)

	for i := 0; i < seconds; i++ {
		ts := captureStart.Add(time.Duration(i) * time.Second)
		rec := domain.RawRecord{
			Timestamp: ts.Format(time.RFC3339),
		}

		// GPS drops out now and then, like a real drive test.
		if rng.Float64() > 0.1 {
			lat += (rng.Float64() - 0.5) * 0.0002
			lon += (rng.Float64() - 0.5) * 0.0002
			la, lo := lat, lon
			rec.Location = &domain.RawLocation{
				Latitude:  &la,
				Longitude: &lo,
				Accuracy:  2 + rng.Float64()*20,
				Speed:     rng.Float64() * 15,
			}
		}

		for m := 0; m < rng.Intn(3); m++ {
			rec.Messages = append(rec.Messages, randomMessage(rng, ts))
		}

		if rng.Float64() < 0.05 {
			rec.Events = append(rec.Events, domain.RawEvent{
				Description: "Serving cell changed",
				Timestamp:   ts.Format(time.RFC3339),
				Title:       eventTitles[rng.Intn(len(eventTitles))],
			})
		}

		records = append(records, rec)
	}

	return domain.RawDump{
		Device:    device,
		StartTime: captureStart.Format(time.RFC3339),
		EndTime:   end.Format(time.RFC3339),
		Data:      records,
	}
}

func randomMessage(rng *rand.Rand, ts time.Time) domain.RawMessage {
	categories := []domain.Category{domain.CategoryLTE, domain.CategoryEMM, domain.CategoryESM, domain.CategoryNR}
	cat := categories[rng.Intn(len(categories))]
	titles := messageTitles[cat]

	direction := "down"
	if rng.Float64() < 0.5 {
		direction = "up"
	}

	return domain.RawMessage{
		Category:           string(cat),
		Direction:          direction,
		Detail:             json.RawMessage(`{}`),
		EquipmentTimestamp: ts.Format(time.RFC3339),
		Title:              titles[rng.Intn(len(titles))],
	}
}
