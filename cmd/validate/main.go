// Command validate cross-checks the CSV outputs of a conversion run
// against the source NSG dump. It replays the walk independently of the
// pipeline and verifies headers, row counts, and the per-second
// timestamp-to-location join for every signalling and event row.
//
// Usage:
//
//	go run ./cmd/validate -dump testdata/mock_dump.json -out output/mock_dump
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/underrobyn/nsg-json-parser/internal/adapter/csvout"
	"github.com/underrobyn/nsg-json-parser/internal/domain"
	"github.com/underrobyn/nsg-json-parser/internal/pipeline"
)

// phase tracks pass/fail for one validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dumpPath := flag.String("dump", "", "path to the source NSG JSON dump")
	outDir := flag.String("out", "", "directory containing the CSV outputs for that dump")
	flag.Parse()

	if *dumpPath == "" || *outDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*dumpPath, *outDir); code != 0 {
		os.Exit(code)
	}
}

func run(dumpPath, outDir string) int {
	fmt.Println("=== NSG Dump Output Validation ===")
	fmt.Println()

	dump, start, end, err := pipeline.LoadDump(dumpPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load dump: %v\n", err)
		return 1
	}

	idx, messages, events := replay(dump, start, end)

	phases := []*phase{
		validateOutput(outDir, pipeline.CoordinatesFile, csvout.CoordinateHeader, csvout.CoordinateRows(idx)),
		validateOutput(outDir, pipeline.SignallingFile, csvout.SignallingHeader, csvout.SignallingRows(messages, idx)),
		validateOutput(outDir, pipeline.EventsFile, csvout.EventHeader, csvout.EventRows(events, idx)),
	}

	allPassed := true
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS %s\n", p.name)
			continue
		}
		allPassed = false
		fmt.Printf("FAIL %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	if !allPassed {
		return 1
	}
	fmt.Println()
	fmt.Println("all checks passed")
	return 0
}

// replay rebuilds the location index and message/event lists from the
// raw dump, applying the same skip rules as the pipeline walk.
func replay(dump domain.RawDump, start, end time.Time) (*domain.LocationIndex, []domain.Layer3Message, []domain.ModemEvent) {
	idx := domain.NewLocationIndex(start, end)

	var messages []domain.Layer3Message
	var events []domain.ModemEvent

	for _, rec := range dump.Data {
		ts, err := rec.RecordTimestamp()
		if err != nil {
			continue
		}
		key := domain.FormatTimeKey(ts)
		if !idx.Has(key) {
			continue
		}

		if rec.Location != nil {
			idx.Put(key, domain.CleanLocation(*rec.Location))
		}
		for _, raw := range rec.Messages {
			if msg, err := domain.ParseLayer3Message(raw); err == nil {
				messages = append(messages, msg)
			}
		}
		for _, raw := range rec.Events {
			if ev, err := domain.ParseModemEvent(raw); err == nil {
				events = append(events, ev)
			}
		}
	}

	return idx, messages, events
}

// validateOutput compares one CSV file against the rows the replay says
// it should contain.
func validateOutput(outDir, name string, header []string, want [][]string) *phase {
	p := &phase{name: name}

	path := filepath.Join(outDir, name)
	f, err := os.Open(path)
	if err != nil {
		p.errorf("open: %v", err)
		return p
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		p.errorf("read: %v", err)
		return p
	}
	if len(rows) == 0 {
		p.errorf("empty file, expected at least a header row")
		return p
	}

	if !slices.Equal(rows[0], header) {
		p.errorf("header mismatch: got %v, want %v", rows[0], header)
	}

	got := rows[1:]
	if len(got) != len(want) {
		p.errorf("row count mismatch: got %d, want %d", len(got), len(want))
		return p
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			p.errorf("row %d mismatch: got %v, want %v", i+1, got[i], want[i])
			if len(p.errors) >= 10 {
				p.errorf("too many mismatches, stopping")
				return p
			}
		}
	}

	return p
}
