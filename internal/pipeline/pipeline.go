// Package pipeline orchestrates one conversion run:
// load → build per-second location index → walk records → write outputs.
// The run is fully synchronous; the only state is the index built and
// consumed in sequence.
package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/underrobyn/nsg-json-parser/internal/adapter/csvout"
	"github.com/underrobyn/nsg-json-parser/internal/adapter/xlsxout"
	"github.com/underrobyn/nsg-json-parser/internal/domain"
	"github.com/underrobyn/nsg-json-parser/internal/observability"
)

// Output file names inside the per-dump directory.
const (
	CoordinatesFile = "coordinates.csv"
	SignallingFile  = "signalling.csv"
	EventsFile      = "events.csv"
)

// Options control where and how a Converter writes its outputs.
type Options struct {
	// OutputRoot is the directory under which each dump gets its own
	// <basename> subdirectory.
	OutputRoot string
	// XLSX additionally writes a <basename>.xlsx workbook mirroring
	// the three CSVs.
	XLSX bool
}

// Converter runs the load-index-walk-write pipeline for dump files.
type Converter struct {
	logger  *slog.Logger
	metrics *observability.Metrics
	opts    Options
}

// New creates a Converter.
func New(logger *slog.Logger, metrics *observability.Metrics, opts Options) *Converter {
	return &Converter{logger: logger, metrics: metrics, opts: opts}
}

// Convert processes a single dump file and writes its outputs under
// OutputRoot/<basename>/.
func (c *Converter) Convert(path string) (domain.Report, error) {
	start := time.Now()

	dump, captureStart, captureEnd, err := LoadDump(path)
	if err != nil {
		return domain.Report{}, err
	}
	c.logger.Info("dump loaded",
		"path", path,
		"device", dump.Device,
		"records", len(dump.Data),
		"capture_start", captureStart,
		"capture_end", captureEnd,
	)

	idx := domain.NewLocationIndex(captureStart, captureEnd)
	messages, events, report := c.walk(dump, idx)

	outDir := filepath.Join(c.opts.OutputRoot, dumpBasename(path))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return report, fmt.Errorf("create output dir: %w", err)
	}

	if report.RowsCoordinates, err = c.writeCSV(outDir, CoordinatesFile, csvout.CoordinateHeader, csvout.CoordinateRows(idx)); err != nil {
		return report, err
	}
	if report.RowsSignalling, err = c.writeCSV(outDir, SignallingFile, csvout.SignallingHeader, csvout.SignallingRows(messages, idx)); err != nil {
		return report, err
	}
	if report.RowsEvents, err = c.writeCSV(outDir, EventsFile, csvout.EventHeader, csvout.EventRows(events, idx)); err != nil {
		return report, err
	}

	if c.opts.XLSX {
		workbook := filepath.Join(outDir, dumpBasename(path)+".xlsx")
		if err := xlsxout.WriteWorkbook(workbook, idx, messages, events); err != nil {
			return report, err
		}
		c.logger.Info("workbook written", "path", workbook)
	}

	c.metrics.ConversionDuration.Observe(time.Since(start).Seconds())
	c.logger.Info("conversion complete",
		"device", report.Device,
		"records", report.Records,
		"locations", report.Locations,
		"messages", report.Messages,
		"events", report.Events,
		"skipped_no_timestamp", report.SkippedNoTime,
		"skipped_out_of_range", report.SkippedOutOfRange,
		"output_dir", outDir,
	)
	return report, nil
}

// walk iterates the raw records, filling the location index and
// collecting parsed messages and events. Records without a usable
// timestamp or outside the capture range are skipped with a warning.
func (c *Converter) walk(dump domain.RawDump, idx *domain.LocationIndex) ([]domain.Layer3Message, []domain.ModemEvent, domain.Report) {
	report := domain.NewReport(dump.Device)

	var messages []domain.Layer3Message
	var events []domain.ModemEvent

	for i, rec := range dump.Data {
		report.Records++
		c.metrics.RecordsWalked.Inc()

		ts, err := rec.RecordTimestamp()
		if err != nil {
			c.logger.Warn("skipping record without usable timestamp", "index", i, "error", err)
			c.metrics.RecordsSkipped.WithLabelValues("no_timestamp").Inc()
			report.SkippedNoTime++
			continue
		}

		key := domain.FormatTimeKey(ts)
		if !idx.Has(key) {
			c.logger.Warn("skipping record outside capture range", "index", i, "timestamp", key)
			c.metrics.RecordsSkipped.WithLabelValues("out_of_range").Inc()
			report.SkippedOutOfRange++
			continue
		}

		if rec.Location != nil {
			idx.Put(key, domain.CleanLocation(*rec.Location))
			report.Locations++
			c.metrics.LocationsIndexed.Inc()
		}

		for _, raw := range rec.Messages {
			msg, err := domain.ParseLayer3Message(raw)
			if err != nil {
				c.logger.Warn("skipping message", "index", i, "title", raw.Title, "error", err)
				c.metrics.ChildrenSkipped.Inc()
				report.SkippedBadChild++
				continue
			}
			messages = append(messages, msg)
			report.Messages++
			c.metrics.MessagesParsed.Inc()
		}

		for _, raw := range rec.Events {
			ev, err := domain.ParseModemEvent(raw)
			if err != nil {
				c.logger.Warn("skipping event", "index", i, "title", raw.Title, "error", err)
				c.metrics.ChildrenSkipped.Inc()
				report.SkippedBadChild++
				continue
			}
			events = append(events, ev)
			report.Events++
			c.metrics.EventsParsed.Inc()
		}
	}

	return messages, events, report
}

func (c *Converter) writeCSV(dir, name string, header []string, rows [][]string) (int, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // flushed and checked below

	n, err := csvout.Write(f, header, rows)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("close %s: %w", path, err)
	}

	c.metrics.RowsWritten.WithLabelValues(strings.TrimSuffix(name, ".csv")).Add(float64(n))
	return n, nil
}

// dumpBasename strips the directory and extension from a dump path;
// it names the per-dump output directory.
func dumpBasename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
