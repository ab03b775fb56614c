// Command nsg2csv converts NSG JSON dump files into three correlated
// CSV files per dump: coordinates, signalling messages, and modem
// events, each message/event annotated with the GPS fix recorded during
// the same second.
//
// Usage:
//
//	nsg2csv [-xlsx] dump.json [dump2.json ...]
//
// Outputs land in OUTPUT_DIR/<basename>/ (OUTPUT_DIR defaults to
// "output"). Each input file is converted independently; a fatal error
// in one file does not stop the rest, but the exit code reports it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/underrobyn/nsg-json-parser/internal/config"
	"github.com/underrobyn/nsg-json-parser/internal/observability"
	"github.com/underrobyn/nsg-json-parser/internal/pipeline"
)

func main() {
	xlsx := flag.Bool("xlsx", false, "additionally write a <basename>.xlsx workbook per dump")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: nsg2csv [-xlsx] dump.json [dump2.json ...]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg, os.Stderr).With("run_id", uuid.NewString())
	metrics := observability.NewMetrics()

	converter := pipeline.New(logger, metrics, pipeline.Options{
		OutputRoot: cfg.OutputDir,
		XLSX:       *xlsx,
	})

	failed := false
	for _, path := range flag.Args() {
		if _, err := converter.Convert(path); err != nil {
			logger.Error("conversion failed", "path", path, "error", err)
			failed = true
		}
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("failed to write metrics textfile", "path", cfg.MetricsFile, "error", err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
