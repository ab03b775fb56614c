// Package xlsxout exports a conversion run as a single spreadsheet
// with one sheet per CSV output, for people who want the correlated
// data without stitching three files back together.
package xlsxout

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/underrobyn/nsg-json-parser/internal/adapter/csvout"
	"github.com/underrobyn/nsg-json-parser/internal/domain"
)

// WriteWorkbook writes Coordinates, Signalling, and Events sheets
// mirroring the CSV outputs to path.
func WriteWorkbook(path string, idx *domain.LocationIndex, messages []domain.Layer3Message, events []domain.ModemEvent) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // nothing useful to do with a close error after SaveAs

	sheets := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{"Coordinates", csvout.CoordinateHeader, csvout.CoordinateRows(idx)},
		{"Signalling", csvout.SignallingHeader, csvout.SignallingRows(messages, idx)},
		{"Events", csvout.EventHeader, csvout.EventRows(events, idx)},
	}

	for _, sheet := range sheets {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet.name, err)
		}
		if err := writeSheet(f, sheet.name, sheet.header, sheet.rows); err != nil {
			return err
		}
	}

	f.DeleteSheet("Sheet1") //nolint:errcheck // default sheet may already be gone

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, header []string, rows [][]string) error {
	if err := setRow(f, name, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}
