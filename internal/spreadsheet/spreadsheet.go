// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package spreadsheet converts between Excel workbooks and CSV files.
package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// XLSXToCSV writes the first sheet of the workbook at inPath as CSV to
// outPath. Cells are written as their formatted string values.
func XLSXToCSV(inPath, outPath string) error {
	f, err := excelize.OpenFile(inPath)
	if err != nil {
		return fmt.Errorf("opening workbook %s: %w", inPath, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("workbook %s has no sheets", inPath)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	// Pad short rows so every record has the same width; GetRows trims
	// trailing empty cells per row.
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for _, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// CSVToXLSX writes the CSV at inPath as a single-sheet workbook at outPath.
func CSVToXLSX(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening CSV %s: %w", inPath, err)
	}
	defer in.Close()

	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("reading CSV %s: %w", inPath, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("computing cell for row %d: %w", i+1, err)
		}
		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("saving workbook %s: %w", outPath, err)
	}
	return nil
}
