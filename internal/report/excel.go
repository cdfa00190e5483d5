// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders screening outcomes as spreadsheet workbooks and
// machine-readable run files.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/meshintel/litscreen/internal/screen"
	"github.com/meshintel/litscreen/pkg/types"
)

const summarySheet = "Summary"

// recordHeader lists the columns of every per-category detail sheet.
var recordHeader = []interface{}{"Title", "Authors", "Year", "Journal", "Abstract"}

// WriteExcel writes the screening outcome to an xlsx workbook at path,
// replacing any existing file. The Summary sheet lists a count for every
// category; each non-empty category also gets a detail sheet named after
// its title-cased key.
func WriteExcel(path string, out *screen.Outcome) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, out); err != nil {
		return err
	}
	for _, cat := range types.Categories() {
		records := out.Records(cat)
		if len(records) == 0 {
			continue
		}
		if err := writeCategorySheet(f, cat, records); err != nil {
			return err
		}
	}

	// The workbook opens on Summary; the default sheet goes away.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing workbook %s: %w", path, err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, out *screen.Outcome) error {
	idx, err := f.NewSheet(summarySheet)
	if err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}
	if err := f.SetSheetRow(summarySheet, "A1", &[]interface{}{"Category", "Count"}); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}
	for i, cat := range types.Categories() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("locating summary row: %w", err)
		}
		row := []interface{}{string(cat), out.Count(cat)}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("writing summary row for %s: %w", cat, err)
		}
	}
	f.SetActiveSheet(idx)
	return nil
}

func writeCategorySheet(f *excelize.File, cat types.Category, records []types.Record) error {
	sheet := cat.Title()
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}
	if err := f.SetSheetRow(sheet, "A1", &recordHeader); err != nil {
		return fmt.Errorf("writing header on %s: %w", sheet, err)
	}
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("locating row on %s: %w", sheet, err)
		}
		row := []interface{}{rec.Title(), rec.Authors(), rec.Year(), rec.Journal(), rec.Abstract()}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d on %s: %w", i+2, sheet, err)
		}
	}
	return nil
}
