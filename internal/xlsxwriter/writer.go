// =============================================================================
// Company Charges Report - XLSX Report Writer
// =============================================================================
//
// This module writes report rows to a single-sheet workbook.
//
// OUTPUT STRUCTURE:
//   Sheet "Matched Charges"
//   Row 1      : column headers (types.Columns), bold, frozen
//   Row 2..n+1 : one row per types.Row, in insertion order
//
// Every value is written as a string so company numbers keep their leading
// zeros.
//
// =============================================================================

package xlsxwriter

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/company-charges-report/internal/types"
	"github.com/ginjaninja78/company-charges-report/pkg/utils"
)

// DefaultSheetName is the name of the report sheet.
const DefaultSheetName = "Matched Charges"

// Column width bounds, in characters.
const (
	minColumnWidth = 10
	maxColumnWidth = 60
)

// ErrNoRows is returned when there is nothing to write. No file is created.
var ErrNoRows = errors.New("no rows to write")

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls the workbook layout.
type Options struct {
	// SheetName is the worksheet name. Default: "Matched Charges"
	SheetName string

	// FreezeHeader keeps the header row visible while scrolling.
	FreezeHeader bool
}

// DefaultOptions returns the standard report layout.
func DefaultOptions() Options {
	return Options{
		SheetName:    DefaultSheetName,
		FreezeHeader: true,
	}
}

// =============================================================================
// WRITER FUNCTIONS
// =============================================================================

// Write saves rows to a new workbook at path, creating the parent directory
// if needed.
//
// PARAMETERS:
//   - path: The output file path (.xlsx).
//   - rows: The report rows, written in order.
//   - opts: Layout options.
//
// RETURNS:
//   - ErrNoRows if rows is empty.
//   - An error if the workbook cannot be built or saved.
func Write(path string, rows []types.Row, opts Options) error {
	if len(rows) == 0 {
		return ErrNoRows
	}
	if opts.SheetName == "" {
		opts.SheetName = DefaultSheetName
	}

	f, err := Build(rows, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := utils.EnsureParentDir(path); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Build assembles the workbook in memory. The caller must Close it.
func Build(rows []types.Row, opts Options) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := opts.SheetName

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeRow(f, sheet, 1, types.Columns); err != nil {
		f.Close()
		return nil, err
	}
	for i, r := range rows {
		if err := writeRow(f, sheet, i+2, r.Values()); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := formatSheet(f, sheet, rows, opts); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// writeRow writes values starting at column A of the given 1-based row.
func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

// formatSheet applies header style, column widths and the frozen pane.
func formatSheet(f *excelize.File, sheet string, rows []types.Row, opts Options) error {
	lastCol, err := excelize.ColumnNumberToName(len(types.Columns))
	if err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, w := range columnWidths(rows) {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}

	if opts.FreezeHeader {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("failed to freeze header: %w", err)
		}
	}
	return nil
}

// columnWidths sizes each column to its longest value within bounds.
func columnWidths(rows []types.Row) []float64 {
	widths := make([]float64, len(types.Columns))
	fit := func(i int, s string) {
		w := float64(utf8.RuneCountInString(s) + 2)
		if w > widths[i] {
			widths[i] = w
		}
	}
	for i, h := range types.Columns {
		fit(i, h)
	}
	for _, r := range rows {
		for i, v := range r.Values() {
			fit(i, v)
		}
	}
	for i, w := range widths {
		switch {
		case w < minColumnWidth:
			widths[i] = minColumnWidth
		case w > maxColumnWidth:
			widths[i] = maxColumnWidth
		}
	}
	return widths
}
