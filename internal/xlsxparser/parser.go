// =============================================================================
// Company Charges Report - XLSX Input Parser
// =============================================================================
//
// This module opens workbook input files and exposes their first sheet as a
// types.CellSource. Values are read through excelize's GetRows, so cells
// carry their display format (a company number stored as 1234567 with a
// "00000000" number format reads back as "01234567").
//
// SHEET SELECTION:
//   Only the first sheet in the workbook is read. Hidden or later sheets are
//   ignored.
//
// =============================================================================

package xlsxparser

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheets is returned for a workbook without any worksheet.
var ErrNoSheets = errors.New("workbook has no sheets")

// =============================================================================
// SHEET STRUCTURE
// =============================================================================

// Sheet is the first worksheet of an input workbook.
type Sheet struct {
	// SourceFile is the path to the source workbook.
	SourceFile string

	// Name is the worksheet name.
	Name string

	// rows holds the formatted cell values. Trailing empty cells of each row
	// are omitted by excelize.
	rows [][]string
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Open reads the first worksheet of an XLSX workbook.
//
// PARAMETERS:
//   - path: The path to the workbook file.
//
// RETURNS:
//   - A pointer to the Sheet.
//   - An error if the file cannot be opened or has no sheets.
func Open(path string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return &Sheet{
		SourceFile: path,
		Name:       sheetName,
		rows:       rows,
	}, nil
}

// =============================================================================
// CELL ACCESS
// =============================================================================

// Cell returns the value at the 1-based (row, col) position.
func (s *Sheet) Cell(row, col int) (string, bool) {
	if row < 1 || col < 1 || row > len(s.rows) {
		return "", false
	}
	r := s.rows[row-1]
	if col > len(r) {
		return "", false
	}
	return r[col-1], true
}

// Close is a no-op; the workbook is closed by Open once rows are read.
func (s *Sheet) Close() error {
	return nil
}
