// =============================================================================
// Company Charges Report - Legacy XLS Input Parser
// =============================================================================
//
// This module reads Excel 97-2003 (BIFF8) workbooks and exposes their first
// sheet as a types.CellSource, the same way xlsxparser does for OOXML files.
//
// CELL VALUES:
//   Text cells are returned as stored. Numeric cells are rendered without
//   their number format, so a company number typed as 01234567 into a number
//   cell reads back as "1234567". Formula cells are not evaluated.
//
// =============================================================================

package xlsparser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/extrame/xls"
)

// oleSignature starts every OLE2 compound document, which is the container
// BIFF workbooks are stored in.
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

var (
	// ErrNotBIFF is returned when the file is not an OLE2 compound document.
	// Workbooks saved as .xlsx but named .xls end up here.
	ErrNotBIFF = errors.New("not a BIFF workbook")

	// ErrNoWorkbook is returned when the document has no Workbook stream.
	ErrNoWorkbook = errors.New("document has no workbook stream")

	// ErrNoSheets is returned for a workbook without any worksheet.
	ErrNoSheets = errors.New("workbook has no sheets")
)

// =============================================================================
// SHEET STRUCTURE
// =============================================================================

// Sheet is the first worksheet of a legacy workbook.
type Sheet struct {
	// SourceFile is the path to the source workbook.
	SourceFile string

	// Name is the worksheet name.
	Name string

	// rows holds the cell values, indexed from zero. Rows without cells are
	// nil.
	rows [][]string
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Open reads the first worksheet of an XLS workbook.
//
// PARAMETERS:
//   - path: The path to the workbook file.
//
// RETURNS:
//   - A pointer to the Sheet.
//   - ErrNotBIFF if the file is not an OLE2 document, or another error if
//     the workbook cannot be read.
func Open(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	head := make([]byte, len(oleSignature))
	if _, err := io.ReadFull(f, head); err != nil || !bytes.Equal(head, oleSignature) {
		return nil, ErrNotBIFF
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	return read(path, f)
}

// read parses the workbook. The reader indexes record data without bounds
// checks, so a corrupt file surfaces as a panic that is turned into an error
// here.
func read(path string, r io.ReadSeeker) (sheet *Sheet, err error) {
	defer func() {
		if p := recover(); p != nil {
			sheet, err = nil, fmt.Errorf("failed to parse workbook: %v", p)
		}
	}()

	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	if wb == nil {
		return nil, ErrNoWorkbook
	}
	if wb.NumSheets() == 0 {
		return nil, ErrNoSheets
	}

	ws := wb.GetSheet(0)
	s := &Sheet{SourceFile: path, Name: ws.Name}

	// ReadAllCells walks every sheet in order and stops once max rows are
	// collected, so max set to the first sheet's row count yields exactly
	// that sheet. A MaxRow of zero would let it move on to the next sheet.
	if ws.MaxRow > 0 {
		s.rows = wb.ReadAllCells(int(ws.MaxRow) + 1)
	}
	return s, nil
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

// Close is a no-op; the file is closed by Open once rows are read.
func (s *Sheet) Close() error {
	return nil
}
