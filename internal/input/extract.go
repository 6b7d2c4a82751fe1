// Package input extracts the ordered list of company numbers from the
// user's spreadsheet.
//
// Both supported formats are read through types.CellSource, so the layout
// policy (column B, starting at row 3, stopping at the first blank) lives
// in one place: ScanColumn.
package input

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/company-charges-report/internal/csvparser"
	"github.com/ginjaninja78/company-charges-report/internal/types"
	"github.com/ginjaninja78/company-charges-report/internal/xlsparser"
	"github.com/ginjaninja78/company-charges-report/internal/xlsxparser"
)

// Fixed position of the company numbers in the input sheet.
const (
	NumberColumn = 2 // Column B
	FirstDataRow = 3 // Rows 1-2 hold the title and header
)

// MaxIdentifiers is the hard ceiling applied by Limit.
const MaxIdentifiers = 500

var (
	// ErrUnsupportedFileType is returned for an extension with no reader.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrNoIdentifiers is returned by callers when extraction yields nothing.
	ErrNoIdentifiers = errors.New("no company numbers found in file")
)

// Options controls how the input file is read.
type Options struct {
	// Encoding is the character encoding for CSV files. Empty means UTF-8.
	Encoding string
}

// Extract opens path, picking the reader by file extension, and returns the
// company numbers found in column B from row 3 down to the first blank.
func Extract(path string, opts Options) ([]string, error) {
	src, err := Open(path, opts)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return ScanColumn(src, FirstDataRow, NumberColumn), nil
}

// Open returns the CellSource for path.
func Open(path string, opts Options) (types.CellSource, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		t, err := csvparser.Open(path, opts.Encoding)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
		}
		return t, nil
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		s, err := xlsxparser.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
		}
		return s, nil
	case ".xls":
		src, err := openXLS(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
		}
		return src, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}
}

// openXLS reads a legacy workbook. Some tools save OOXML workbooks under an
// .xls name, so those go to the xlsx reader.
func openXLS(path string) (types.CellSource, error) {
	s, err := xlsparser.Open(path)
	if errors.Is(err, xlsparser.ErrNotBIFF) {
		return xlsxparser.Open(path)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ScanColumn reads col from startRow downwards and stops at the first cell
// that is missing or blank after trimming. Values are trimmed.
//
// Gaps are not skipped: a blank in the middle of the list ends the scan.
func ScanColumn(src types.CellSource, startRow, col int) []string {
	var values []string
	for row := startRow; ; row++ {
		v, ok := src.Cell(row, col)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			return values
		}
		values = append(values, v)
	}
}

// Limit returns at most the first n identifiers. An n outside
// 1..MaxIdentifiers is treated as MaxIdentifiers.
func Limit(ids []string, n int) []string {
	if n <= 0 || n > MaxIdentifiers {
		n = MaxIdentifiers
	}
	if len(ids) > n {
		return ids[:n]
	}
	return ids
}
