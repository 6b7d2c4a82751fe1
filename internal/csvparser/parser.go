// =============================================================================
// Company Charges Report - CSV Parser Module
// =============================================================================
//
// This module reads comma-separated input files and exposes them as a
// types.CellSource so the input extractor can address cells by spreadsheet
// position (row 3, column B) the same way it does for workbooks.
//
// FEATURES:
//   - Variable field counts per row (title rows are often shorter)
//   - Lazy quotes for hand-edited exports
//   - Leading UTF-8 byte order mark is stripped
//   - Optional legacy encodings (Windows-1252, ISO-8859-1, UTF-16)
//
// ROW NUMBERING:
//   Completely empty lines are dropped by encoding/csv before rows are
//   numbered, so "row 3" is the third non-empty record in the file.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned when the configured input encoding is not
// one this parser can decode.
var ErrUnknownEncoding = errors.New("unknown input encoding")

// =============================================================================
// TABLE STRUCTURE
// =============================================================================

// Table is a fully-read CSV file.
type Table struct {
	// SourceFile is the path to the source CSV file.
	SourceFile string

	// records holds the non-empty rows in file order.
	records [][]string
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Open reads a CSV file and returns it as a Table.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - encodingName: The character encoding of the file. Empty means UTF-8.
//
// RETURNS:
//   - A pointer to the Table.
//   - An error if the file cannot be opened, decoded or parsed.
func Open(filePath, encodingName string) (*Table, error) {
	dec, err := decoderFor(encodingName)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	records, err := read(transform.NewReader(bufio.NewReader(file), dec))
	if err != nil {
		return nil, err
	}

	return &Table{
		SourceFile: filePath,
		records:    records,
	}, nil
}

// Parse reads CSV data from r, which must already be UTF-8.
func Parse(r io.Reader) (*Table, error) {
	records, err := read(r)
	if err != nil {
		return nil, err
	}
	return &Table{records: records}, nil
}

func read(r io.Reader) ([][]string, error) {
	csvReader := csv.NewReader(r)
	configureReader(csvReader)

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return records, nil
}

// configureReader configures the CSV reader for loosely-formatted exports.
func configureReader(reader *csv.Reader) {
	reader.Comma = ','

	// Title rows above the data usually have fewer columns.
	reader.FieldsPerRecord = -1

	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
}

// decoderFor maps an encoding name from the configuration to a decoder.
func decoderFor(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-")) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "iso-8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "utf-16", "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}

// =============================================================================
// CELL ACCESS
// =============================================================================

// Cell returns the value at the 1-based (row, col) position.
func (t *Table) Cell(row, col int) (string, bool) {
	if row < 1 || col < 1 || row > len(t.records) {
		return "", false
	}
	record := t.records[row-1]
	if col > len(record) {
		return "", false
	}
	return record[col-1], true
}

// Close is a no-op; the file is fully read by Open.
func (t *Table) Close() error {
	return nil
}
