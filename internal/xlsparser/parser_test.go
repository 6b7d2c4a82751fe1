package xlsparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testdata/companies.xls holds one sheet, "Companies":
//
//	row 1  A: Company list
//	row 2  A: Name         B: Company Number
//	row 3  A: Alpha Ltd    B: 00012345 (text)
//	row 4  A: Beta Ltd     B: SC123456
//	row 5  A: Gamma Ltd    B: 12345678 (number)
//	row 6  A: Delta Ltd    B: "  NI000001 "
//	row 7  A: Epsilon Ltd
//	row 8  A: Zeta Ltd     B: OC999999
func TestOpen_FirstSheet(t *testing.T) {
	sheet, err := Open(filepath.Join("testdata", "companies.xls"))
	require.NoError(t, err)
	defer sheet.Close()

	assert.Equal(t, "Companies", sheet.Name)

	tests := []struct {
		row, col int
		want     string
		ok       bool
	}{
		{1, 1, "Company list", true},
		{1, 2, "", false},
		{2, 2, "Company Number", true},
		{3, 2, "00012345", true},
		{5, 2, "12345678", true},
		{6, 2, "  NI000001 ", true},
		{7, 2, "", false},
		{8, 2, "OC999999", true},
		{9, 2, "", false},
		{0, 1, "", false},
	}
	for _, tt := range tests {
		v, ok := sheet.Cell(tt.row, tt.col)
		assert.Equal(t, tt.ok, ok, "row %d col %d", tt.row, tt.col)
		assert.Equal(t, tt.want, v, "row %d col %d", tt.row, tt.col)
	}
}

func TestOpen_NotBIFF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xls")
	require.NoError(t, os.WriteFile(path, []byte("PK\x03\x04 zipped workbook"), 0o644))

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrNotBIFF)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xls"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open workbook")
}
