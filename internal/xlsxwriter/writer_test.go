package xlsxwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/company-charges-report/internal/types"
)

func sampleRows() []types.Row {
	return []types.Row{
		{
			CompanyName:                  "ACME LTD",
			CompanyNumber:                "01234567",
			CompanyType:                  "ltd",
			IncorporationDate:            "2001-02-03",
			RegisteredOfficeAddress:      "1 Road, Town, AB1 2CD",
			DirectorName:                 "DOE, Jane",
			DormantLatestAccounts:        "No",
			AccountsOverdue:              "Yes",
			ConfirmationStatementOverdue: "No",
			ChargeHolders:                "Lender A",
		},
		{
			CompanyName:   "ACME LTD",
			CompanyNumber: "01234567",
			ChargeHolders: "Lender B; Lender C",
		},
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "matched_charges.xlsx")
	require.NoError(t, Write(path, sampleRows(), DefaultOptions()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Matched Charges"}, f.GetSheetList())

	rows, err := f.GetRows("Matched Charges")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"Company Name", "Company Number", "Company Type", "Incorporation Date",
		"Registered Office Address", "Director Name", "Dormant Latest Accounts?",
		"Accounts Overdue?", "Confirmation Statement Overdue?", "Charge Holders",
	}, rows[0])
	assert.Equal(t, sampleRows()[0].Values(), rows[1])

	// Leading zeros survive because values are written as strings.
	assert.Equal(t, "01234567", rows[2][1])
	assert.Equal(t, "Lender B; Lender C", rows[2][9])
}

func TestWrite_NoRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	err := Write(path, nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoRows)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWrite_DefaultSheetName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, Write(path, sampleRows()[:1], Options{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, DefaultSheetName, f.GetSheetName(0))
}

func TestColumnWidths(t *testing.T) {
	long := make([]rune, 200)
	for i := range long {
		long[i] = 'x'
	}
	widths := columnWidths([]types.Row{{ChargeHolders: string(long)}})

	require.Len(t, widths, len(types.Columns))
	assert.Equal(t, float64(maxColumnWidth), widths[9])
	// "Company Name" + padding.
	assert.Equal(t, float64(14), widths[0])
	for _, w := range widths {
		assert.GreaterOrEqual(t, w, float64(minColumnWidth))
	}
}
