// =============================================================================
// Company Charges Report - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser / xlsxparser (CellSource implementations)
//   - input (column scan)
//   - converter (row building)
//   - xlsxwriter (report output)
//
// =============================================================================

package types

// =============================================================================
// TABULAR INPUT
// =============================================================================

// CellSource is a read-only view over one sheet of tabular data.
// Rows and columns are 1-based, matching spreadsheet notation (B3 is row 3,
// column 2).
type CellSource interface {
	// Cell returns the raw value at (row, col) and whether the cell exists.
	// A cell beyond the end of the data, or beyond the end of a short row,
	// does not exist.
	Cell(row, col int) (string, bool)

	// Close releases any resources held by the source.
	Close() error
}

// =============================================================================
// REPORT ROWS
// =============================================================================

// Column headers of the report, in output order.
const (
	ColCompanyName         = "Company Name"
	ColCompanyNumber       = "Company Number"
	ColCompanyType         = "Company Type"
	ColIncorporationDate   = "Incorporation Date"
	ColRegisteredOffice    = "Registered Office Address"
	ColDirectorName        = "Director Name"
	ColDormantLatest       = "Dormant Latest Accounts?"
	ColAccountsOverdue     = "Accounts Overdue?"
	ColConfirmationOverdue = "Confirmation Statement Overdue?"
	ColChargeHolders       = "Charge Holders"
)

// Columns lists the report headers in the order they are written.
var Columns = []string{
	ColCompanyName,
	ColCompanyNumber,
	ColCompanyType,
	ColIncorporationDate,
	ColRegisteredOffice,
	ColDirectorName,
	ColDormantLatest,
	ColAccountsOverdue,
	ColConfirmationOverdue,
	ColChargeHolders,
}

// Row is a single line of the report: one charge joined with the profile
// and director of the company it was registered against.
type Row struct {
	CompanyName                  string
	CompanyNumber                string
	CompanyType                  string
	IncorporationDate            string
	RegisteredOfficeAddress      string
	DirectorName                 string
	DormantLatestAccounts        string
	AccountsOverdue              string
	ConfirmationStatementOverdue string
	ChargeHolders                string
}

// Values returns the row's fields in Columns order.
func (r Row) Values() []string {
	return []string{
		r.CompanyName,
		r.CompanyNumber,
		r.CompanyType,
		r.IncorporationDate,
		r.RegisteredOfficeAddress,
		r.DirectorName,
		r.DormantLatestAccounts,
		r.AccountsOverdue,
		r.ConfirmationStatementOverdue,
		r.ChargeHolders,
	}
}

// YesNo renders a flag the way the report expects it.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
