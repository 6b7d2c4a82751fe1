package converter

import (
	"strings"

	"github.com/ginjaninja78/company-charges-report/internal/registry"
	"github.com/ginjaninja78/company-charges-report/internal/types"
)

// BuildRows produces one report row per charge. Profile and director fields
// are identical across the rows of one company; only Charge Holders differs.
//
// number is the identifier as read from the input file, which is what the
// report shows even when the profile lookup failed.
func BuildRows(number string, charges []registry.Charge, profile registry.CompanyProfile, officers []registry.Officer) []types.Row {
	if len(charges) == 0 {
		return nil
	}

	director := registry.FirstDirector(officers)
	base := types.Row{
		CompanyName:                  profile.CompanyName,
		CompanyNumber:                number,
		CompanyType:                  profile.Type,
		IncorporationDate:            profile.DateOfCreation,
		RegisteredOfficeAddress:      profile.RegisteredOfficeAddress.String(),
		DirectorName:                 director.Name,
		DormantLatestAccounts:        types.YesNo(profile.IsDormant()),
		AccountsOverdue:              types.YesNo(profile.Accounts.Overdue),
		ConfirmationStatementOverdue: types.YesNo(profile.ConfirmationStatement.Overdue),
	}

	rows := make([]types.Row, 0, len(charges))
	for _, c := range charges {
		row := base
		row.ChargeHolders = strings.Join(c.HolderNames(), "; ")
		rows = append(rows, row)
	}
	return rows
}
