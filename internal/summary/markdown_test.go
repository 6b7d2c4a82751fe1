package summary

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/company-charges-report/internal/converter"
	"github.com/ginjaninja78/company-charges-report/internal/registry"
)

func TestWriteMarkdown(t *testing.T) {
	res := converter.Result{
		RunID: "run-1",
		Matches: []converter.Match{
			{CompanyNumber: "00000001", CompanyName: "ONE LTD", Charges: 1},
			{CompanyNumber: "00000002", Charges: 2},
		},
		Stats: converter.ProcessingStats{
			CompaniesChecked: 3,
			CompaniesMatched: 2,
			ChargesFound:     3,
			RowsCreated:      3,
			LookupFailures:   map[registry.Endpoint]int{registry.EndpointOfficers: 1},
			ProcessingTime:   1500 * time.Millisecond,
		},
	}

	var buf bytes.Buffer
	err := WriteMarkdown(&buf, res, Meta{
		InputFile:   "companies.csv",
		OutputFile:  "/home/u/Downloads/matched_charges.xlsx",
		Mode:        "all",
		Requested:   5,
		GeneratedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "# Charges Check Summary")
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "companies.csv")
	assert.Contains(t, out, "2024-01-02 03:04:05 UTC")
	assert.Contains(t, out, "Skipped (over limit)")
	assert.Contains(t, out, "## Failed Lookups")
	assert.Contains(t, out, "officers")
	assert.Contains(t, out, "ONE LTD")
	assert.Contains(t, out, "00000002")
}

func TestWriteMarkdown_NoMatches(t *testing.T) {
	var buf bytes.Buffer
	err := WriteMarkdown(&buf, converter.Result{RunID: "r"}, Meta{Mode: "lenderMatch"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "not written")
	assert.Contains(t, out, "No matching charges found.")
	assert.NotContains(t, out, "Failed Lookups")
}
