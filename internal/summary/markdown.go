// Package summary renders a human-readable account of a run.
package summary

import (
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/nao1215/markdown"

	"github.com/ginjaninja78/company-charges-report/internal/converter"
	"github.com/ginjaninja78/company-charges-report/internal/registry"
)

// Meta carries run details that are not part of converter.Result.
type Meta struct {
	InputFile   string
	OutputFile  string // empty when no report was written
	Mode        string
	Requested   int // identifiers read from the input before the cap
	GeneratedAt time.Time
}

// WriteMarkdown writes the run summary to w.
func WriteMarkdown(w io.Writer, res converter.Result, meta Meta) error {
	md := markdown.NewMarkdown(w)

	md.H1("Charges Check Summary")
	md.PlainText("")

	output := meta.OutputFile
	if output == "" {
		output = "not written (no matching charges)"
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run ID", "`" + res.RunID + "`"},
			{"Generated", meta.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Input File", meta.InputFile},
			{"Report", output},
			{"Charge Filter", meta.Mode},
			{"Elapsed", res.Stats.ProcessingTime.Round(time.Millisecond).String()},
		},
	})
	md.PlainText("")

	writeStats(md, res, meta)
	writeFailures(md, res.Stats)
	writeMatches(md, res.Matches)

	return md.Build()
}

func writeStats(md *markdown.Markdown, res converter.Result, meta Meta) {
	md.H2("Totals")
	md.PlainText("")

	rows := [][]string{
		{"Companies checked", strconv.Itoa(res.Stats.CompaniesChecked)},
		{"Companies with charges", strconv.Itoa(res.Stats.CompaniesMatched)},
		{"Charges returned", strconv.Itoa(res.Stats.ChargesFound)},
		{"Report rows", strconv.Itoa(res.Stats.RowsCreated)},
		{"Failed lookups", strconv.Itoa(res.Stats.TotalFailures())},
	}
	if meta.Requested > res.Stats.CompaniesChecked {
		rows = append(rows, []string{"Skipped (over limit)", strconv.Itoa(meta.Requested - res.Stats.CompaniesChecked)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeFailures(md *markdown.Markdown, stats converter.ProcessingStats) {
	if stats.TotalFailures() == 0 {
		return
	}

	md.H2("Failed Lookups")
	md.PlainText("")
	md.Warningf("%d registry lookup(s) failed and were reported as empty values.", stats.TotalFailures())
	md.PlainText("")

	endpoints := make([]string, 0, len(stats.LookupFailures))
	for ep := range stats.LookupFailures {
		endpoints = append(endpoints, string(ep))
	}
	sort.Strings(endpoints)

	rows := make([][]string, 0, len(endpoints))
	for _, ep := range endpoints {
		rows = append(rows, []string{ep, strconv.Itoa(stats.LookupFailures[registry.Endpoint(ep)])})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Endpoint", "Failures"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeMatches(md *markdown.Markdown, matches []converter.Match) {
	md.H2("Companies With Charges")
	md.PlainText("")

	if len(matches) == 0 {
		md.PlainText("No matching charges found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(matches))
	for i, m := range matches {
		name := m.CompanyName
		if name == "" {
			name = "-"
		}
		rows[i] = []string{m.CompanyNumber, name, strconv.Itoa(m.Charges)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Company Number", "Company Name", "Charges"},
		Rows:   rows,
	})
}
