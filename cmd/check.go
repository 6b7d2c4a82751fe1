// =============================================================================
// Company Charges Report - Check Command
// =============================================================================
//
// This file defines the 'check' command, which runs the whole pipeline.
//
// COMMAND USAGE:
//   chargecheck check [file] [flags]
//
// FLAGS:
//   --output   : Report path (default: <Downloads>/matched_charges.xlsx, where
//                <Downloads> follows XDG_DOWNLOAD_DIR when it is set)
//   --mode     : Charge filter, "all" or "lenderMatch"
//   --limit    : Maximum number of companies to check, 1-500 (default 500)
//   --summary  : Also write a Markdown run summary to this path
//
// PROCESSING PIPELINE:
//   1. Load configuration and apply flag overrides
//   2. Read company numbers from the input file
//   3. Look up each company in turn (charges, then profile and officers)
//   4. Write the report, or report that nothing matched
//   5. Optionally write the run summary
//
// =============================================================================

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/company-charges-report/internal/config"
	"github.com/ginjaninja78/company-charges-report/internal/converter"
	"github.com/ginjaninja78/company-charges-report/internal/input"
	"github.com/ginjaninja78/company-charges-report/internal/registry"
	"github.com/ginjaninja78/company-charges-report/internal/summary"
	"github.com/ginjaninja78/company-charges-report/internal/xlsxwriter"
	"github.com/ginjaninja78/company-charges-report/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// outputPath overrides the report location.
var outputPath string

// filterMode overrides charge_filter_mode.
var filterMode string

// limit overrides max_companies.
var limit int

// summaryPath is where the Markdown summary is written, if set.
var summaryPath string

// =============================================================================
// CHECK COMMAND DEFINITION
// =============================================================================

// checkCmd represents the 'check' command.
var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Look up charges for the companies listed in a spreadsheet",
	Long: `The check command reads company numbers from column B of the input file,
starting at row 3 and stopping at the first blank cell. Supported inputs are
.csv files, .xlsx workbooks and Excel 97-2003 .xls workbooks. If no file is
given, input_path from the configuration is used, otherwise you are prompted
for a path.

Companies are looked up one at a time. A failed lookup is logged and treated
as empty; it does not stop the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Report path (default: matched_charges.xlsx in your Downloads folder; XDG_DOWNLOAD_DIR overrides the folder)")
	checkCmd.Flags().StringVar(&filterMode, "mode", "",
		`Charge filter: "all" or "lenderMatch" (default from config, else "all")`)
	checkCmd.Flags().IntVar(&limit, "limit", 0,
		"Maximum number of companies to check, 1-500 (0: max_companies from config, else 500)")
	checkCmd.Flags().StringVar(&summaryPath, "summary", "",
		"Write a Markdown run summary to this path")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	l, err := buildLogger(cfg.LogLevel, verbose)
	if err != nil {
		return err
	}
	logger = l

	// =========================================================================
	// STEP 2: READ COMPANY NUMBERS
	// =========================================================================

	path, err := resolveInputPath(args, cfg, cmd.InOrStdin(), out)
	if err != nil {
		return err
	}
	if !utils.FileExists(path) {
		return fmt.Errorf("input file not found: %s", path)
	}

	numbers, err := input.Extract(path, input.Options{Encoding: cfg.InputEncoding})
	if err != nil {
		return err
	}
	if len(numbers) == 0 {
		return fmt.Errorf("%w: %s", input.ErrNoIdentifiers, path)
	}
	requested := len(numbers)
	numbers = input.Limit(numbers, cfg.MaxCompanies)
	if len(numbers) < requested {
		logger.Info("input truncated", zap.Int("found", requested), zap.Int("limit", cfg.MaxCompanies))
	}

	// =========================================================================
	// STEP 3: LOOK UP COMPANIES
	// =========================================================================

	selector, err := converter.NewSelector(cfg.ChargeFilterMode, cfg.ActiveLenders())
	if err != nil {
		return err
	}
	client := registry.New(cfg.BaseURL, cfg.APIKey,
		registry.WithUserAgent(cfg.UserAgent),
		registry.WithLogger(logger))

	conv := converter.New(client, selector, logger)
	conv.OnCompany = func(index, total int, number string) {
		fmt.Fprintf(out, "Checking company: %s (%d/%d)\n", number, index, total)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, err := conv.Run(ctx, numbers)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("interrupted, no report written: %w", err)
		}
		return err
	}

	// =========================================================================
	// STEP 4: WRITE REPORT
	// =========================================================================

	reportPath := cfg.OutputPath
	if reportPath == "" {
		reportPath = utils.DefaultOutputPath(config.DefaultOutputName)
	}
	reportPath = utils.ExpandHome(reportPath)

	err = xlsxwriter.Write(reportPath, res.Rows, xlsxwriter.DefaultOptions())
	switch {
	case errors.Is(err, xlsxwriter.ErrNoRows):
		reportPath = ""
		fmt.Fprintln(out, "\nNo matching charges found, so no Excel file was created.")
	case err != nil:
		return fmt.Errorf("failed to write report: %w", err)
	default:
		fmt.Fprintf(out, "\nExcel file created: %s\n", reportPath)
	}

	// =========================================================================
	// STEP 5: SUMMARY
	// =========================================================================

	if summaryPath != "" {
		meta := summary.Meta{
			InputFile:   path,
			OutputFile:  reportPath,
			Mode:        selector.Name(),
			Requested:   requested,
			GeneratedAt: time.Now(),
		}
		if err := writeSummary(utils.ExpandHome(summaryPath), res, meta); err != nil {
			return err
		}
		fmt.Fprintf(out, "Summary written: %s\n", summaryPath)
	}

	printTotals(out, res)
	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// loadConfig loads the configuration file with command-line flags applied
// on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	return config.Load(cfgFile, flags.Changed("config"), func(cfg *config.Config) {
		if flags.Changed("mode") {
			cfg.ChargeFilterMode = filterMode
		}
		// --limit 0 keeps max_companies, matching a zero in the file.
		if flags.Changed("limit") && limit != 0 {
			cfg.MaxCompanies = limit
		}
		if flags.Changed("output") {
			cfg.OutputPath = outputPath
		}
	})
}

// resolveInputPath picks the input file from the argument, the config, or a
// prompt on stdin.
func resolveInputPath(args []string, cfg *config.Config, in io.Reader, out io.Writer) (string, error) {
	if len(args) == 1 {
		return utils.ExpandHome(args[0]), nil
	}
	if cfg.InputPath != "" {
		return utils.ExpandHome(cfg.InputPath), nil
	}

	fmt.Fprint(out, "Path to company list (.csv or .xlsx): ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input path: %w", err)
	}
	path := strings.Trim(strings.TrimSpace(line), `"'`)
	if path == "" {
		return "", errors.New("no input file given")
	}
	return utils.ExpandHome(path), nil
}

func writeSummary(path string, res converter.Result, meta summary.Meta) error {
	if err := utils.EnsureParentDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary: %w", err)
	}
	if err := summary.WriteMarkdown(f, res, meta); err != nil {
		f.Close()
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return f.Close()
}

func printTotals(out io.Writer, res converter.Result) {
	fmt.Fprintln(out, "\n=== Check Complete ===")
	fmt.Fprintf(out, "Companies checked: %d\n", res.Stats.CompaniesChecked)
	fmt.Fprintf(out, "With charges:      %d\n", res.Stats.CompaniesMatched)
	fmt.Fprintf(out, "Report rows:       %d\n", res.Stats.RowsCreated)
	fmt.Fprintf(out, "Failed lookups:    %d\n", res.Stats.TotalFailures())
	fmt.Fprintf(out, "Time elapsed:      %s\n", res.Stats.ProcessingTime.Round(time.Millisecond))
	if res.Stats.TotalFailures() > 0 {
		fmt.Fprintln(out, "Failed lookups were reported as empty values; see the log for details.")
	}
}
