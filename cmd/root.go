// =============================================================================
// Company Charges Report - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (chargecheck)
//   ├── checkCmd (chargecheck check [file])
//   └── versionCmd (chargecheck version)
//
// The root command owns the global flags (--config, --verbose) and flushes
// the logger when the command tree returns.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ginjaninja78/company-charges-report/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// logger is built once the configuration is known. It discards output until
// then.
var logger = zap.NewNop()

// buildLogger constructs the process logger from the configured level.
var buildLogger = newLogger

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "chargecheck",
	Short: "Company charges report - look up registered charges for a list of companies",
	Long: `chargecheck reads company numbers from a spreadsheet (column B, from row 3),
looks up each company's registered charges in the company registry, and writes
every charge together with the company's profile and first director to
matched_charges.xlsx in your Downloads folder.

Example Usage:
  chargecheck check companies.xlsx                 # Report every charge
  chargecheck check companies.csv --mode lenderMatch
  chargecheck check companies.xlsx --summary run.md`,

	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs the command tree and flushes the logger whether or not the
// command failed. os.Exit skips deferred calls, so this cannot live in
// Execute.
func execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// newLogger builds the process logger. Logs go to stderr so stdout stays
// readable progress output.
func newLogger(level string, debug bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	if debug {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}
