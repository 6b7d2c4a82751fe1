// =============================================================================
// Company Charges Report - Main Entry Point
// =============================================================================
//
// This is the main entry point for the chargecheck CLI application. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   chargecheck check [file]  - Look up charges for the companies in a file
//   chargecheck version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Input readers, registry client, converter, report writers
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/company-charges-report/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
