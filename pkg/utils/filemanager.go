// =============================================================================
// Company Charges Report - File Manager Utility
// =============================================================================
//
// This module provides file helpers shared by the commands and writers:
//   - Resolving the user's Downloads directory for the default report path
//   - Creating parent directories before a file is written
//   - Small file existence checks
//
// DOWNLOADS DIRECTORY:
//   Resolved through the platform's user-directory conventions (XDG user
//   dirs on Linux, Known Folders on Windows, ~/Downloads on macOS). An
//   XDG_DOWNLOAD_DIR environment variable wins when set. Falls back to
//   <home>/Downloads.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// =============================================================================
// OUTPUT LOCATION
// =============================================================================

// DownloadsDir returns the user's Downloads directory.
func DownloadsDir() string {
	if dir := xdg.UserDirs.Download; dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "Downloads"
	}
	return filepath.Join(home, "Downloads")
}

// DefaultOutputPath returns fileName inside the Downloads directory.
func DefaultOutputPath(fileName string) string {
	return filepath.Join(DownloadsDir(), fileName)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
