package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOutputPath(t *testing.T) {
	path := DefaultOutputPath("matched_charges.xlsx")
	assert.Equal(t, "matched_charges.xlsx", filepath.Base(path))
	assert.Equal(t, DownloadsDir(), filepath.Dir(path))
	assert.NotEmpty(t, DownloadsDir())
}

func TestDownloadsDir_FollowsXDGDownloadDir(t *testing.T) {
	dir := t.TempDir()
	// Registered before Setenv so it runs after the variable is restored.
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_DOWNLOAD_DIR", dir)
	xdg.Reload()

	assert.Equal(t, dir, DownloadsDir())
	assert.Equal(t, filepath.Join(dir, "matched_charges.xlsx"), DefaultOutputPath("matched_charges.xlsx"))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "reports", "a.xlsx"), ExpandHome("~/reports/a.xlsx"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, "/abs/a.xlsx", ExpandHome("/abs/a.xlsx"))
	assert.Equal(t, "~other/a.xlsx", ExpandHome("~other/a.xlsx"))
}

func TestEnsureParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.xlsx")
	require.NoError(t, EnsureParentDir(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.False(t, FileExists(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Dir(path)))
}
