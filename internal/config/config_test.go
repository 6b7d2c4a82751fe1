package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvBaseURL, "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIKey, "env-key")

	cfg, err := Load(filepath.Join(t.TempDir(), DefaultConfigFile), false)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, ModeAll, cfg.ChargeFilterMode)
	assert.Equal(t, 500, cfg.MaxCompanies)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.OutputPath)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIKey, "env-key")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), true)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
api_key: file-key
charge_filter_mode: lenderMatch
lenders:
  - Peak Cashflow Limited
  - "  "
  - Swishfund LTD
max_companies: 20
input_encoding: windows-1252
output_path: /tmp/out.xlsx
log_level: debug
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, ModeLenderMatch, cfg.ChargeFilterMode)
	assert.Equal(t, []string{"Peak Cashflow Limited", "Swishfund LTD"}, cfg.ActiveLenders())
	assert.Equal(t, 20, cfg.MaxCompanies)
	assert.Equal(t, "windows-1252", cfg.InputEncoding)
	assert.Equal(t, "/tmp/out.xlsx", cfg.OutputPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvBaseURL, "http://localhost:9999")
	path := writeConfig(t, "api_key: file-key\nbase_url: https://example.test\n")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
}

func TestLoad_ParseError(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "lenders: [unterminated\n")

	_, err := Load(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := Default()
		c.APIKey = "k"
		return c
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"valid", func(c *Config) {}, nil},
		{"missing api key", func(c *Config) { c.APIKey = " " }, ErrMissingAPIKey},
		{"unknown mode", func(c *Config) { c.ChargeFilterMode = "some" }, ErrInvalidFilterMode},
		{"lender mode without roster", func(c *Config) {
			c.ChargeFilterMode = ModeLenderMatch
			c.Lenders = []string{""}
		}, ErrNoLenders},
		{"lender mode with roster", func(c *Config) {
			c.ChargeFilterMode = ModeLenderMatch
			c.Lenders = []string{"Reward Capital Limited"}
		}, nil},
		{"negative max", func(c *Config) { c.MaxCompanies = -1 }, ErrInvalidMaxCompanies},
		{"zero max", func(c *Config) { c.MaxCompanies = 0 }, ErrInvalidMaxCompanies},
		{"max above cap", func(c *Config) { c.MaxCompanies = MaxCompaniesCap + 1 }, ErrInvalidMaxCompanies},
		{"max at cap", func(c *Config) { c.MaxCompanies = MaxCompaniesCap }, nil},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_ExampleFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIKey, "env-key")

	cfg, err := Load(filepath.Join("..", "..", "chargecheck.example.yaml"), true)
	require.NoError(t, err)

	assert.Equal(t, ModeAll, cfg.ChargeFilterMode)
	assert.Equal(t, DefaultMaxCompanies, cfg.MaxCompanies)
	assert.Len(t, cfg.ActiveLenders(), 11)
	assert.Contains(t, cfg.Lenders, "Peak Cashflow Limited")
	assert.Empty(t, cfg.OutputPath)
}

func TestLoad_OverridesApplyBeforeValidation(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
api_key: file-key
charge_filter_mode: bogus
`)

	_, err := Load(path, true)
	assert.ErrorIs(t, err, ErrInvalidFilterMode)

	cfg, err := Load(path, true, func(c *Config) { c.ChargeFilterMode = ModeAll })
	require.NoError(t, err)
	assert.Equal(t, ModeAll, cfg.ChargeFilterMode)

	_, err = Load(path, true,
		func(c *Config) { c.ChargeFilterMode = ModeAll },
		func(c *Config) { c.MaxCompanies = MaxCompaniesCap + 1 },
	)
	assert.ErrorIs(t, err, ErrInvalidMaxCompanies)
}

func TestLoad_ZeroMaxCompaniesMeansDefault(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "api_key: k\nmax_companies: 0\n")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxCompanies, cfg.MaxCompanies)

	path = writeConfig(t, "api_key: k\nmax_companies: 900\n")
	_, err = Load(path, true)
	assert.ErrorIs(t, err, ErrInvalidMaxCompanies)
}
