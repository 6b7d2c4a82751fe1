// =============================================================================
// Company Charges Report - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file, applies
// defaults and environment overrides, and validates the result.
//
// PRECEDENCE (lowest to highest):
//   1. Built-in defaults
//   2. Configuration file (chargecheck.yaml)
//   3. Environment variables (COMPANIES_HOUSE_API_KEY, COMPANIES_HOUSE_BASE_URL)
//   4. Command-line flags (applied by the cmd package)
//
// The configuration file is optional when the default path is used; an
// explicitly requested file must exist.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONSTANTS
// =============================================================================

// DefaultConfigFile is the configuration file looked up when --config is not
// given.
const DefaultConfigFile = "chargecheck.yaml"

// Environment variables read by applyEnvOverrides.
const (
	EnvAPIKey  = "COMPANIES_HOUSE_API_KEY"
	EnvBaseURL = "COMPANIES_HOUSE_BASE_URL"
)

// Charge filter modes.
const (
	// ModeAll keeps every charge registered against a company.
	ModeAll = "all"

	// ModeLenderMatch keeps only charges held by a lender on the roster.
	ModeLenderMatch = "lenderMatch"
)

// MaxCompaniesCap is the most company numbers a single run will check.
const MaxCompaniesCap = 500

// Defaults.
const (
	DefaultBaseURL      = "https://api.company-information.service.gov.uk"
	DefaultMaxCompanies = MaxCompaniesCap
	DefaultLogLevel     = "info"
	DefaultUserAgent    = "chargecheck"
	DefaultOutputName   = "matched_charges.xlsx"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// APIKey is the registry API key. Prefer the COMPANIES_HOUSE_API_KEY
	// environment variable over storing it in the file.
	APIKey string `yaml:"api_key"`

	// BaseURL is the registry API root.
	BaseURL string `yaml:"base_url"`

	// UserAgent is sent with every registry request.
	UserAgent string `yaml:"user_agent"`

	// ChargeFilterMode selects which charges produce report rows.
	// Valid values: "all", "lenderMatch"
	ChargeFilterMode string `yaml:"charge_filter_mode"`

	// Lenders is the roster matched against persons entitled when
	// ChargeFilterMode is "lenderMatch". Matching is a case-insensitive
	// substring test.
	Lenders []string `yaml:"lenders"`

	// MaxCompanies caps how many company numbers are read from the input.
	// Zero means the default; values above MaxCompaniesCap are rejected.
	MaxCompanies int `yaml:"max_companies"`

	// InputPath is used when no file argument is given on the command line.
	InputPath string `yaml:"input_path"`

	// InputEncoding is the character encoding of CSV input files.
	// Default: UTF-8
	InputEncoding string `yaml:"input_encoding"`

	// OutputPath is where the report is written. Empty means
	// matched_charges.xlsx in the user's Downloads directory.
	OutputPath string `yaml:"output_path"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration file, applies defaults, environment
// overrides and the caller's overrides in that order, and validates the
// result.
//
// PARAMETERS:
//   - path: The configuration file path.
//   - explicit: Whether the user asked for this path. A missing default file
//     is not an error; a missing explicit file is.
//   - overrides: Applied last, before validation. The cmd package passes
//     command-line flags here.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or validated.
func Load(path string, explicit bool, overrides ...func(*Config)) (*Config, error) {
	cfg, err := resolve(path, explicit)
	if err != nil {
		return nil, err
	}
	for _, override := range overrides {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// resolve is Load without overrides or validation.
func resolve(path string, explicit bool) (*Config, error) {
	cfg, err := LoadFile(path)
	switch {
	case errors.Is(err, ErrConfigNotFound) && !explicit:
		cfg = &Config{}
	case err != nil:
		return nil, err
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadFile parses the YAML file at path without applying defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.ChargeFilterMode == "" {
		c.ChargeFilterMode = ModeAll
	}
	if c.MaxCompanies == 0 {
		c.MaxCompanies = DefaultMaxCompanies
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// applyEnvOverrides lets the environment supply secrets and endpoints.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv(EnvAPIKey); key != "" {
		c.APIKey = key
	}
	if url := os.Getenv(EnvBaseURL); url != "" {
		c.BaseURL = url
	}
}

// Validate checks the configuration for values the run cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.MaxCompanies < 1 || c.MaxCompanies > MaxCompaniesCap {
		return fmt.Errorf("%w: %d", ErrInvalidMaxCompanies, c.MaxCompanies)
	}
	switch c.ChargeFilterMode {
	case ModeAll:
	case ModeLenderMatch:
		if len(c.ActiveLenders()) == 0 {
			return ErrNoLenders
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFilterMode, c.ChargeFilterMode)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

// ActiveLenders returns the lender roster with blank entries removed.
func (c *Config) ActiveLenders() []string {
	var lenders []string
	for _, l := range c.Lenders {
		if l = strings.TrimSpace(l); l != "" {
			lenders = append(lenders, l)
		}
	}
	return lenders
}
