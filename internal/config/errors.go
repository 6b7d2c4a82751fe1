package config

import "errors"

// Configuration errors. Validate returns these (wrapped where a value is
// worth reporting) so callers can use errors.Is.
var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrMissingAPIKey is returned when neither the file nor the environment
	// provides a registry API key.
	ErrMissingAPIKey = errors.New("missing API key: set api_key or COMPANIES_HOUSE_API_KEY")

	// ErrInvalidFilterMode is returned for an unknown charge_filter_mode.
	ErrInvalidFilterMode = errors.New("invalid charge_filter_mode: must be \"all\" or \"lenderMatch\"")

	// ErrNoLenders is returned when lenderMatch mode has an empty roster.
	ErrNoLenders = errors.New("charge_filter_mode lenderMatch requires at least one lender")

	// ErrInvalidMaxCompanies is returned when max_companies is outside
	// 1..MaxCompaniesCap.
	ErrInvalidMaxCompanies = errors.New("invalid max_companies: must be between 1 and 500")

	// ErrInvalidLogLevel is returned for an unknown log_level.
	ErrInvalidLogLevel = errors.New("invalid log_level")
)
