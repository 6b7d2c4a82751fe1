// =============================================================================
// Company Charges Report - Converter
// =============================================================================
//
// The converter turns an ordered list of company numbers into report rows.
//
// PROCESSING STEPS (per company, strictly one company at a time):
//   1. Fetch the company's charges
//   2. Apply the configured ChargeSelector
//   3. If no charge remains, move on (profile and officers are not fetched)
//   4. Fetch the profile and the officers once
//   5. Build one row per selected charge
//
// FAILURE POLICY:
//   A failed lookup is logged with the company number and endpoint, counted,
//   and replaced with an empty value. It never stops the run and never
//   affects other companies. Only context cancellation ends the loop early.
//
// =============================================================================

package converter

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ginjaninja78/company-charges-report/internal/registry"
	"github.com/ginjaninja78/company-charges-report/internal/types"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result is the outcome of one run.
type Result struct {
	// RunID identifies the run in logs and summaries.
	RunID string

	// Rows are the report rows in input order.
	Rows []types.Row

	// Matches lists the companies that produced rows, in input order.
	Matches []Match

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// Match records one company that produced report rows.
type Match struct {
	CompanyNumber string
	CompanyName   string
	Charges       int
}

// ProcessingStats contains statistics about the run.
type ProcessingStats struct {
	// CompaniesChecked is the number of company numbers looked up.
	CompaniesChecked int

	// CompaniesMatched is the number of companies with at least one
	// selected charge.
	CompaniesMatched int

	// ChargesFound is the number of charges returned by the registry,
	// before selection.
	ChargesFound int

	// RowsCreated is the number of report rows.
	RowsCreated int

	// LookupFailures counts failed lookups per endpoint.
	LookupFailures map[registry.Endpoint]int

	// ProcessingTime is the time taken by the run.
	ProcessingTime time.Duration
}

// TotalFailures returns the number of failed lookups across endpoints.
func (s ProcessingStats) TotalFailures() int {
	n := 0
	for _, v := range s.LookupFailures {
		n += v
	}
	return n
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Registry is the set of lookups the converter needs.
// *registry.Client satisfies it.
type Registry interface {
	Charges(ctx context.Context, number string) ([]registry.Charge, error)
	Profile(ctx context.Context, number string) (registry.CompanyProfile, error)
	Officers(ctx context.Context, number string) ([]registry.Officer, error)
}

// Converter runs the lookup loop.
type Converter struct {
	registry Registry
	selector ChargeSelector
	logger   *zap.Logger

	// OnCompany, if set, is called before each company is looked up.
	// index is 1-based.
	OnCompany func(index, total int, number string)
}

// New creates a Converter. A nil selector reports all charges and a nil
// logger discards log output.
func New(reg Registry, selector ChargeSelector, logger *zap.Logger) *Converter {
	if selector == nil {
		selector = AllCharges{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		registry: reg,
		selector: selector,
		logger:   logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run looks up every company number in order and returns the accumulated
// rows. It returns early with ctx.Err() if the context is cancelled; rows
// gathered up to that point are discarded.
func (c *Converter) Run(ctx context.Context, numbers []string) (Result, error) {
	start := time.Now()
	res := Result{
		RunID: uuid.NewString(),
		Stats: ProcessingStats{LookupFailures: map[registry.Endpoint]int{}},
	}
	logger := c.logger.With(zap.String("run_id", res.RunID))
	logger.Info("run started",
		zap.Int("companies", len(numbers)),
		zap.String("charge_filter_mode", c.selector.Name()))

	for i, number := range numbers {
		if err := ctx.Err(); err != nil {
			logger.Warn("run interrupted", zap.Int("checked", res.Stats.CompaniesChecked), zap.Error(err))
			return Result{}, err
		}
		if c.OnCompany != nil {
			c.OnCompany(i+1, len(numbers), number)
		}
		c.processCompany(ctx, logger, number, &res)
	}

	res.Stats.RowsCreated = len(res.Rows)
	res.Stats.ProcessingTime = time.Since(start)
	logger.Info("run finished",
		zap.Int("checked", res.Stats.CompaniesChecked),
		zap.Int("matched", res.Stats.CompaniesMatched),
		zap.Int("rows", res.Stats.RowsCreated),
		zap.Int("lookup_failures", res.Stats.TotalFailures()),
		zap.Duration("elapsed", res.Stats.ProcessingTime))
	return res, nil
}

func (c *Converter) processCompany(ctx context.Context, logger *zap.Logger, number string, res *Result) {
	logger = logger.With(zap.String("company_number", number))
	res.Stats.CompaniesChecked++

	charges := c.lookupCharges(ctx, logger, number, &res.Stats)
	res.Stats.ChargesFound += len(charges)

	selected := c.selector.Select(charges)
	if len(selected) == 0 {
		logger.Debug("no charges selected", zap.Int("charges", len(charges)))
		return
	}

	profile := c.lookupProfile(ctx, logger, number, &res.Stats)
	officers := c.lookupOfficers(ctx, logger, number, &res.Stats)

	rows := BuildRows(number, selected, profile, officers)
	res.Rows = append(res.Rows, rows...)
	res.Matches = append(res.Matches, Match{
		CompanyNumber: number,
		CompanyName:   profile.CompanyName,
		Charges:       len(rows),
	})
	res.Stats.CompaniesMatched++
	logger.Debug("company matched", zap.Int("charges", len(selected)))
}

// =============================================================================
// DEGRADING LOOKUPS
// =============================================================================

func (c *Converter) lookupCharges(ctx context.Context, logger *zap.Logger, number string, stats *ProcessingStats) []registry.Charge {
	charges, err := c.registry.Charges(ctx, number)
	if err != nil {
		c.lookupFailed(logger, registry.EndpointCharges, err, stats)
		return nil
	}
	return charges
}

func (c *Converter) lookupProfile(ctx context.Context, logger *zap.Logger, number string, stats *ProcessingStats) registry.CompanyProfile {
	profile, err := c.registry.Profile(ctx, number)
	if err != nil {
		c.lookupFailed(logger, registry.EndpointProfile, err, stats)
		return registry.CompanyProfile{}
	}
	return profile
}

func (c *Converter) lookupOfficers(ctx context.Context, logger *zap.Logger, number string, stats *ProcessingStats) []registry.Officer {
	officers, err := c.registry.Officers(ctx, number)
	if err != nil {
		c.lookupFailed(logger, registry.EndpointOfficers, err, stats)
		return nil
	}
	return officers
}

func (c *Converter) lookupFailed(logger *zap.Logger, ep registry.Endpoint, err error, stats *ProcessingStats) {
	stats.LookupFailures[ep]++

	// Unknown or dissolved-and-removed numbers are common in prospect lists.
	var se *registry.StatusError
	if errors.As(err, &se) && se.NotFound() {
		logger.Info("company not found in registry", zap.String("endpoint", string(ep)))
		return
	}
	logger.Warn("registry lookup failed", zap.String("endpoint", string(ep)), zap.Error(err))
}
