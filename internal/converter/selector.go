package converter

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/company-charges-report/internal/config"
	"github.com/ginjaninja78/company-charges-report/internal/registry"
)

// ChargeSelector decides which of a company's charges make it into the
// report.
type ChargeSelector interface {
	// Name identifies the strategy in logs and summaries.
	Name() string

	// Select returns the charges to report, preserving order.
	Select(charges []registry.Charge) []registry.Charge
}

// NewSelector returns the strategy for a charge_filter_mode value.
func NewSelector(mode string, lenders []string) (ChargeSelector, error) {
	switch mode {
	case config.ModeAll, "":
		return AllCharges{}, nil
	case config.ModeLenderMatch:
		return NewLenderMatch(lenders), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidFilterMode, mode)
	}
}

// AllCharges reports every charge.
type AllCharges struct{}

// Name implements ChargeSelector.
func (AllCharges) Name() string { return config.ModeAll }

// Select implements ChargeSelector.
func (AllCharges) Select(charges []registry.Charge) []registry.Charge {
	return charges
}

// LenderMatch reports charges where at least one person entitled has a name
// containing one of the roster names, ignoring case.
type LenderMatch struct {
	lenders []string
}

// NewLenderMatch builds a LenderMatch over the given roster.
func NewLenderMatch(lenders []string) *LenderMatch {
	lower := make([]string, 0, len(lenders))
	for _, l := range lenders {
		if l = strings.TrimSpace(l); l != "" {
			lower = append(lower, strings.ToLower(l))
		}
	}
	return &LenderMatch{lenders: lower}
}

// Name implements ChargeSelector.
func (m *LenderMatch) Name() string { return config.ModeLenderMatch }

// Select implements ChargeSelector.
func (m *LenderMatch) Select(charges []registry.Charge) []registry.Charge {
	var selected []registry.Charge
	for _, c := range charges {
		if m.matches(c) {
			selected = append(selected, c)
		}
	}
	return selected
}

func (m *LenderMatch) matches(c registry.Charge) bool {
	for _, p := range c.PersonsEntitled {
		if p.Name == "" {
			continue
		}
		name := strings.ToLower(p.Name)
		for _, l := range m.lenders {
			if strings.Contains(name, l) {
				return true
			}
		}
	}
	return false
}
