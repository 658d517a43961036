package filtering

import (
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/uni-matcher/internal/matching"
	"github.com/spigell/uni-matcher/internal/utils"
)

type countriesFilter struct {
	enabled   bool
	reason    string
	countries []string
	logger    *zap.Logger
}

// NewCountries creates a filter that keeps universities located in the given countries.
func NewCountries(countries []string, logger *zap.Logger) Filter {
	f := &countriesFilter{enabled: true, logger: logger}
	for country := range utils.ToSet(countries) {
		f.countries = append(f.countries, country)
	}
	slices.Sort(f.countries)

	if len(f.countries) == 0 {
		f.Disable(notConfiguredReason)
	}
	return f
}

func (f *countriesFilter) Name() string { return "countries" }

func (f *countriesFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *countriesFilter) IsEnabled() bool { return f.enabled }

func (f *countriesFilter) Validate() error { return nil }

func (f *countriesFilter) Apply(ctx context.Context, r *matching.Results) (*matching.Results, Step, error) {
	return keep(ctx, r, f.logger, "excluding universities by country", func(m matching.MatchResult) bool {
		return slices.ContainsFunc(f.countries, func(c string) bool {
			return strings.EqualFold(c, m.Country)
		})
	})
}

func (f *countriesFilter) Status() Status {
	details := map[string]string{}
	if len(f.countries) > 0 {
		details["countries"] = strings.Join(f.countries, ",")
	}
	return Status{Name: f.Name(), Enabled: f.enabled, Reason: f.reason, Details: details}
}
