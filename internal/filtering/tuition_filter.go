package filtering

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/uni-matcher/internal/matching"
)

type maxTuitionFilter struct {
	enabled bool
	reason  string
	max     int
	logger  *zap.Logger
}

// NewMaxTuition creates a filter that drops universities above the tuition cap (USD per year).
func NewMaxTuition(max int, logger *zap.Logger) Filter {
	f := &maxTuitionFilter{enabled: true, max: max, logger: logger}
	if max == 0 {
		f.Disable(notConfiguredReason)
	}
	return f
}

func (f *maxTuitionFilter) Name() string { return "max_tuition" }

func (f *maxTuitionFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *maxTuitionFilter) IsEnabled() bool { return f.enabled }

func (f *maxTuitionFilter) Validate() error {
	if f.max < 0 {
		return fmt.Errorf("max tuition must not be negative, got %d", f.max)
	}
	return nil
}

func (f *maxTuitionFilter) Apply(ctx context.Context, r *matching.Results) (*matching.Results, Step, error) {
	return keep(ctx, r, f.logger, "excluding universities above tuition cap", func(m matching.MatchResult) bool {
		return m.TuitionUSD <= f.max
	})
}

func (f *maxTuitionFilter) Status() Status {
	details := map[string]string{}
	if f.max != 0 {
		details["max_tuition"] = strconv.Itoa(f.max)
	}
	return Status{Name: f.Name(), Enabled: f.enabled, Reason: f.reason, Details: details}
}
