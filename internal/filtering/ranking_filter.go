package filtering

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/uni-matcher/internal/matching"
)

type rankingRangeFilter struct {
	enabled bool
	reason  string
	// zero means unbounded
	min, max int
	logger   *zap.Logger
}

// NewRankingRange creates a filter that keeps universities ranked within [min, max].
func NewRankingRange(min, max int, logger *zap.Logger) Filter {
	f := &rankingRangeFilter{enabled: true, min: min, max: max, logger: logger}
	if min == 0 && max == 0 {
		f.Disable(notConfiguredReason)
	}
	return f
}

func (f *rankingRangeFilter) Name() string { return "ranking_range" }

func (f *rankingRangeFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *rankingRangeFilter) IsEnabled() bool { return f.enabled }

func (f *rankingRangeFilter) Validate() error {
	if f.min < 0 || f.max < 0 {
		return fmt.Errorf("ranking bounds must not be negative")
	}
	if f.max != 0 && f.min > f.max {
		return fmt.Errorf("ranking min %d is greater than max %d", f.min, f.max)
	}
	return nil
}

func (f *rankingRangeFilter) Apply(ctx context.Context, r *matching.Results) (*matching.Results, Step, error) {
	return keep(ctx, r, f.logger, "excluding universities outside ranking range", func(m matching.MatchResult) bool {
		if f.min != 0 && m.Ranking < f.min {
			return false
		}
		return f.max == 0 || m.Ranking <= f.max
	})
}

func (f *rankingRangeFilter) Status() Status {
	details := map[string]string{}
	if f.min != 0 {
		details["ranking_min"] = strconv.Itoa(f.min)
	}
	if f.max != 0 {
		details["ranking_max"] = strconv.Itoa(f.max)
	}
	return Status{Name: f.Name(), Enabled: f.enabled, Reason: f.reason, Details: details}
}
