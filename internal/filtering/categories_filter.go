package filtering

import (
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/uni-matcher/internal/matching"
	"github.com/spigell/uni-matcher/internal/utils"
)

type categoriesFilter struct {
	enabled    bool
	reason     string
	raw        []string
	categories []matching.Category
	logger     *zap.Logger
}

// NewCategories creates a filter that keeps only the listed categories.
func NewCategories(categories []string, logger *zap.Logger) Filter {
	f := &categoriesFilter{enabled: true, logger: logger}
	for c := range utils.ToSet(categories) {
		f.raw = append(f.raw, strings.ToLower(c))
	}
	slices.Sort(f.raw)

	if len(f.raw) == 0 {
		f.Disable(notConfiguredReason)
	}
	return f
}

func (f *categoriesFilter) Name() string { return "categories" }

func (f *categoriesFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *categoriesFilter) IsEnabled() bool { return f.enabled }

func (f *categoriesFilter) Validate() error {
	f.categories = f.categories[:0]
	for _, raw := range f.raw {
		c, err := matching.ParseCategory(raw)
		if err != nil {
			return err
		}
		f.categories = append(f.categories, c)
	}
	return nil
}

func (f *categoriesFilter) Apply(ctx context.Context, r *matching.Results) (*matching.Results, Step, error) {
	return keep(ctx, r, f.logger, "excluding universities by category", func(m matching.MatchResult) bool {
		return slices.Contains(f.categories, m.Category)
	})
}

func (f *categoriesFilter) Status() Status {
	details := map[string]string{}
	if len(f.raw) > 0 {
		details["categories"] = strings.Join(f.raw, ",")
	}
	return Status{Name: f.Name(), Enabled: f.enabled, Reason: f.reason, Details: details}
}
