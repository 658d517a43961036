package filtering

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/uni-matcher/internal/catalog"
	"github.com/spigell/uni-matcher/internal/matching"
	"github.com/spigell/uni-matcher/internal/utils"
)

type universityTypesFilter struct {
	enabled bool
	reason  string
	types   []string
	logger  *zap.Logger
}

// NewUniversityTypes creates a filter that keeps public and/or private universities.
func NewUniversityTypes(types []string, logger *zap.Logger) Filter {
	f := &universityTypesFilter{enabled: true, logger: logger}
	for t := range utils.ToSet(types) {
		f.types = append(f.types, strings.ToLower(t))
	}
	slices.Sort(f.types)

	if len(f.types) == 0 {
		f.Disable(notConfiguredReason)
	}
	return f
}

func (f *universityTypesFilter) Name() string { return "university_type" }

func (f *universityTypesFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *universityTypesFilter) IsEnabled() bool { return f.enabled }

func (f *universityTypesFilter) Validate() error {
	for _, t := range f.types {
		if t != catalog.TypePublic && t != catalog.TypePrivate {
			return fmt.Errorf("unknown university type %q (expected %s or %s)", t, catalog.TypePublic, catalog.TypePrivate)
		}
	}
	return nil
}

func (f *universityTypesFilter) Apply(ctx context.Context, r *matching.Results) (*matching.Results, Step, error) {
	return keep(ctx, r, f.logger, "excluding universities by type", func(m matching.MatchResult) bool {
		return slices.Contains(f.types, m.Type)
	})
}

func (f *universityTypesFilter) Status() Status {
	details := map[string]string{}
	if len(f.types) > 0 {
		details["types"] = strings.Join(f.types, ",")
	}
	return Status{Name: f.Name(), Enabled: f.enabled, Reason: f.reason, Details: details}
}
