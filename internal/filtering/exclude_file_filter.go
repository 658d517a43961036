package filtering

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/uni-matcher/internal/matching"
)

type excludeFileFilter struct {
	enabled bool
	reason  string
	path    string
	logger  *zap.Logger
}

// NewExcludeFile creates a filter that removes universities listed in the exclude file.
func NewExcludeFile(path string, logger *zap.Logger) Filter {
	f := &excludeFileFilter{enabled: true, path: strings.TrimSpace(path), logger: logger}
	if f.path == "" {
		f.Disable(notConfiguredReason)
	}
	return f
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *excludeFileFilter) IsEnabled() bool { return f.enabled }

func (f *excludeFileFilter) Validate() error { return nil }

func (f *excludeFileFilter) Apply(ctx context.Context, r *matching.Results) (*matching.Results, Step, error) {
	excluded, err := matching.GetExcludedFromFile(f.path)
	if err != nil {
		return r, Step{}, fmt.Errorf("getting excluded universities from file: %w", err)
	}

	ids := excluded.IDs()
	return keep(ctx, r, f.logger, "excluding universities based on exclude file", func(m matching.MatchResult) bool {
		return !slices.Contains(ids, m.ID)
	})
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.enabled, Reason: f.reason, Details: details}
}
