package matching

import (
	"errors"

	"go.uber.org/zap"

	"github.com/spigell/uni-matcher/internal/catalog"
	"github.com/spigell/uni-matcher/internal/logger"
)

// Engine runs ComputeMatches against a loaded catalog and logs the outcome.
type Engine struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewEngine(c *catalog.Catalog, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{catalog: c, logger: log}
}

// Match scores the whole catalog for the profile.
func (e *Engine) Match(p StudentProfile) (*Results, error) {
	log := e.logger.With(ProfileFields(p)...)

	results, err := ComputeMatches(p, e.catalog.Universities(), e.catalog.Majors())
	if err != nil {
		var verrs ValidationErrors
		if errors.As(err, &verrs) {
			log.Warn("student profile rejected", zap.Strings("fields", verrs.Fields()))
		}
		return nil, err
	}

	for _, r := range results {
		log.Debug("university scored",
			zap.String("university_id", r.ID),
			zap.Int("match_score", r.MatchScore),
			zap.String("category", string(r.Category)),
			zap.Float64("acceptance_rate", r.AcceptanceRate),
		)
	}

	summary := Partition(results).Summary()
	log.Info("matching completed",
		zap.Int("universities", summary.Total),
		zap.Int("safety", summary.Safety),
		zap.Int("target", summary.Target),
		zap.Int("reach", summary.Reach),
	)

	return &Results{Items: results}, nil
}

// ProfileFields describes a profile for structured logs.
func ProfileFields(p StudentProfile) []zap.Field {
	fields := []zap.Field{
		zap.Float64("gpa", p.GPA),
		zap.Float64("sat", p.SAT),
		zap.Float64("toefl_equivalent", p.TOEFL()),
	}
	return append(fields, logger.StringFields(
		logger.StringField{Key: "language_test", Value: string(p.LanguageTest.Type)},
		logger.StringField{Key: "major", Value: p.Major},
	)...)
}
