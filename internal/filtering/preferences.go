package filtering

import "go.uber.org/zap"

// Preferences are the optional student preferences narrowing the results.
type Preferences struct {
	Countries  []string `mapstructure:"countries" json:"countries,omitempty"`
	MaxTuition int      `mapstructure:"max-tuition" json:"max_tuition,omitempty"`
	Types      []string `mapstructure:"types" json:"types,omitempty"`
	RankingMin int      `mapstructure:"ranking-min" json:"ranking_min,omitempty"`
	RankingMax int      `mapstructure:"ranking-max" json:"ranking_max,omitempty"`
	Categories []string `mapstructure:"categories" json:"categories,omitempty"`
}

// FromPreferences builds the filter chain. Steps without configuration are
// kept in the chain but disabled.
func FromPreferences(prefs *Preferences, excludeFile string, logger *zap.Logger) []Filter {
	if prefs == nil {
		prefs = &Preferences{}
	}

	return []Filter{
		NewExcludeFile(excludeFile, logger),
		NewCountries(prefs.Countries, logger),
		NewMaxTuition(prefs.MaxTuition, logger),
		NewUniversityTypes(prefs.Types, logger),
		NewRankingRange(prefs.RankingMin, prefs.RankingMax, logger),
		NewCategories(prefs.Categories, logger),
	}
}
