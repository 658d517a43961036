// Package matching scores universities against a student profile and labels
// them reach, target or safety.
package matching

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/spigell/uni-matcher/internal/catalog"
)

type Category string

const (
	Reach  Category = "reach"
	Target Category = "target"
	Safety Category = "safety"
)

// Categories in the order reports list them.
var Categories = []Category{Safety, Target, Reach}

const (
	gpaWeight      = 40.0
	languageWeight = 25.0
	satWeight      = 25.0
	majorWeight    = 10.0

	gpaStrong      = 1.1
	languageStrong = 1.1
	satStrong      = 1.05
	belowRatio     = 0.95

	safetyScore          = 85
	safetyAcceptanceRate = 15.0
	targetScore          = 70

	maxScore = 100
)

// MatchResult is a university with its computed fit.
type MatchResult struct {
	catalog.University
	MatchScore int      `json:"match_score"`
	Category   Category `json:"category"`
	Reasons    []string `json:"reasons"`
}

// ParseCategory resolves a category name.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if slices.Contains(Categories, c) {
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q (expected reach, target or safety)", s)
}

// Title is the plural heading used in listings.
func (c Category) Title() string {
	switch c {
	case Safety:
		return "Safety Schools"
	case Target:
		return "Target Schools"
	case Reach:
		return "Reach Schools"
	default:
		return string(c)
	}
}

type component struct {
	label    string
	student  float64
	required float64
	weight   float64
	strong   float64
	// format renders the student value in reasons.
	format func(float64) string
}

// Score computes the weighted match score of u for p together with the
// reasons behind it. The profile is assumed valid.
func Score(u catalog.University, p StudentProfile) (int, []string) {
	reasons := []string{}
	total := 0.0

	components := []component{
		{label: "GPA", student: p.GPA, required: u.Requirements.MinGPA, weight: gpaWeight, strong: gpaStrong, format: formatGPA},
		{label: "TOEFL", student: p.TOEFL(), required: u.Requirements.MinTOEFL, weight: languageWeight, strong: languageStrong, format: formatNumber},
		{label: "SAT", student: p.SAT, required: u.Requirements.MinSAT, weight: satWeight, strong: satStrong, format: formatNumber},
	}

	for _, c := range components {
		points, reason := c.score()
		total += points
		if reason != "" {
			reasons = append(reasons, reason)
		}
	}

	if u.HasStrongMajor(p.Major) {
		total += majorWeight
		reasons = append(reasons, fmt.Sprintf("Strong program in %s", p.Major))
	}

	score := int(math.Round(total))
	return min(maxScore, max(0, score)), reasons
}

func (c component) score() (float64, string) {
	ratio := c.student / c.required
	noun := c.label
	if c.label != "GPA" {
		noun += " score"
	}

	if ratio >= 1 {
		if ratio >= c.strong {
			return c.weight, fmt.Sprintf("Strong %s (%s vs required %s)", noun, c.format(c.student), formatNumber(c.required))
		}
		return c.weight, ""
	}

	points := math.Max(0, c.weight*ratio)
	if ratio < belowRatio {
		return points, fmt.Sprintf("%s below requirement (%s vs required %s)", c.label, c.format(c.student), formatNumber(c.required))
	}
	return points, ""
}

// Categorize labels a score. A high score only makes a school a safety when
// its acceptance rate is above 15%; otherwise it stays a reach.
func Categorize(score int, acceptanceRate float64) Category {
	if score >= safetyScore && acceptanceRate > safetyAcceptanceRate {
		return Safety
	}
	if score >= targetScore && score < safetyScore {
		return Target
	}
	return Reach
}

// ComputeMatches validates the profile and scores every university. On
// invalid input it returns ValidationErrors and no results. Results are sorted
// by score descending; ties keep catalog order.
func ComputeMatches(p StudentProfile, universities []catalog.University, majors []string) ([]MatchResult, error) {
	if errs := Validate(p, majors); len(errs) > 0 {
		return nil, errs
	}

	results := make([]MatchResult, 0, len(universities))
	for _, u := range universities {
		score, reasons := Score(u, p)
		results = append(results, MatchResult{
			University: u,
			MatchScore: score,
			Category:   Categorize(score, u.AcceptanceRate),
			Reasons:    reasons,
		})
	}

	slices.SortStableFunc(results, func(a, b MatchResult) int {
		return b.MatchScore - a.MatchScore
	})

	return results, nil
}

func formatGPA(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
