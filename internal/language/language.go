// Package language converts scores between TOEFL, Duolingo and IELTS scales.
package language

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Type string

const (
	TOEFL    Type = "toefl"
	Duolingo Type = "duolingo"
	IELTS    Type = "ielts"
)

const (
	minTOEFL    = 0
	maxTOEFL    = 120
	minDuolingo = 10
	maxDuolingo = 160
	minIELTS    = 0
	maxIELTS    = 9

	// IELTS is not in the table, it maps to TOEFL with a flat multiplier.
	ieltsToTOEFL = 12

	describeWindow = 2
)

const (
	DescBelowMinimum = "Below minimum admission level"
	DescIntermediate = "Intermediate level"
	DescElite        = "Elite university level"
)

// Test is a score on a specific scale.
type Test struct {
	Type  Type    `json:"type" mapstructure:"type"`
	Score float64 `json:"score" mapstructure:"score"`
}

func (t Test) String() string {
	return fmt.Sprintf("%s %s", strings.ToUpper(string(t.Type)), formatScore(t.Score))
}

// ParseType resolves a user supplied test name.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TOEFL:
		return TOEFL, nil
	case Duolingo, "det":
		return Duolingo, nil
	case IELTS:
		return IELTS, nil
	default:
		return "", fmt.Errorf("unknown language test %q (expected toefl, duolingo or ielts)", s)
	}
}

// Range returns the valid inclusive score range of the test type.
func Range(t Type) (float64, float64, bool) {
	switch t {
	case TOEFL:
		return minTOEFL, maxTOEFL, true
	case Duolingo:
		return minDuolingo, maxDuolingo, true
	case IELTS:
		return minIELTS, maxIELTS, true
	default:
		return 0, 0, false
	}
}

// IsValid reports whether the score lies within the scale of its type.
func IsValid(score float64, t Type) bool {
	low, high, ok := Range(t)
	if !ok || math.IsNaN(score) {
		return false
	}
	return score >= low && score <= high
}

// Normalize maps the score onto [0,1]. Only meaningful for comparing two
// scores on different scales.
func Normalize(score float64, t Type) float64 {
	var v float64
	switch t {
	case TOEFL:
		v = score / maxTOEFL
	case Duolingo:
		v = (score - minDuolingo) / (maxDuolingo - minDuolingo)
	case IELTS:
		v = score / maxIELTS
	default:
		return 0
	}
	return clamp(v, 0, 1)
}

// Compare returns the difference of the normalized scores; positive when a is stronger.
func Compare(a, b Test) float64 {
	return Normalize(a.Score, a.Type) - Normalize(b.Score, b.Type)
}

// ToTOEFL returns the TOEFL equivalent of the score.
func ToTOEFL(score float64, t Type) float64 {
	switch t {
	case TOEFL:
		return score
	case Duolingo:
		return DuolingoToToefl(score)
	case IELTS:
		return ieltsAsTOEFL(score)
	default:
		return 0
	}
}

// ToDuolingo returns the Duolingo equivalent of the score.
func ToDuolingo(score float64, t Type) float64 {
	switch t {
	case Duolingo:
		return score
	case TOEFL:
		return ToeflToDuolingo(score)
	case IELTS:
		return ToeflToDuolingo(ieltsAsTOEFL(score))
	default:
		return minDuolingo
	}
}

// ToIELTS returns the IELTS band equivalent, rounded to the nearest half band.
func ToIELTS(score float64, t Type) float64 {
	if t == IELTS {
		return score
	}
	if _, _, ok := Range(t); !ok {
		return minIELTS
	}
	band := math.Round(ToTOEFL(score, t)/ieltsToTOEFL*2) / 2
	return clamp(band, minIELTS, maxIELTS)
}

// Convert returns the equivalent of score on the target scale.
func Convert(score float64, from, to Type) float64 {
	if from == to {
		return score
	}
	switch to {
	case TOEFL:
		return ToTOEFL(score, from)
	case Duolingo:
		return ToDuolingo(score, from)
	case IELTS:
		return ToIELTS(score, from)
	default:
		return 0
	}
}

// Describe returns the admission tier of the score.
func Describe(score float64, t Type) string {
	toefl := ToTOEFL(score, t)

	for _, entry := range table {
		if toefl >= entry.TOEFL-describeWindow && toefl <= entry.TOEFL+describeWindow {
			return entry.Description
		}
	}

	switch {
	case toefl < table[0].TOEFL:
		return DescBelowMinimum
	case toefl >= 110:
		return DescElite
	default:
		return DescIntermediate
	}
}

func ieltsAsTOEFL(score float64) float64 {
	return math.Round(score * ieltsToTOEFL)
}

func clamp(v, low, high float64) float64 {
	return math.Min(high, math.Max(low, v))
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
