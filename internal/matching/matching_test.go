package matching

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/uni-matcher/internal/catalog"
	"github.com/spigell/uni-matcher/internal/language"
)

func testUniversity(id string, acceptanceRate float64) catalog.University {
	return catalog.University{
		ID:             id,
		Name:           "University " + id,
		Country:        "USA",
		Location:       "Somewhere, CA",
		Ranking:        10,
		TuitionUSD:     50000,
		AcceptanceRate: acceptanceRate,
		Requirements:   catalog.Requirements{MinGPA: 3.5, MinTOEFL: 90, MinSAT: 1300},
		StrongMajors:   []string{"Computer Science"},
		Type:           catalog.TypePrivate,
	}
}

func strongStudent() StudentProfile {
	return StudentProfile{
		GPA:          3.85,
		LanguageTest: language.Test{Type: language.TOEFL, Score: 100},
		SAT:          1400,
		Major:        "Computer Science",
	}
}

func TestScoreFullMatch(t *testing.T) {
	score, reasons := Score(testUniversity("a", 20), strongStudent())

	assert.Equal(t, 100, score)
	assert.Contains(t, reasons, "Strong TOEFL score (100 vs required 90)")
	assert.Contains(t, reasons, "Strong SAT score (1400 vs required 1300)")
	assert.Contains(t, reasons, "Strong program in Computer Science")
}

func TestScoreBelowRequirements(t *testing.T) {
	student := StudentProfile{
		GPA:          3.0,
		LanguageTest: language.Test{Type: language.TOEFL, Score: 80},
		SAT:          1200,
		Major:        "Film",
	}

	score, reasons := Score(testUniversity("a", 20), student)

	// 40*3.0/3.5 + 25*80/90 + 25*1200/1300 = 79.59
	assert.Equal(t, 80, score)
	assert.Equal(t, []string{
		"GPA below requirement (3.00 vs required 3.5)",
		"TOEFL below requirement (80 vs required 90)",
		"SAT below requirement (1200 vs required 1300)",
	}, reasons)
}

func TestScoreNearRequirementsHasNoReasons(t *testing.T) {
	student := StudentProfile{
		GPA:          3.4,
		LanguageTest: language.Test{Type: language.TOEFL, Score: 95},
		SAT:          1350,
		Major:        "Film",
	}

	score, reasons := Score(testUniversity("a", 20), student)

	// 40*3.4/3.5 + 25 + 25 = 88.86
	assert.Equal(t, 89, score)
	assert.Empty(t, reasons)
}

func TestScoreUsesLanguageEquivalent(t *testing.T) {
	student := strongStudent()
	student.LanguageTest = language.Test{Type: language.Duolingo, Score: 120}

	_, reasons := Score(testUniversity("a", 20), student)
	assert.Contains(t, reasons, "Strong TOEFL score (101 vs required 90)")

	student.LanguageTest = language.Test{Type: language.IELTS, Score: 6.5}
	_, reasons = Score(testUniversity("a", 20), student)
	assert.Contains(t, reasons, "TOEFL below requirement (78 vs required 90)")
}

func TestScoreMajorRequiresExactMatch(t *testing.T) {
	student := strongStudent()
	student.Major = "computer science"

	score, reasons := Score(testUniversity("a", 20), student)
	assert.Equal(t, 90, score)
	assert.NotContains(t, reasons, "Strong program in computer science")
}

func TestScoreIsClampedAndNeverNegative(t *testing.T) {
	u := testUniversity("a", 20)
	student := StudentProfile{
		GPA:          0.1,
		LanguageTest: language.Test{Type: language.TOEFL, Score: 0},
		SAT:          400,
		Major:        "Film",
	}

	score, _ := Score(u, student)
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name           string
		score          int
		acceptanceRate float64
		want           Category
	}{
		{name: "safety above rate gate", score: 85, acceptanceRate: 16, want: Safety},
		{name: "selective school stays reach", score: 85, acceptanceRate: 10, want: Reach},
		{name: "rate gate is strict", score: 100, acceptanceRate: 15, want: Reach},
		{name: "target ignores rate", score: 75, acceptanceRate: 3, want: Target},
		{name: "target lower bound", score: 70, acceptanceRate: 60, want: Target},
		{name: "target upper bound", score: 84, acceptanceRate: 60, want: Target},
		{name: "low score", score: 50, acceptanceRate: 90, want: Reach},
		{name: "just below target", score: 69, acceptanceRate: 90, want: Reach},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.score, tt.acceptanceRate))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(p *StudentProfile)
		majors  []string
		fields  []string
		message string
	}{
		{name: "valid", modify: func(*StudentProfile) {}},
		{
			name:    "gpa above range",
			modify:  func(p *StudentProfile) { p.GPA = 4.5 },
			fields:  []string{FieldGPA},
			message: "GPA must be between 0.0 and 4.0",
		},
		{
			name:   "gpa zero",
			modify: func(p *StudentProfile) { p.GPA = 0 },
			fields: []string{FieldGPA},
		},
		{
			name:   "gpa not a number",
			modify: func(p *StudentProfile) { p.GPA = math.NaN() },
			fields: []string{FieldGPA},
		},
		{
			name:    "sat not a number",
			modify:  func(p *StudentProfile) { p.SAT = math.NaN() },
			fields:  []string{FieldSAT},
			message: "SAT score must be between 400 and 1600",
		},
		{
			name:    "empty major",
			modify:  func(p *StudentProfile) { p.Major = "" },
			fields:  []string{FieldMajor},
			message: "Please select your intended major",
		},
		{
			name:    "unknown major",
			modify:  func(p *StudentProfile) { p.Major = "Alchemy" },
			majors:  []string{"Computer Science"},
			fields:  []string{FieldMajor},
			message: `major "Alchemy" is not recognized`,
		},
		{
			name:    "toefl out of range",
			modify:  func(p *StudentProfile) { p.LanguageTest.Score = 121 },
			fields:  []string{FieldLanguage},
			message: "TOEFL score must be between 0 and 120",
		},
		{
			name:    "duolingo out of range",
			modify:  func(p *StudentProfile) { p.LanguageTest = language.Test{Type: language.Duolingo, Score: 5} },
			fields:  []string{FieldLanguage},
			message: "DUOLINGO score must be between 10 and 160",
		},
		{
			name:   "unknown test type",
			modify: func(p *StudentProfile) { p.LanguageTest.Type = "gre" },
			fields: []string{FieldLanguage},
		},
		{
			name:    "sat out of range",
			modify:  func(p *StudentProfile) { p.SAT = 300 },
			fields:  []string{FieldSAT},
			message: "SAT score must be between 400 and 1600",
		},
		{
			name: "every field at once",
			modify: func(p *StudentProfile) {
				*p = StudentProfile{LanguageTest: language.Test{Type: language.IELTS, Score: 10}}
			},
			fields: []string{FieldGPA, FieldLanguage, FieldSAT, FieldMajor},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := strongStudent()
			tt.modify(&p)

			errs := Validate(p, tt.majors)
			if len(tt.fields) == 0 {
				assert.Empty(t, errs)
				return
			}

			assert.Equal(t, tt.fields, errs.Fields())
			if tt.message != "" {
				assert.Equal(t, tt.message, errs[0].Message)
			}
		})
	}
}

func TestComputeMatchesRejectsInvalidProfile(t *testing.T) {
	p := strongStudent()
	p.GPA = 4.5

	results, err := ComputeMatches(p, []catalog.University{testUniversity("a", 20)}, nil)
	require.Error(t, err)
	assert.Nil(t, results)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{FieldGPA}, verrs.Fields())
	assert.Contains(t, err.Error(), "GPA must be between 0.0 and 4.0")
}

func TestComputeMatchesRejectsNaNScores(t *testing.T) {
	p := strongStudent()
	p.SAT = math.NaN()

	results, err := ComputeMatches(p, []catalog.University{testUniversity("a", 20)}, nil)
	require.Error(t, err)
	assert.Nil(t, results)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{FieldSAT}, verrs.Fields())
}

func TestComputeMatchesScenario(t *testing.T) {
	for _, tt := range []struct {
		rate float64
		want Category
	}{
		{rate: 20, want: Safety},
		{rate: 10, want: Reach},
	} {
		results, err := ComputeMatches(strongStudent(), []catalog.University{testUniversity("a", tt.rate)}, nil)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 100, results[0].MatchScore)
		assert.Equal(t, tt.want, results[0].Category)
	}
}

func TestComputeMatchesSortsStable(t *testing.T) {
	weak := testUniversity("hard", 5)
	weak.Requirements = catalog.Requirements{MinGPA: 4.0, MinTOEFL: 115, MinSAT: 1580}
	weak.StrongMajors = nil

	universities := []catalog.University{
		testUniversity("first", 20),
		weak,
		testUniversity("second", 20),
		testUniversity("third", 20),
	}

	results, err := ComputeMatches(strongStudent(), universities, nil)
	require.NoError(t, err)
	require.Len(t, results, len(universities))

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"first", "second", "third", "hard"}, ids)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].MatchScore, results[i].MatchScore)
	}
}

func TestComputeMatchesFullMarksOnBundledCatalog(t *testing.T) {
	c, err := catalog.Load("")
	require.NoError(t, err)

	for _, u := range c.Universities() {
		student := StudentProfile{
			GPA:          u.Requirements.MinGPA,
			LanguageTest: language.Test{Type: language.TOEFL, Score: u.Requirements.MinTOEFL},
			SAT:          u.Requirements.MinSAT,
			Major:        u.StrongMajors[0],
		}

		score, _ := Score(u, student)
		assert.Equalf(t, 100, score, "university %s", u.ID)
	}
}

func TestComputeMatchesKeepsWholeCatalog(t *testing.T) {
	c, err := catalog.Load("")
	require.NoError(t, err)

	for _, s := range c.Samples() {
		results, err := ComputeMatches(FromSample(s), c.Universities(), c.Majors())
		require.NoErrorf(t, err, "sample %s", s.ID)
		assert.Len(t, results, c.Len())
	}
}

func TestParseCategory(t *testing.T) {
	got, err := ParseCategory("target")
	require.NoError(t, err)
	assert.Equal(t, Target, got)

	_, err = ParseCategory("likely")
	require.Error(t, err)
}
