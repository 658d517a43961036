package matching

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spigell/uni-matcher/internal/catalog"
	"github.com/spigell/uni-matcher/internal/language"
)

const (
	FieldGPA      = "gpa"
	FieldLanguage = "language_test"
	FieldSAT      = "sat"
	FieldMajor    = "major"

	maxGPA = 4.0
	minSAT = 400
	maxSAT = 1600
)

type StudentProfile struct {
	GPA          float64       `json:"gpa" mapstructure:"gpa"`
	LanguageTest language.Test `json:"language_test" mapstructure:"language-test"`
	SAT          float64       `json:"sat" mapstructure:"sat"`
	Major        string        `json:"major" mapstructure:"major"`
}

// FromSample copies a catalog sample into a profile.
func FromSample(s catalog.Sample) StudentProfile {
	return StudentProfile{
		GPA:          s.Profile.GPA,
		LanguageTest: s.Profile.LanguageTest,
		SAT:          s.Profile.SAT,
		Major:        s.Profile.Major,
	}
}

// TOEFL returns the TOEFL equivalent of the profile's language test.
func (p StudentProfile) TOEFL() float64 {
	return language.ToTOEFL(p.LanguageTest.Score, p.LanguageTest.Type)
}

// ValidationError is a single failed profile check.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors lists every failed check of a profile.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Message)
	}
	return "invalid student profile: " + strings.Join(msgs, "; ")
}

// Fields returns the names of the failed fields in check order.
func (e ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, v := range e {
		fields = append(fields, v.Field)
	}
	return fields
}

// Validate checks every profile field and returns all violations at once.
// When majors is non-empty the major must also be one of them.
func Validate(p StudentProfile, majors []string) ValidationErrors {
	var errs ValidationErrors

	if !(p.GPA > 0 && p.GPA <= maxGPA) {
		errs = append(errs, ValidationError{Field: FieldGPA, Message: "GPA must be between 0.0 and 4.0"})
	}

	if low, high, ok := language.Range(p.LanguageTest.Type); !ok {
		errs = append(errs, ValidationError{
			Field:   FieldLanguage,
			Message: fmt.Sprintf("unknown language test type %q", p.LanguageTest.Type),
		})
	} else if !language.IsValid(p.LanguageTest.Score, p.LanguageTest.Type) {
		errs = append(errs, ValidationError{
			Field: FieldLanguage,
			Message: fmt.Sprintf("%s score must be between %s and %s",
				strings.ToUpper(string(p.LanguageTest.Type)), formatNumber(low), formatNumber(high)),
		})
	}

	if !(p.SAT >= minSAT && p.SAT <= maxSAT) {
		errs = append(errs, ValidationError{Field: FieldSAT, Message: "SAT score must be between 400 and 1600"})
	}

	major := strings.TrimSpace(p.Major)
	switch {
	case major == "":
		errs = append(errs, ValidationError{Field: FieldMajor, Message: "Please select your intended major"})
	case len(majors) > 0 && !slices.Contains(majors, p.Major):
		errs = append(errs, ValidationError{
			Field:   FieldMajor,
			Message: fmt.Sprintf("major %q is not recognized", p.Major),
		})
	}

	return errs
}
