package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/spigell/uni-matcher/internal/catalog"
	"github.com/spigell/uni-matcher/internal/language"
	"github.com/spigell/uni-matcher/internal/matching"
)

var languageFlags = []struct {
	flag string
	test language.Type
}{
	{flag: "toefl", test: language.TOEFL},
	{flag: "duolingo", test: language.Duolingo},
	{flag: "ielts", test: language.IELTS},
}

func addProfileFlags(flags *pflag.FlagSet) {
	flags.Float64("gpa", 0, "GPA on the 4.0 scale")
	flags.Float64("toefl", 0, "TOEFL iBT score (0-120)")
	flags.Float64("duolingo", 0, "Duolingo English Test score (10-160)")
	flags.Float64("ielts", 0, "IELTS band score (0-9)")
	flags.Float64("sat", 0, "SAT score (400-1600)")
	flags.String("major", "", "intended major, see the majors command")
	flags.String("sample", "", "start from a sample student, see the samples command")
}

// buildProfile layers the profile sources: config, then the sample, then explicit flags.
func buildProfile(flags *pflag.FlagSet, base *matching.StudentProfile, cat *catalog.Catalog, sampleID string) (matching.StudentProfile, error) {
	var p matching.StudentProfile
	if base != nil {
		p = *base
	}

	if sampleID != "" {
		sample := cat.FindSample(sampleID)
		if sample == nil {
			return p, fmt.Errorf("unknown sample %q (available: %v)", sampleID, cat.SampleIDs())
		}
		p = matching.FromSample(*sample)
	}

	if flags.Changed("gpa") {
		p.GPA, _ = flags.GetFloat64("gpa")
	}
	if flags.Changed("sat") {
		p.SAT, _ = flags.GetFloat64("sat")
	}
	if flags.Changed("major") {
		p.Major, _ = flags.GetString("major")
	}

	var changed []string
	for _, lf := range languageFlags {
		if !flags.Changed(lf.flag) {
			continue
		}
		changed = append(changed, lf.flag)
		score, _ := flags.GetFloat64(lf.flag)
		p.LanguageTest = language.Test{Type: lf.test, Score: score}
	}
	if len(changed) > 1 {
		return p, fmt.Errorf("only one language test can be given, got %v", changed)
	}

	if p.LanguageTest.Type == "" {
		p.LanguageTest.Type = language.TOEFL
	} else if t, err := language.ParseType(string(p.LanguageTest.Type)); err == nil {
		p.LanguageTest.Type = t
	}

	return p, nil
}
