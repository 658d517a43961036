package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/uni-matcher/internal/catalog"
	"github.com/spigell/uni-matcher/internal/language"
	"github.com/spigell/uni-matcher/internal/matching"
)

func profileFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addProfileFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestBuildProfilePrecedence(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)

	base := &matching.StudentProfile{
		GPA:          3.1,
		LanguageTest: language.Test{Type: "DET", Score: 100},
		SAT:          1200,
		Major:        "Biology",
	}

	p, err := buildProfile(profileFlags(t), base, cat, "")
	require.NoError(t, err)
	assert.Equal(t, language.Duolingo, p.LanguageTest.Type)
	assert.Equal(t, 3.1, p.GPA)

	sample := cat.FindSample("strong")
	require.NotNil(t, sample)

	p, err = buildProfile(profileFlags(t, "--sat", "1500"), base, cat, "strong")
	require.NoError(t, err)
	assert.Equal(t, sample.Profile.GPA, p.GPA)
	assert.Equal(t, sample.Profile.Major, p.Major)
	assert.Equal(t, 1500.0, p.SAT)

	p, err = buildProfile(profileFlags(t, "--ielts", "7", "--major", "Physics"), base, cat, "")
	require.NoError(t, err)
	assert.Equal(t, language.Test{Type: language.IELTS, Score: 7}, p.LanguageTest)
	assert.Equal(t, "Physics", p.Major)
}

func TestBuildProfileErrors(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)

	_, err = buildProfile(profileFlags(t), nil, cat, "genius")
	require.Error(t, err)

	_, err = buildProfile(profileFlags(t, "--toefl", "100", "--ielts", "7"), nil, cat, "")
	require.Error(t, err)
}

func TestBuildProfileDefaultsToTOEFL(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)

	p, err := buildProfile(profileFlags(t, "--gpa", "3.5"), nil, cat, "")
	require.NoError(t, err)
	assert.Equal(t, language.TOEFL, p.LanguageTest.Type)
	assert.Equal(t, 3.5, p.GPA)
}
