package catalog

import (
	"fmt"
	"slices"
	"strings"
)

const (
	TypePublic  = "public"
	TypePrivate = "private"
)

type University struct {
	ID             string       `json:"id" mapstructure:"id"`
	Name           string       `json:"name" mapstructure:"name"`
	Country        string       `json:"country" mapstructure:"country"`
	Location       string       `json:"location" mapstructure:"location"`
	Ranking        int          `json:"ranking" mapstructure:"ranking"`
	TuitionUSD     int          `json:"tuition_usd" mapstructure:"tuition-usd"`
	AcceptanceRate float64      `json:"acceptance_rate" mapstructure:"acceptance-rate"`
	Requirements   Requirements `json:"requirements" mapstructure:"requirements"`
	StrongMajors   []string     `json:"strong_majors" mapstructure:"strong-majors"`
	Description    string       `json:"description" mapstructure:"description"`
	Type           string       `json:"type" mapstructure:"type"`
}

// Requirements are the minimum thresholds an applicant is compared against.
type Requirements struct {
	MinGPA   float64 `json:"min_gpa" mapstructure:"min-gpa"`
	MinTOEFL float64 `json:"min_toefl" mapstructure:"min-toefl"`
	MinSAT   float64 `json:"min_sat" mapstructure:"min-sat"`
}

// HasStrongMajor reports whether the major is listed verbatim among the strong majors.
func (u *University) HasStrongMajor(major string) bool {
	return slices.Contains(u.StrongMajors, major)
}

func (u *University) IsPrivate() bool {
	return u.Type == TypePrivate
}

func (u *University) validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("university id is required")
	}
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("university %s: name is required", u.ID)
	}
	if !(u.Requirements.MinGPA > 0 && u.Requirements.MinGPA <= 4) {
		return fmt.Errorf("university %s: min-gpa must be in (0, 4.0], got %v", u.ID, u.Requirements.MinGPA)
	}
	if !(u.Requirements.MinTOEFL > 0 && u.Requirements.MinTOEFL <= 120) {
		return fmt.Errorf("university %s: min-toefl must be in (0, 120], got %v", u.ID, u.Requirements.MinTOEFL)
	}
	if !(u.Requirements.MinSAT >= 400 && u.Requirements.MinSAT <= 1600) {
		return fmt.Errorf("university %s: min-sat must be in [400, 1600], got %v", u.ID, u.Requirements.MinSAT)
	}
	if !(u.AcceptanceRate >= 0 && u.AcceptanceRate <= 100) {
		return fmt.Errorf("university %s: acceptance-rate must be in [0, 100], got %v", u.ID, u.AcceptanceRate)
	}
	if u.Type != TypePublic && u.Type != TypePrivate {
		return fmt.Errorf("university %s: type must be %s or %s, got %q", u.ID, TypePublic, TypePrivate, u.Type)
	}
	return nil
}
