package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/spigell/uni-matcher/internal/language"
	"github.com/spigell/uni-matcher/internal/matching"
	"github.com/spigell/uni-matcher/internal/report"
	"github.com/spigell/uni-matcher/internal/utils"
)

const maxDescriptionLength = 80

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	categoryStyles = map[matching.Category]lipgloss.Style{
		matching.Safety: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		matching.Target: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		matching.Reach:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	}
)

func renderProfile(w io.Writer, p matching.StudentProfile) {
	fmt.Fprintln(w, titleStyle.Render("Student profile"))
	fmt.Fprintf(w, "  GPA: %.2f  %s", p.GPA, p.LanguageTest)
	if p.LanguageTest.Type != language.TOEFL {
		fmt.Fprintf(w, " (TOEFL %.0f)", p.TOEFL())
	}
	fmt.Fprintf(w, "  SAT: %.0f  Major: %s\n\n", p.SAT, p.Major)
}

func renderSummary(w io.Writer, s matching.Summary) {
	fmt.Fprintf(w, "%s  %s  %s  %s\n\n",
		titleStyle.Render(fmt.Sprintf("%d universities", s.Total)),
		categoryStyles[matching.Safety].Render(fmt.Sprintf("safety: %d", s.Safety)),
		categoryStyles[matching.Target].Render(fmt.Sprintf("target: %d", s.Target)),
		categoryStyles[matching.Reach].Render(fmt.Sprintf("reach: %d", s.Reach)),
	)
}

func renderResults(w io.Writer, title string, items []matching.MatchResult) error {
	fmt.Fprintln(w, titleStyle.Render(title))
	if len(items) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  nothing to show"))
		fmt.Fprintln(w)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("#"),
		headerStyle.Render("University"),
		headerStyle.Render("Location"),
		headerStyle.Render("Rank"),
		headerStyle.Render("Score"),
		headerStyle.Render("Category"),
		headerStyle.Render("Tuition"),
	)
	for i, r := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t#%d\t%d%%\t%s\t$%s\n",
			i+1,
			r.Name,
			r.Location+", "+r.Country,
			r.Ranking,
			r.MatchScore,
			categoryStyles[r.Category].Render(string(r.Category)),
			humanize.Comma(int64(r.TuitionUSD)),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	return nil
}

func renderDetails(w io.Writer, r *matching.MatchResult) {
	fmt.Fprintln(w, titleStyle.Render(r.Name))
	fmt.Fprintf(w, "  %s, %s  #%d  %s  acceptance %.1f%%\n", r.Location, r.Country, r.Ranking, report.TypeLabel(r.Type), r.AcceptanceRate)
	fmt.Fprintf(w, "  Match score: %s\n",
		categoryStyles[r.Category].Render(fmt.Sprintf("%d%% (%s)", r.MatchScore, r.Category)))
	fmt.Fprintf(w, "  Requires GPA %.1f, TOEFL %.0f, SAT %.0f\n",
		r.Requirements.MinGPA, r.Requirements.MinTOEFL, r.Requirements.MinSAT)
	fmt.Fprintf(w, "  Strong majors: %s\n", strings.Join(r.StrongMajors, ", "))
	for _, reason := range r.Reasons {
		fmt.Fprintf(w, "  - %s\n", reason)
	}
	fmt.Fprintf(w, "  %s\n\n", mutedStyle.Render(utils.TruncateForLog(r.Description, maxDescriptionLength)))
}
