// Package report renders match results as a downloadable markdown document.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/spigell/uni-matcher/internal/catalog"
	"github.com/spigell/uni-matcher/internal/language"
	"github.com/spigell/uni-matcher/internal/matching"
)

const fileDateLayout = "2006-01-02"

// FileName returns the report file name for the given day.
func FileName(generatedAt time.Time) string {
	return fmt.Sprintf("university-matches-%s.md", generatedAt.Format(fileDateLayout))
}

// Markdown renders the full report. results are expected in ranked order.
func Markdown(p matching.StudentProfile, results []matching.MatchResult, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("# University Matching Report\n\n")
	fmt.Fprintf(&b, "**Generated on:** %s\n\n", generatedAt.Format("January 2, 2006"))

	writeProfile(&b, p)

	categorized := matching.Partition(results)
	for _, category := range matching.Categories {
		items := categorized.ByCategory(category)
		if len(items) == 0 {
			continue
		}

		fmt.Fprintf(&b, "## %s\n\n", category.Title())
		for i, r := range items {
			writeUniversity(&b, i+1, r)
		}
	}

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "This report shows %d universities ranked by compatibility with your profile. ", len(results))
	b.WriteString("Focus on applying to a balanced mix of reach, target, and safety schools.\n\n")
	b.WriteString("**Legend:**\n")
	b.WriteString("- **Reach Schools:** Competitive admits (apply to 2-4)\n")
	b.WriteString("- **Target Schools:** Good fit schools (apply to 4-6)\n")
	b.WriteString("- **Safety Schools:** Likely admits (apply to 2-3)\n\n")
	b.WriteString("*This report is generated for reference only. Please consult with education counselors for personalized advice.*\n")

	return b.String()
}

// WriteMarkdown writes the report into dir and returns the file path.
func WriteMarkdown(dir string, p matching.StudentProfile, results []matching.MatchResult, generatedAt time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(dir, FileName(generatedAt))
	if err := os.WriteFile(path, []byte(Markdown(p, results, generatedAt)), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func writeProfile(b *strings.Builder, p matching.StudentProfile) {
	b.WriteString("## Student Profile\n\n")
	fmt.Fprintf(b, "- **GPA:** %.2f/4.0\n", p.GPA)

	_, high, _ := language.Range(p.LanguageTest.Type)
	fmt.Fprintf(b, "- **%s:** %s/%s", strings.ToUpper(string(p.LanguageTest.Type)), number(p.LanguageTest.Score), number(high))
	if p.LanguageTest.Type != language.TOEFL {
		fmt.Fprintf(b, " (TOEFL equivalent %s)", number(p.TOEFL()))
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "- **SAT:** %s/1600\n", number(p.SAT))
	fmt.Fprintf(b, "- **Intended Major:** %s\n\n", p.Major)
}

func writeUniversity(b *strings.Builder, n int, r matching.MatchResult) {
	fmt.Fprintf(b, "### %d. %s\n\n", n, r.Name)
	fmt.Fprintf(b, "- **Location:** %s, %s\n", r.Location, r.Country)
	fmt.Fprintf(b, "- **World Ranking:** #%d\n", r.Ranking)
	fmt.Fprintf(b, "- **Match Score:** %d%%\n", r.MatchScore)
	fmt.Fprintf(b, "- **Acceptance Rate:** %s%%\n", number(r.AcceptanceRate))
	fmt.Fprintf(b, "- **Annual Tuition:** $%s\n", humanize.Comma(int64(r.TuitionUSD)))
	fmt.Fprintf(b, "- **Type:** %s\n\n", TypeLabel(r.Type))

	b.WriteString("**Requirements:**\n")
	fmt.Fprintf(b, "- Minimum GPA: %s\n", number(r.Requirements.MinGPA))
	fmt.Fprintf(b, "- Minimum TOEFL: %s\n", number(r.Requirements.MinTOEFL))
	fmt.Fprintf(b, "- Minimum SAT: %s\n\n", number(r.Requirements.MinSAT))

	fmt.Fprintf(b, "**Strong Majors:** %s\n\n", strings.Join(r.StrongMajors, ", "))

	if len(r.Reasons) > 0 {
		b.WriteString("**Match Analysis:**\n")
		for _, reason := range r.Reasons {
			fmt.Fprintf(b, "- %s\n", reason)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(b, "**Description:** %s\n\n", r.Description)
	b.WriteString("---\n\n")
}

// TypeLabel returns the display label of a university type.
func TypeLabel(t string) string {
	if t == catalog.TypePrivate {
		return "Private"
	}
	return "Public"
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
