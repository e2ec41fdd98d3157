package export

import (
	"fmt"
	"strings"

	"github.com/spiritatlas/entwine/internal/model"
)

// PlainText produces an unstyled, copy-pasteable summary of a report,
// suitable for sharing outside the terminal.
func PlainText(report *model.CompatibilityReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Compatibility Report: %s + %s\n",
		report.ProfileA.BestName(), report.ProfileB.BestName())
	fmt.Fprintf(&b, "Generated %s\n\n", report.GeneratedAt.Format("January 2, 2006"))

	fmt.Fprintf(&b, "Overall score: %.1f/100\n\n", report.Scores.Overall())

	for _, d := range model.Dimensions() {
		fmt.Fprintf(&b, "  %-14s %.1f\n", dimensionLabels[d], report.Scores.Get(d).Value)
	}
	b.WriteString("\n")

	if len(report.Strengths) > 0 {
		b.WriteString("Strengths:\n")
		for _, strength := range report.Strengths {
			fmt.Fprintf(&b, "  + %s\n", strength.Title)
		}
		b.WriteString("\n")
	}

	if len(report.Challenges) > 0 {
		b.WriteString("Growth areas:\n")
		for _, challenge := range report.Challenges {
			fmt.Fprintf(&b, "  - %s (%s)\n", challenge.Title, challenge.Severity)
		}
		b.WriteString("\n")
	}

	if report.OverallRecommendation != "" {
		b.WriteString(report.OverallRecommendation)
		b.WriteString("\n")
	}

	return b.String()
}
