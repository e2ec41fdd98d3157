package export

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spiritatlas/entwine/internal/model"
)

// dimensionLabels maps dimensions to display names in canonical order.
var dimensionLabels = map[model.Dimension]string{
	model.DimensionNumerology:    "Numerology",
	model.DimensionAstrology:     "Astrology",
	model.DimensionTantric:       "Tantric",
	model.DimensionEnergetic:     "Energetic",
	model.DimensionCommunication: "Communication",
	model.DimensionEmotional:     "Emotional",
}

// Render produces the full styled terminal rendering of a report.
func Render(report *model.CompatibilityReport) string {
	var b strings.Builder

	title := fmt.Sprintf("%s + %s", report.ProfileA.BestName(), report.ProfileB.BestName())
	b.WriteString(FormatTitle("Compatibility Report"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(renderScores(report.Scores))
	b.WriteString("\n")

	overall := report.Scores.Overall()
	b.WriteString(BoldStyle.Render("Overall: "))
	b.WriteString(scoreStyle(overall).Render(fmt.Sprintf("%.1f", overall)))
	b.WriteString("\n\n")

	if report.RelationshipDynamics != "" {
		b.WriteString(RenderBox(HeartIcon+" Relationship Dynamics", report.RelationshipDynamics))
		b.WriteString("\n\n")
	}

	if len(report.Insights) > 0 {
		b.WriteString(TitleStyle.Render(StarIcon + " Insights"))
		b.WriteString("\n")
		for _, insight := range report.Insights {
			b.WriteString(BoldStyle.Render(insight.Title))
			b.WriteString("\n")
			b.WriteString("  " + insight.Description + "\n")
		}
		b.WriteString("\n")
	}

	if len(report.Strengths) > 0 {
		b.WriteString(TitleStyle.Render(SuccessIcon + " Strengths"))
		b.WriteString("\n")
		for _, strength := range report.Strengths {
			b.WriteString(SuccessStyle.Render(strength.Title))
			b.WriteString(SubtleStyle.Render(fmt.Sprintf(" (%.0f)", strength.Score)))
			b.WriteString("\n")
			b.WriteString("  " + strength.Description + "\n")
		}
		b.WriteString("\n")
	}

	if len(report.Challenges) > 0 {
		b.WriteString(TitleStyle.Render(WarningIcon + " Growth Areas"))
		b.WriteString("\n")
		for _, challenge := range report.Challenges {
			b.WriteString(severityStyle(challenge.Severity).Render(challenge.Title))
			b.WriteString(SubtleStyle.Render(" [" + string(challenge.Severity) + "]"))
			b.WriteString("\n")
			b.WriteString("  " + challenge.Description + "\n")
			for _, solution := range challenge.Solutions {
				b.WriteString(SubtleStyle.Render("  • " + solution))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if len(report.Recommendations) > 0 {
		b.WriteString(TitleStyle.Render(LotusIcon + " Recommendations"))
		b.WriteString("\n")
		for _, rec := range report.Recommendations {
			b.WriteString(BoldStyle.Render(rec.Title))
			b.WriteString(SubtleStyle.Render(" [" + string(rec.Priority) + "]"))
			b.WriteString("\n")
			b.WriteString("  " + rec.Description + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(renderActionPlan(report.ActionPlan))

	if len(report.TantricMatches) > 0 {
		b.WriteString(TitleStyle.Render(FlameIcon + " Suggested Content"))
		b.WriteString("\n")
		for _, match := range report.TantricMatches {
			b.WriteString(BoldStyle.Render(match.ContentID))
			b.WriteString(SubtleStyle.Render(fmt.Sprintf(" (%.0f)", match.Score)))
			b.WriteString("\n")
			b.WriteString("  " + match.Recommendation + "\n")
		}
		b.WriteString("\n")
	}

	if report.AIInsights != nil {
		b.WriteString(renderAIInsights(report.AIInsights))
	}

	if report.OverallRecommendation != "" {
		b.WriteString(RenderBox("Our Recommendation", report.OverallRecommendation))
		b.WriteString("\n")
	}

	return b.String()
}

func renderScores(scores model.CompatibilityScores) string {
	var rows []string
	for _, d := range model.Dimensions() {
		score := scores.Get(d)
		label := TableCellStyle.Render(fmt.Sprintf("%-14s", dimensionLabels[d]))
		value := scoreStyle(score.Value).Render(fmt.Sprintf("%5.1f", score.Value))
		rows = append(rows, label+value+"  "+bar(score.Value))
	}
	header := TableHeaderStyle.Render("Dimension      Score")
	return header + "\n" + strings.Join(rows, "\n") + "\n"
}

// bar draws a 20-cell score bar.
func bar(value float64) string {
	filled := int(value / 5)
	if filled > 20 {
		filled = 20
	}
	if filled < 0 {
		filled = 0
	}
	return scoreStyle(value).Render(strings.Repeat("█", filled)) +
		SubtleStyle.Render(strings.Repeat("░", 20-filled))
}

func renderActionPlan(plan model.ActionPlan) string {
	if len(plan.ImmediateActions) == 0 && len(plan.ShortTermGoals) == 0 &&
		len(plan.LongTermVision) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Action Plan"))
	b.WriteString("\n")
	writeActionGroup(&b, "Now", plan.ImmediateActions)
	writeActionGroup(&b, "Next 30 days", plan.ShortTermGoals)
	writeActionGroup(&b, "Long term", plan.LongTermVision)
	if len(plan.KeyMilestones) > 0 {
		b.WriteString(SubtitleStyle.Render("Milestones"))
		b.WriteString("\n")
		for _, milestone := range plan.KeyMilestones {
			b.WriteString("  " + SuccessIcon + " " + milestone + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func writeActionGroup(b *strings.Builder, heading string, items []model.ActionItem) {
	if len(items) == 0 {
		return
	}
	b.WriteString(SubtitleStyle.Render(heading))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString("  " + BoldStyle.Render(item.Title))
		if item.Frequency != "" {
			b.WriteString(SubtleStyle.Render(" — " + item.Frequency))
		}
		b.WriteString("\n")
		b.WriteString("    " + item.Description + "\n")
	}
}

func renderAIInsights(bundle *model.AIInsightBundle) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(StarIcon + " AI Analysis"))
	b.WriteString("\n")
	if bundle.OverallSummary != "" {
		b.WriteString(bundle.OverallSummary)
		b.WriteString("\n")
	}
	for _, entry := range []struct {
		label   string
		insight *model.AIDimensionInsight
	}{
		{"Numerology", bundle.Numerology},
		{"Astrology", bundle.Astrology},
		{"Tantric", bundle.Tantric},
		{"Emotional", bundle.Emotional},
		{"Communication", bundle.Communication},
		{"Karmic", bundle.Karmic},
	} {
		if entry.insight == nil || entry.insight.Analysis == "" {
			continue
		}
		b.WriteString(SubtitleStyle.Render(entry.label))
		b.WriteString("\n")
		b.WriteString("  " + entry.insight.Analysis + "\n")
		for _, point := range entry.insight.KeyPoints {
			b.WriteString(SubtleStyle.Render("  • " + point))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func severityStyle(severity model.Severity) lipgloss.Style {
	switch severity {
	case model.SeverityMajor:
		return ErrorStyle
	case model.SeverityModerate:
		return WarningStyle
	default:
		return InfoStyle
	}
}
