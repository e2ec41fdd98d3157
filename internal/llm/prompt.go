package llm

import (
	"fmt"
	"strings"

	"github.com/spiritatlas/entwine/internal/model"
)

// profileSummary is the reduced profile view embedded in prompts. It
// keeps token usage down while preserving the fields the analysis
// actually consumes.
type profileSummary struct {
	Name               string
	BirthDate          string
	BirthTime          string
	BirthPlace         string
	Gender             string
	LoveLanguage       string
	CommunicationStyle string
	AttachmentStyle    string
}

func summarize(p *model.Profile) profileSummary {
	s := profileSummary{
		Name:               orUnknown(p.BestName()),
		Gender:             orUnknown(string(p.Gender)),
		LoveLanguage:       orUnknown(string(p.LoveLanguage)),
		CommunicationStyle: orUnknown(string(p.CommunicationStyle)),
		AttachmentStyle:    orUnknown(string(p.AttachmentStyle)),
		BirthDate:          "Unknown",
		BirthTime:          "Unknown",
		BirthPlace:         "Unknown",
	}
	if p.BirthDateTime != nil {
		s.BirthDate = p.BirthDateTime.Format("2006-01-02")
		s.BirthTime = p.BirthDateTime.Format("15:04")
	}
	if p.BirthPlace != nil {
		s.BirthPlace = p.BirthPlace.City + ", " + p.BirthPlace.Country
	}
	return s
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// buildPrompt assembles the compatibility analysis prompt: both profile
// summaries, all six calculated scores, and the JSON schema the parser
// expects back.
func buildPrompt(a, b *model.Profile, scores model.CompatibilityScores, depth model.AnalysisDepth) string {
	var analysisDepth string
	switch depth {
	case model.DepthQuick:
		analysisDepth = "brief overview"
	case model.DepthStandard:
		analysisDepth = "balanced analysis"
	case model.DepthComprehensive:
		analysisDepth = "deep, comprehensive analysis"
	default:
		analysisDepth = "balanced analysis"
	}

	summaryA := summarize(a)
	summaryB := summarize(b)

	var sb strings.Builder
	sb.WriteString("Analyze the compatibility between these two individuals and provide a ")
	sb.WriteString(analysisDepth)
	sb.WriteString(":\n\n")

	writeProfile(&sb, "Profile A", summaryA)
	writeProfile(&sb, "Profile B", summaryB)

	sb.WriteString("**Calculated Compatibility Scores:**\n")
	for _, d := range model.Dimensions() {
		fmt.Fprintf(&sb, "- %s: %.0f/100\n", capitalize(string(d)), scores.Get(d).Value)
	}
	fmt.Fprintf(&sb, "- Overall: %.0f/100\n\n", scores.Overall())

	sb.WriteString(`Please provide your analysis in the following JSON format:

{
  "numerology": {"analysis": "...", "keyPoints": ["..."], "warnings": ["..."], "recommendations": ["..."]},
  "astrology": {"analysis": "...", "keyPoints": ["..."], "warnings": [], "recommendations": ["..."]},
  "tantric": {"analysis": "...", "keyPoints": ["..."], "warnings": [], "recommendations": ["..."]},
  "emotional": {"analysis": "...", "keyPoints": ["..."], "warnings": ["..."], "recommendations": ["..."]},
  "communication": {"analysis": "...", "keyPoints": ["..."], "warnings": [], "recommendations": ["..."]},
  "karmic": {"analysis": "...", "keyPoints": ["..."], "warnings": [], "recommendations": ["..."]},
  "summary": "Overall relationship compatibility summary and guidance..."
}

Focus on practical insights, spiritual growth opportunities, and actionable recommendations.`)

	return sb.String()
}

func writeProfile(sb *strings.Builder, label string, s profileSummary) {
	fmt.Fprintf(sb, "**%s:**\n", label)
	fmt.Fprintf(sb, "- Name: %s\n", s.Name)
	fmt.Fprintf(sb, "- Birth: %s at %s\n", s.BirthDate, s.BirthTime)
	fmt.Fprintf(sb, "- Location: %s\n", s.BirthPlace)
	fmt.Fprintf(sb, "- Gender: %s\n", s.Gender)
	fmt.Fprintf(sb, "- Love Language: %s\n", s.LoveLanguage)
	fmt.Fprintf(sb, "- Communication: %s\n", s.CommunicationStyle)
	fmt.Fprintf(sb, "- Attachment: %s\n\n", s.AttachmentStyle)
}
