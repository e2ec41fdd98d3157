package llm

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"

	"github.com/spiritatlas/entwine/internal/model"
)

// summaryBudget caps the free-text fallback summary length.
const summaryBudget = 1000

// dimensionPayload mirrors the per-dimension JSON schema requested in
// the prompt.
type dimensionPayload struct {
	Analysis        string   `json:"analysis"`
	KeyPoints       []string `json:"keyPoints"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// insightsPayload mirrors the full response schema.
type insightsPayload struct {
	Numerology    *dimensionPayload `json:"numerology"`
	Astrology     *dimensionPayload `json:"astrology"`
	Tantric       *dimensionPayload `json:"tantric"`
	Emotional     *dimensionPayload `json:"emotional"`
	Communication *dimensionPayload `json:"communication"`
	Karmic        *dimensionPayload `json:"karmic"`
	Summary       string            `json:"summary"`
}

// parseInsights turns a raw completion into an insight bundle. Strict
// JSON is attempted first; on failure the candidate object is run
// through jsonrepair; if nothing parses, the entire response becomes a
// truncated free-text summary. This function never fails: malformed
// provider output only reduces the richness of the result.
func parseInsights(text string, confidence float64, provider string) *model.AIInsightBundle {
	if payload, ok := extractPayload(text); ok {
		return bundleFromPayload(payload, confidence, provider)
	}

	summary := strings.TrimSpace(text)
	if len(summary) > summaryBudget {
		summary = summary[:summaryBudget]
	}
	return &model.AIInsightBundle{
		OverallSummary: summary,
		GeneratedAt:    time.Now().UTC(),
		Provider:       provider,
	}
}

// extractPayload finds the outermost JSON object in the text and
// decodes it, repairing the candidate when strict decoding fails.
func extractPayload(text string) (insightsPayload, bool) {
	var payload insightsPayload

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return payload, false
	}
	candidate := text[start : end+1]

	if err := json.Unmarshal([]byte(candidate), &payload); err == nil {
		return payload, true
	}

	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return insightsPayload{}, false
	}
	if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
		return insightsPayload{}, false
	}
	return payload, true
}

func bundleFromPayload(payload insightsPayload, confidence float64, provider string) *model.AIInsightBundle {
	return &model.AIInsightBundle{
		Numerology:     dimensionInsight(model.DimensionNumerology, payload.Numerology, confidence),
		Astrology:      dimensionInsight(model.DimensionAstrology, payload.Astrology, confidence),
		Tantric:        dimensionInsight(model.DimensionTantric, payload.Tantric, confidence),
		Emotional:      dimensionInsight(model.DimensionEmotional, payload.Emotional, confidence),
		Communication:  dimensionInsight(model.DimensionCommunication, payload.Communication, confidence),
		Karmic:         karmicInsight(payload.Karmic, confidence),
		OverallSummary: payload.Summary,
		GeneratedAt:    time.Now().UTC(),
		Provider:       provider,
	}
}

func dimensionInsight(d model.Dimension, payload *dimensionPayload, confidence float64) *model.AIDimensionInsight {
	if payload == nil {
		return nil
	}
	return &model.AIDimensionInsight{
		Dimension:       d,
		Analysis:        payload.Analysis,
		KeyPoints:       cleanStrings(payload.KeyPoints),
		Warnings:        cleanStrings(payload.Warnings),
		Recommendations: cleanStrings(payload.Recommendations),
		Confidence:      confidence,
	}
}

// karmicInsight has no calculated counterpart; it carries its own label
// outside the six scored dimensions.
func karmicInsight(payload *dimensionPayload, confidence float64) *model.AIDimensionInsight {
	if payload == nil {
		return nil
	}
	return &model.AIDimensionInsight{
		Dimension:       "karmic",
		Analysis:        payload.Analysis,
		KeyPoints:       cleanStrings(payload.KeyPoints),
		Warnings:        cleanStrings(payload.Warnings),
		Recommendations: cleanStrings(payload.Recommendations),
		Confidence:      confidence,
	}
}

func cleanStrings(in []string) []string {
	var out []string
	for _, s := range in {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
