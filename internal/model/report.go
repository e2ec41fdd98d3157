package model

import "time"

// InsightCategory tags a qualitative insight.
type InsightCategory string

// InsightCategory values.
const (
	InsightSoulConnection     InsightCategory = "soul_connection"
	InsightCommunicationStyle InsightCategory = "communication_style"
	InsightPhysicalAttraction InsightCategory = "physical_attraction"
	InsightEnergeticHarmony   InsightCategory = "energetic_harmony"
)

// Importance ranks how load-bearing an insight is.
type Importance string

// Importance values.
const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// Insight is a qualitative finding triggered by a threshold rule.
type Insight struct {
	Title              string
	Description        string
	Category           InsightCategory
	Importance         Importance
	SupportingEvidence []string
}

// StrengthArea tags where a couple excels together.
type StrengthArea string

// StrengthArea values.
const (
	StrengthSpiritualConnection StrengthArea = "spiritual_connection"
	StrengthAstrologicalHarmony StrengthArea = "astrological_harmony"
	StrengthSacredSexuality     StrengthArea = "sacred_sexuality"
	StrengthEnergeticFlow       StrengthArea = "energetic_flow"
)

// Strength records an area of natural compatibility.
type Strength struct {
	Area        StrengthArea
	Title       string
	Description string
	Score       float64
	Benefits    []string
}

// ChallengeArea tags where a couple may struggle.
type ChallengeArea string

// ChallengeArea values.
const (
	ChallengeCommunication       ChallengeArea = "communication"
	ChallengeEmotionalProcessing ChallengeArea = "emotional_processing"
	ChallengeIntimacy            ChallengeArea = "intimacy"
)

// Severity grades a challenge.
type Severity string

// Severity values.
const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
)

// Challenge records a growth area with suggested solutions.
type Challenge struct {
	Area        ChallengeArea
	Title       string
	Description string
	Severity    Severity
	Solutions   []string
}

// Priority ranks a recommendation.
type Priority string

// Priority values.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is a suggested practice for the couple.
type Recommendation struct {
	Title       string
	Description string
	Priority    Priority
}

// Timeframe is the horizon an action item belongs to.
type Timeframe string

// Timeframe values.
const (
	TimeframeImmediate Timeframe = "immediate"
	TimeframeShortTerm Timeframe = "short_term"
	TimeframeLongTerm  Timeframe = "long_term"
)

// Difficulty grades how demanding an action item is.
type Difficulty string

// Difficulty values.
const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyAdvanced Difficulty = "advanced"
)

// ActionItem is one concrete step in the couple's action plan.
type ActionItem struct {
	Title           string
	Description     string
	Timeframe       Timeframe
	Frequency       string
	Difficulty      Difficulty
	ExpectedOutcome string
}

// ActionPlan groups action items by time horizon.
type ActionPlan struct {
	ImmediateActions []ActionItem
	ShortTermGoals   []ActionItem
	LongTermVision   []ActionItem
	KeyMilestones    []string
}

// AnalysisDepth selects how much AI analysis to request.
type AnalysisDepth string

// AnalysisDepth values.
const (
	DepthQuick         AnalysisDepth = "quick"
	DepthStandard      AnalysisDepth = "standard"
	DepthComprehensive AnalysisDepth = "comprehensive"
)

// AIDimensionInsight is the AI's take on one compatibility dimension.
type AIDimensionInsight struct {
	Dimension       Dimension
	Analysis        string
	KeyPoints       []string
	Warnings        []string
	Recommendations []string
	Confidence      float64
}

// AIInsightBundle is the optional AI enrichment attached to a report.
// A nil bundle means the AI step was skipped or failed.
type AIInsightBundle struct {
	Numerology     *AIDimensionInsight
	Astrology      *AIDimensionInsight
	Tantric        *AIDimensionInsight
	Emotional      *AIDimensionInsight
	Communication  *AIDimensionInsight
	Karmic         *AIDimensionInsight
	OverallSummary string
	GeneratedAt    time.Time
	Provider       string
}

// CompatibilityReport is the immutable aggregate produced by one
// analysis run. Rule-based content is always populated regardless of
// whether the AI bundle is present.
type CompatibilityReport struct {
	ID                    string
	ProfileA              *Profile
	ProfileB              *Profile
	Scores                CompatibilityScores
	Insights              []Insight
	Strengths             []Strength
	Challenges            []Challenge
	Recommendations       []Recommendation
	ActionPlan            ActionPlan
	TantricMatches        []TantricMatch
	RelationshipDynamics  string
	OverallRecommendation string
	AIInsights            *AIInsightBundle
	GeneratedAt           time.Time
}
