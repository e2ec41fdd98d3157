package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spiritatlas/entwine/internal/common"
	"github.com/spiritatlas/entwine/internal/model"
)

// storedReport is the serializable report shape persisted as JSON. It
// references profiles by id only; the full profile rows live in their
// own table.
type storedReport struct {
	ID                    string                     `json:"id"`
	ProfileAID            string                     `json:"profile_a_id"`
	ProfileBID            string                     `json:"profile_b_id"`
	Scores                model.CompatibilityScores  `json:"scores"`
	Insights              []model.Insight            `json:"insights"`
	Strengths             []model.Strength           `json:"strengths"`
	Challenges            []model.Challenge          `json:"challenges"`
	Recommendations       []model.Recommendation     `json:"recommendations"`
	ActionPlan            model.ActionPlan           `json:"action_plan"`
	TantricMatches        []model.TantricMatch       `json:"tantric_matches,omitempty"`
	RelationshipDynamics  string                     `json:"relationship_dynamics,omitempty"`
	OverallRecommendation string                     `json:"overall_recommendation,omitempty"`
	AIInsights            *model.AIInsightBundle     `json:"ai_insights,omitempty"`
	GeneratedAt           string                     `json:"generated_at"`
}

// SaveReport persists a report. The report JSON references profiles by
// id; profiles themselves are not copied.
func (s *SQLiteStorage) SaveReport(ctx context.Context, report *model.CompatibilityReport) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateReport(report); err != nil {
		return err
	}

	payload, err := json.Marshal(storedReport{
		ID:                    report.ID,
		ProfileAID:            report.ProfileA.ID,
		ProfileBID:            report.ProfileB.ID,
		Scores:                report.Scores,
		Insights:              report.Insights,
		Strengths:             report.Strengths,
		Challenges:            report.Challenges,
		Recommendations:       report.Recommendations,
		ActionPlan:            report.ActionPlan,
		TantricMatches:        report.TantricMatches,
		RelationshipDynamics:  report.RelationshipDynamics,
		OverallRecommendation: report.OverallRecommendation,
		AIInsights:            report.AIInsights,
		GeneratedAt:           report.GeneratedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO reports (id, profile_a_id, profile_b_id, generated_at, report)
		VALUES (?, ?, ?, ?, ?)`,
		report.ID, report.ProfileA.ID, report.ProfileB.ID, report.GeneratedAt, string(payload))
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetReport loads one report by id, resolving both profile references.
func (s *SQLiteStorage) GetReport(ctx context.Context, id string) (*model.CompatibilityReport, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT report FROM reports WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return s.hydrateReport(ctx, payload)
}

// GetReportsByProfile returns all reports involving a profile, newest
// first.
func (s *SQLiteStorage) GetReportsByProfile(ctx context.Context, profileID string) ([]*model.CompatibilityReport, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(profileID, "profileID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT report FROM reports
		WHERE profile_a_id = ? OR profile_b_id = ?
		ORDER BY generated_at DESC`, profileID, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var reports []*model.CompatibilityReport
	for rows.Next() {
		var payload string
		if scanErr := rows.Scan(&payload); scanErr != nil {
			return nil, fmt.Errorf("failed to scan report: %w", scanErr)
		}
		report, hydrateErr := s.hydrateReport(ctx, payload)
		if hydrateErr != nil {
			return nil, hydrateErr
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func (s *SQLiteStorage) hydrateReport(ctx context.Context, payload string) (*model.CompatibilityReport, error) {
	var stored storedReport
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	profileA, err := s.GetProfile(ctx, stored.ProfileAID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile A: %w", err)
	}
	profileB, err := s.GetProfile(ctx, stored.ProfileBID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile B: %w", err)
	}

	report := &model.CompatibilityReport{
		ID:                    stored.ID,
		ProfileA:              profileA,
		ProfileB:              profileB,
		Scores:                stored.Scores,
		Insights:              stored.Insights,
		Strengths:             stored.Strengths,
		Challenges:            stored.Challenges,
		Recommendations:       stored.Recommendations,
		ActionPlan:            stored.ActionPlan,
		TantricMatches:        stored.TantricMatches,
		RelationshipDynamics:  stored.RelationshipDynamics,
		OverallRecommendation: stored.OverallRecommendation,
		AIInsights:            stored.AIInsights,
	}
	if t, parseErr := time.Parse(time.RFC3339, stored.GeneratedAt); parseErr == nil {
		report.GeneratedAt = t
	}
	return report, nil
}
