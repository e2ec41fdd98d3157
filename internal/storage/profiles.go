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

// profileAttributes groups the remaining optional fields into one JSON
// column; the frequently-queried fields get their own columns.
type profileAttributes struct {
	MiddleName         string                   `json:"middle_name,omitempty"`
	Nickname           string                   `json:"nickname,omitempty"`
	SpiritualName      string                   `json:"spiritual_name,omitempty"`
	MotherName         string                   `json:"mother_name,omitempty"`
	FatherName         string                   `json:"father_name,omitempty"`
	Ancestry           string                   `json:"ancestry,omitempty"`
	Gender             model.Gender             `json:"gender,omitempty"`
	BloodType          model.BloodType          `json:"blood_type,omitempty"`
	DominantHand       model.Hand               `json:"dominant_hand,omitempty"`
	EyeColor           string                   `json:"eye_color,omitempty"`
	FirstBreath        *time.Time               `json:"first_breath,omitempty"`
	WeatherConditions  string                   `json:"weather_conditions,omitempty"`
	MoonPhase          string                   `json:"moon_phase,omitempty"`
	HospitalName       string                   `json:"hospital_name,omitempty"`
	FirstWord          string                   `json:"first_word,omitempty"`
	FirstSteps         *time.Time               `json:"first_steps,omitempty"`
	LoveLanguage       model.LoveLanguage       `json:"love_language,omitempty"`
	CommunicationStyle model.CommunicationStyle `json:"communication_style,omitempty"`
	AttachmentStyle    model.AttachmentStyle    `json:"attachment_style,omitempty"`
}

// SaveProfile inserts or replaces a profile. The updated-at timestamp
// is refreshed on every save.
func (s *SQLiteStorage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProfile(profile); err != nil {
		return err
	}

	profile.UpdatedAt = time.Now().UTC()

	attrs, err := json.Marshal(profileAttributes{
		MiddleName:         profile.MiddleName,
		Nickname:           profile.Nickname,
		SpiritualName:      profile.SpiritualName,
		MotherName:         profile.MotherName,
		FatherName:         profile.FatherName,
		Ancestry:           profile.Ancestry,
		Gender:             profile.Gender,
		BloodType:          profile.BloodType,
		DominantHand:       profile.DominantHand,
		EyeColor:           profile.EyeColor,
		FirstBreath:        profile.FirstBreath,
		WeatherConditions:  profile.WeatherConditions,
		MoonPhase:          profile.MoonPhase,
		HospitalName:       profile.HospitalName,
		FirstWord:          profile.FirstWord,
		FirstSteps:         profile.FirstSteps,
		LoveLanguage:       profile.LoveLanguage,
		CommunicationStyle: profile.CommunicationStyle,
		AttachmentStyle:    profile.AttachmentStyle,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal profile attributes: %w", err)
	}

	var birthPlace []byte
	if profile.BirthPlace != nil {
		birthPlace, err = json.Marshal(profile.BirthPlace)
		if err != nil {
			return fmt.Errorf("failed to marshal birth place: %w", err)
		}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO profiles
			(id, profile_name, created_at, updated_at, name, display_name, birth_datetime, birth_place, attributes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		profile.ID, profile.ProfileName, profile.CreatedAt, profile.UpdatedAt,
		nullString(profile.Name), nullString(profile.DisplayName),
		nullTime(profile.BirthDateTime), nullBytes(birthPlace), string(attrs))
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile loads a profile by id. Returns common.ErrNotFound when no
// row exists.
func (s *SQLiteStorage) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, profile_name, created_at, updated_at, name, display_name, birth_datetime, birth_place, attributes
		FROM profiles WHERE id = ?`, id)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// ListProfiles returns all profiles ordered by creation time.
func (s *SQLiteStorage) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, profile_name, created_at, updated_at, name, display_name, birth_datetime, birth_place, attributes
		FROM profiles ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var profiles []*model.Profile
	for rows.Next() {
		profile, scanErr := scanProfile(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", scanErr)
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

// DeleteProfile removes a profile. Deletion is always explicit; it is
// never triggered by the analysis pipeline.
func (s *SQLiteStorage) DeleteProfile(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("profile %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*model.Profile, error) {
	var (
		profile    model.Profile
		name       sql.NullString
		display    sql.NullString
		birth      sql.NullTime
		birthPlace sql.NullString
		attrsJSON  string
	)

	if err := row.Scan(&profile.ID, &profile.ProfileName, &profile.CreatedAt, &profile.UpdatedAt,
		&name, &display, &birth, &birthPlace, &attrsJSON); err != nil {
		return nil, err
	}

	profile.Name = name.String
	profile.DisplayName = display.String
	if birth.Valid {
		t := birth.Time
		profile.BirthDateTime = &t
	}
	if birthPlace.Valid && birthPlace.String != "" {
		var place model.BirthPlace
		if err := json.Unmarshal([]byte(birthPlace.String), &place); err != nil {
			return nil, fmt.Errorf("failed to unmarshal birth place: %w", err)
		}
		profile.BirthPlace = &place
	}

	var attrs profileAttributes
	if err := json.Unmarshal([]byte(attrsJSON), &attrs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile attributes: %w", err)
	}
	profile.MiddleName = attrs.MiddleName
	profile.Nickname = attrs.Nickname
	profile.SpiritualName = attrs.SpiritualName
	profile.MotherName = attrs.MotherName
	profile.FatherName = attrs.FatherName
	profile.Ancestry = attrs.Ancestry
	profile.Gender = attrs.Gender
	profile.BloodType = attrs.BloodType
	profile.DominantHand = attrs.DominantHand
	profile.EyeColor = attrs.EyeColor
	profile.FirstBreath = attrs.FirstBreath
	profile.WeatherConditions = attrs.WeatherConditions
	profile.MoonPhase = attrs.MoonPhase
	profile.HospitalName = attrs.HospitalName
	profile.FirstWord = attrs.FirstWord
	profile.FirstSteps = attrs.FirstSteps
	profile.LoveLanguage = attrs.LoveLanguage
	profile.CommunicationStyle = attrs.CommunicationStyle
	profile.AttachmentStyle = attrs.AttachmentStyle

	return &profile, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func nullBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
