package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullProfile populates every one of the 27 schema fields.
func fullProfile() *Profile {
	birth := time.Date(1990, 5, 15, 10, 0, 0, 0, time.UTC)
	firstSteps := birth.AddDate(1, 0, 0)
	p := NewProfile("complete")
	p.Name = "Alexandra Smith"
	p.DisplayName = "Alex"
	p.BirthDateTime = &birth
	p.BirthPlace = &BirthPlace{City: "Portland", Country: "USA"}
	p.MiddleName = "Rose"
	p.Nickname = "Lexi"
	p.SpiritualName = "Devi"
	p.MotherName = "Maria"
	p.FatherName = "John"
	p.Ancestry = "Celtic"
	p.Gender = GenderFeminine
	p.BloodType = BloodTypeO
	p.DominantHand = HandRight
	p.EyeColor = "green"
	p.FirstBreath = &birth
	p.WeatherConditions = "clear"
	p.MoonPhase = "waxing gibbous"
	p.HospitalName = "St. Mary's"
	p.FirstWord = "mama"
	p.FirstSteps = &firstSteps
	p.LoveLanguage = LoveLanguageQualityTime
	p.CommunicationStyle = CommunicationDirect
	p.AttachmentStyle = AttachmentSecure
	return p
}

func TestCalculateCompletionEmptyProfile(t *testing.T) {
	completion := CalculateCompletion(NewProfile("bare"))

	assert.Equal(t, TotalProfileFields, completion.TotalFields)
	assert.Equal(t, 4, completion.CompletedFields, "metadata always counts as complete")
	assert.Equal(t, TierBasic, completion.Tier)
	assert.InDelta(t, 14.8, completion.Percentage, 0.1)
	assert.Equal(t, []string{"name", "birthDateTime", "birthPlace"}, completion.MissingCriticalFields)
}

func TestCalculateCompletionFullProfile(t *testing.T) {
	completion := CalculateCompletion(fullProfile())

	assert.Equal(t, TotalProfileFields, completion.CompletedFields)
	assert.Equal(t, TierMaximum, completion.Tier)
	assert.InDelta(t, 100.0, completion.Percentage, 0.001)
	assert.Empty(t, completion.MissingCriticalFields)
}

func TestCompletionTiers(t *testing.T) {
	birth := time.Date(1990, 5, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		build     func() *Profile
		completed int
		tier      AccuracyTier
	}{
		{
			name:      "metadata only",
			build:     func() *Profile { return NewProfile("p") },
			completed: 4,
			tier:      TierBasic,
		},
		{
			name: "eight fields reach good",
			build: func() *Profile {
				p := NewProfile("p")
				p.Name = "Alexandra"
				p.DisplayName = "Alex"
				p.BirthDateTime = &birth
				p.BirthPlace = &BirthPlace{City: "Portland"}
				return p
			},
			completed: 8,
			tier:      TierGood,
		},
		{
			name: "sixteen fields reach excellent",
			build: func() *Profile {
				p := NewProfile("p")
				p.Name = "Alexandra"
				p.DisplayName = "Alex"
				p.BirthDateTime = &birth
				p.BirthPlace = &BirthPlace{City: "Portland"}
				p.MiddleName = "Rose"
				p.Nickname = "Lexi"
				p.SpiritualName = "Devi"
				p.MotherName = "Maria"
				p.FatherName = "John"
				p.Ancestry = "Celtic"
				p.EyeColor = "green"
				p.Gender = GenderFeminine
				return p
			},
			completed: 16,
			tier:      TierExcellent,
		},
		{
			name:      "every field reaches maximum",
			build:     fullProfile,
			completed: 27,
			tier:      TierMaximum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completion := CalculateCompletion(tt.build())
			require.Equal(t, tt.completed, completion.CompletedFields)
			assert.Equal(t, tt.tier, completion.Tier)
		})
	}
}
