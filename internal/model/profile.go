// Package model defines the core value records shared across the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Profile represents one person's biographical record. Only the four
// metadata fields are guaranteed to be set; everything else is optional
// and contributes to the derived Completion.
type Profile struct {
	ID          string
	ProfileName string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Core identity
	Name          string
	DisplayName   string
	BirthDateTime *time.Time
	BirthPlace    *BirthPlace

	// Additional names
	MiddleName    string
	Nickname      string
	SpiritualName string

	// Family and ancestry
	MotherName string
	FatherName string
	Ancestry   string

	// Physical and energetic
	Gender       Gender
	BloodType    BloodType
	DominantHand Hand
	EyeColor     string

	// Timing and environment
	FirstBreath       *time.Time
	WeatherConditions string
	MoonPhase         string
	HospitalName      string

	// Life patterns
	FirstWord  string
	FirstSteps *time.Time

	// Relationship attributes
	LoveLanguage       LoveLanguage
	CommunicationStyle CommunicationStyle
	AttachmentStyle    AttachmentStyle
}

// BirthPlace holds the birth location details used for astrological context.
type BirthPlace struct {
	City      string
	State     string
	Country   string
	Latitude  float64
	Longitude float64
	Timezone  string
}

// NewProfile creates a profile with freshly minted metadata.
func NewProfile(profileName string) *Profile {
	now := time.Now().UTC()
	return &Profile{
		ID:          uuid.NewString(),
		ProfileName: profileName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// BestName returns the name to address this person by in generated text.
func (p *Profile) BestName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.Name != "" {
		return p.Name
	}
	return p.ProfileName
}

// PairKey produces a stable key for a pair of profiles, independent of
// argument order. Used for report caching and deterministic scoring.
func PairKey(a, b *Profile) string {
	first, second := a.ID, b.ID
	if second < first {
		first, second = second, first
	}
	hash := sha256.Sum256([]byte(first + ":" + second))
	return fmt.Sprintf("%x", hash)
}

// Gender captures the energetic gender used by the tantric calculator.
type Gender string

// Gender values.
const (
	GenderUnknown        Gender = ""
	GenderMasculine      Gender = "masculine"
	GenderFeminine       Gender = "feminine"
	GenderNonBinary      Gender = "non_binary"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

// BloodType per Eastern spiritual systems.
type BloodType string

// BloodType values.
const (
	BloodTypeUnknown BloodType = ""
	BloodTypeA       BloodType = "a"
	BloodTypeB       BloodType = "b"
	BloodTypeAB      BloodType = "ab"
	BloodTypeO       BloodType = "o"
)

// Hand is the dominant hand, read as an energy-flow indicator.
type Hand string

// Hand values.
const (
	HandUnknown      Hand = ""
	HandLeft         Hand = "left"
	HandRight        Hand = "right"
	HandAmbidextrous Hand = "ambidextrous"
)

// LoveLanguage is the primary love language.
type LoveLanguage string

// LoveLanguage values.
const (
	LoveLanguageUnknown            LoveLanguage = ""
	LoveLanguageWordsOfAffirmation LoveLanguage = "words_of_affirmation"
	LoveLanguageActsOfService      LoveLanguage = "acts_of_service"
	LoveLanguageReceivingGifts     LoveLanguage = "receiving_gifts"
	LoveLanguageQualityTime        LoveLanguage = "quality_time"
	LoveLanguagePhysicalTouch      LoveLanguage = "physical_touch"
)

// CommunicationStyle describes how a person expresses themselves.
type CommunicationStyle string

// CommunicationStyle values.
const (
	CommunicationUnknown     CommunicationStyle = ""
	CommunicationDirect      CommunicationStyle = "direct"
	CommunicationIndirect    CommunicationStyle = "indirect"
	CommunicationEmotional   CommunicationStyle = "emotional"
	CommunicationAnalytical  CommunicationStyle = "analytical"
	CommunicationSupportive  CommunicationStyle = "supportive"
	CommunicationChallenging CommunicationStyle = "challenging"
)

// AttachmentStyle describes relationship attachment patterns.
type AttachmentStyle string

// AttachmentStyle values.
const (
	AttachmentUnknown            AttachmentStyle = ""
	AttachmentSecure             AttachmentStyle = "secure"
	AttachmentAnxiousPreoccupied AttachmentStyle = "anxious_preoccupied"
	AttachmentDismissiveAvoidant AttachmentStyle = "dismissive_avoidant"
	AttachmentDisorganized       AttachmentStyle = "disorganized"
)
