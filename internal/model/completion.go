package model

// TotalProfileFields is the canonical field count of the profile schema:
// 4 metadata fields plus 23 optional fields.
const TotalProfileFields = 27

// AccuracyTier buckets a profile by how many fields are populated.
type AccuracyTier string

// AccuracyTier values, from least to most complete.
const (
	TierMinimal   AccuracyTier = "minimal"
	TierBasic     AccuracyTier = "basic"
	TierGood      AccuracyTier = "good"
	TierExcellent AccuracyTier = "excellent"
	TierMaximum   AccuracyTier = "maximum"
)

// Completion is the derived view of how filled-in a profile is. It is
// always recomputed from the profile, never stored independently.
type Completion struct {
	TotalFields           int
	CompletedFields       int
	Percentage            float64
	Tier                  AccuracyTier
	MissingCriticalFields []string
}

// CalculateCompletion counts populated fields against the canonical
// 27-field schema. The four metadata fields always count as complete.
// Name, birth date-time and birth place are the critical fields reported
// when absent.
func CalculateCompletion(p *Profile) Completion {
	completed := 4 // id, profileName, createdAt, updatedAt
	var missing []string

	if p.Name != "" {
		completed++
	} else {
		missing = append(missing, "name")
	}
	if p.DisplayName != "" {
		completed++
	}
	if p.BirthDateTime != nil {
		completed++
	} else {
		missing = append(missing, "birthDateTime")
	}
	if p.BirthPlace != nil {
		completed++
	} else {
		missing = append(missing, "birthPlace")
	}

	for _, s := range []string{
		p.MiddleName, p.Nickname, p.SpiritualName,
		p.MotherName, p.FatherName, p.Ancestry,
		p.EyeColor,
		p.WeatherConditions, p.MoonPhase, p.HospitalName,
		p.FirstWord,
	} {
		if s != "" {
			completed++
		}
	}

	if p.Gender != GenderUnknown {
		completed++
	}
	if p.BloodType != BloodTypeUnknown {
		completed++
	}
	if p.DominantHand != HandUnknown {
		completed++
	}
	if p.FirstBreath != nil {
		completed++
	}
	if p.FirstSteps != nil {
		completed++
	}
	if p.LoveLanguage != LoveLanguageUnknown {
		completed++
	}
	if p.CommunicationStyle != CommunicationUnknown {
		completed++
	}
	if p.AttachmentStyle != AttachmentUnknown {
		completed++
	}

	return Completion{
		TotalFields:           TotalProfileFields,
		CompletedFields:       completed,
		Percentage:            float64(completed) / float64(TotalProfileFields) * 100.0,
		Tier:                  tierForCount(completed),
		MissingCriticalFields: missing,
	}
}

func tierForCount(completed int) AccuracyTier {
	switch {
	case completed < 3:
		return TierMinimal
	case completed < 8:
		return TierBasic
	case completed < 16:
		return TierGood
	case completed < 24:
		return TierExcellent
	default:
		return TierMaximum
	}
}
