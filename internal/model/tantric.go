package model

// TantricContentType classifies a tantric content item.
type TantricContentType string

// TantricContentType values.
const (
	ContentKamaSutra     TantricContentType = "kama_sutra"
	ContentPractices     TantricContentType = "tantric_practices"
	ContentRobertGreene  TantricContentType = "robert_greene"
	ContentCompatibility TantricContentType = "compatibility"
)

// TantricContent is a library item that can be matched against a couple.
type TantricContent struct {
	ID          string
	Title       string
	ContentType TantricContentType
}

// TantricMatch scores one content item for a specific couple.
type TantricMatch struct {
	ContentID      string
	ContentType    TantricContentType
	Score          float64
	Reason         string
	Recommendation string
}
