package scoring

import (
	"hash/fnv"

	"github.com/spiritatlas/entwine/internal/model"
)

// maxTantricMatches caps how many content items one report scores.
const maxTantricMatches = 3

// contentBand is the score range for one content type.
type contentBand struct {
	lo, hi float64
}

func bandFor(t model.TantricContentType) contentBand {
	switch t {
	case model.ContentKamaSutra:
		return contentBand{70.0, 95.0}
	case model.ContentPractices:
		return contentBand{75.0, 90.0}
	case model.ContentRobertGreene:
		return contentBand{70.0, 85.0}
	case model.ContentCompatibility:
		return contentBand{80.0, 95.0}
	}
	return contentBand{70.0, 90.0}
}

// MatchTantricContent scores up to three content items for a couple.
// The score is a deterministic function of the pair key and the content
// id, mapped into the content type's band, so repeated runs over the
// same profiles always agree.
func MatchTantricContent(a, b *model.Profile, content []model.TantricContent) []model.TantricMatch {
	if len(content) > maxTantricMatches {
		content = content[:maxTantricMatches]
	}

	pairKey := model.PairKey(a, b)
	matches := make([]model.TantricMatch, 0, len(content))
	for _, item := range content {
		band := bandFor(item.ContentType)

		h := fnv.New64a()
		_, _ = h.Write([]byte(pairKey))
		_, _ = h.Write([]byte(item.ID))
		frac := float64(h.Sum64()%10000) / 10000.0

		matches = append(matches, model.TantricMatch{
			ContentID:      item.ID,
			ContentType:    item.ContentType,
			Score:          band.lo + frac*(band.hi-band.lo),
			Reason:         "Based on your combined energetic patterns and spiritual compatibility",
			Recommendation: contentRecommendation(item.ContentType),
		})
	}
	return matches
}

func contentRecommendation(t model.TantricContentType) string {
	switch t {
	case model.ContentKamaSutra:
		return "Explore these practices during your intimate moments for deeper connection"
	case model.ContentPractices:
		return "Incorporate these tantric techniques into your daily spiritual practice"
	case model.ContentRobertGreene:
		return "Apply these relationship strategies to enhance your connection"
	case model.ContentCompatibility:
		return "Use this compatibility insight to understand and improve your relationship dynamics"
	}
	return ""
}
