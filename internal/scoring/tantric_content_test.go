package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiritatlas/entwine/internal/model"
)

func contentLibrary() []model.TantricContent {
	return []model.TantricContent{
		{ID: "ks-001", Title: "Lotus Position", ContentType: model.ContentKamaSutra},
		{ID: "tp-001", Title: "Breath Synchronization", ContentType: model.ContentPractices},
		{ID: "rg-001", Title: "The Art of Presence", ContentType: model.ContentRobertGreene},
	}
}

func TestMatchTantricContentIsDeterministic(t *testing.T) {
	a, b := alice(), bob()
	library := contentLibrary()

	first := MatchTantricContent(a, b, library)
	second := MatchTantricContent(a, b, library)
	assert.Equal(t, first, second, "same couple and library must always score identically")

	swapped := MatchTantricContent(b, a, library)
	assert.Equal(t, first, swapped, "scores must not depend on argument order")
}

func TestMatchTantricContentScoresStayInBand(t *testing.T) {
	bands := map[model.TantricContentType][2]float64{
		model.ContentKamaSutra:     {70.0, 95.0},
		model.ContentPractices:     {75.0, 90.0},
		model.ContentRobertGreene:  {70.0, 85.0},
		model.ContentCompatibility: {80.0, 95.0},
	}

	library := []model.TantricContent{
		{ID: "c-1", ContentType: model.ContentKamaSutra},
		{ID: "c-2", ContentType: model.ContentPractices},
		{ID: "c-3", ContentType: model.ContentCompatibility},
	}

	matches := MatchTantricContent(alice(), bob(), library)
	require.Len(t, matches, 3)

	for _, match := range matches {
		band := bands[match.ContentType]
		assert.GreaterOrEqual(t, match.Score, band[0], "content %s below band", match.ContentID)
		assert.LessOrEqual(t, match.Score, band[1], "content %s above band", match.ContentID)
		assert.NotEmpty(t, match.Reason)
		assert.NotEmpty(t, match.Recommendation)
	}
}

func TestMatchTantricContentCapsAtThree(t *testing.T) {
	library := []model.TantricContent{
		{ID: "c-1", ContentType: model.ContentKamaSutra},
		{ID: "c-2", ContentType: model.ContentPractices},
		{ID: "c-3", ContentType: model.ContentRobertGreene},
		{ID: "c-4", ContentType: model.ContentCompatibility},
		{ID: "c-5", ContentType: model.ContentKamaSutra},
	}

	matches := MatchTantricContent(alice(), bob(), library)
	assert.Len(t, matches, 3)
}

func TestMatchTantricContentEmptyLibrary(t *testing.T) {
	assert.Empty(t, MatchTantricContent(alice(), bob(), nil))
}
