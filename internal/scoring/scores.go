package scoring

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/spiritatlas/entwine/internal/model"
)

// Calculate runs all six dimension calculators and returns the
// aggregate. The calculators are pure and independent, so they run in
// parallel; the aggregate is only returned once all six complete.
func Calculate(ctx context.Context, a, b *model.Profile) (model.CompatibilityScores, error) {
	var scores model.CompatibilityScores

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { scores.Numerology = Numerology(a, b); return nil })
	g.Go(func() error { scores.Astrology = Astrology(a, b); return nil })
	g.Go(func() error { scores.Tantric = Tantric(a, b); return nil })
	g.Go(func() error { scores.Energetic = Energetic(a, b); return nil })
	g.Go(func() error { scores.Communication = Communication(a, b); return nil })
	g.Go(func() error { scores.Emotional = Emotional(a, b); return nil })

	if err := g.Wait(); err != nil {
		return model.CompatibilityScores{}, err
	}

	if err := ctx.Err(); err != nil {
		return model.CompatibilityScores{}, err
	}

	return scores, nil
}
