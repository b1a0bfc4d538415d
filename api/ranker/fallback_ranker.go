package ranker

import (
	"context"

	"github.com/rs/zerolog"

	"caffind-server/models"
	"caffind-server/models/cafe"
)

// FallbackRanker delegates to a primary ranker and recovers from every
// failure with the deterministic rating sort. It never returns an error,
// so a misbehaving remote service can only degrade ordering, not fail
// the request.
type FallbackRanker struct {
	primary  Ranker
	fallback *RatingRanker
	log      zerolog.Logger
}

// NewFallbackRanker wraps primary; a nil primary means rating-sort only.
func NewFallbackRanker(primary Ranker, log zerolog.Logger) *FallbackRanker {
	return &FallbackRanker{
		primary:  primary,
		fallback: NewRatingRanker(),
		log:      log,
	}
}

// Rank tries the primary ranker and falls back to rating order on any
// error.
func (r *FallbackRanker) Rank(ctx context.Context, cafes []cafe.Cafe, prefs models.Preferences) ([]cafe.Cafe, error) {
	if r.primary != nil {
		ranked, err := r.primary.Rank(ctx, cafes, prefs)
		if err == nil {
			return ranked, nil
		}
		r.log.Warn().Err(err).Msg("remote ranking failed, falling back to rating sort")
	}
	return r.fallback.Rank(ctx, cafes, prefs)
}
