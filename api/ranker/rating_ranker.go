package ranker

import (
	"context"
	"sort"

	"caffind-server/models"
	"caffind-server/models/cafe"
)

// RatingRanker orders cafes by rating descending. The sort is stable, so
// ties keep their prior relative order and two invocations over the same
// candidates produce identical output. It never errors.
type RatingRanker struct{}

// NewRatingRanker creates a RatingRanker.
func NewRatingRanker() *RatingRanker {
	return &RatingRanker{}
}

// Rank returns the cafes sorted by rating descending.
func (r *RatingRanker) Rank(ctx context.Context, cafes []cafe.Cafe, prefs models.Preferences) ([]cafe.Cafe, error) {
	ranked := make([]cafe.Cafe, len(cafes))
	copy(ranked, cafes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})
	return ranked, nil
}
