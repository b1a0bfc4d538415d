// Package ranker orders recommendation candidates. The remote
// completion-backed implementation is optional; RatingRanker is the
// deterministic fallback.
package ranker

import (
	"context"

	"caffind-server/models"
	"caffind-server/models/cafe"
)

// Ranker returns the candidate cafes in a total order for the given
// preferences. Implementations must not reorder outside the candidate
// set or drop candidates.
type Ranker interface {
	Rank(ctx context.Context, cafes []cafe.Cafe, prefs models.Preferences) ([]cafe.Cafe, error)
}
