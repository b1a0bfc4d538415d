package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"caffind-server/api/ranker"
	redisdao "caffind-server/dao/redis"
	"caffind-server/models"
	"caffind-server/models/cafe"
)

// RecommendationService runs the filter-then-rank pipeline over the
// stored catalog.
type RecommendationService struct {
	cafeDAO *redisdao.RedisCafeDAO
	ranker  ranker.Ranker
	now     func() time.Time
	log     zerolog.Logger
}

// NewRecommendationService constructs the service. The ranker is
// expected to be failure-wrapped (see ranker.FallbackRanker).
func NewRecommendationService(cafeDAO *redisdao.RedisCafeDAO, rk ranker.Ranker, log zerolog.Logger) *RecommendationService {
	return &RecommendationService{
		cafeDAO: cafeDAO,
		ranker:  rk,
		now:     time.Now,
		log:     log,
	}
}

// Recommend filters the catalog by the preferences, falls back to the
// full catalog when nothing matches, caps the candidates and ranks them.
func (s *RecommendationService) Recommend(ctx context.Context, prefs models.Preferences) ([]cafe.Cafe, error) {
	cafes, err := s.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}

	candidates := FilterCafes(cafes, prefs)
	if len(candidates) == 0 {
		// Never show nothing: an over-constrained search degrades to the
		// whole catalog instead of an empty page.
		s.log.Debug().Msg("no cafes matched preferences, using full catalog")
		candidates = cafes
	}
	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}

	ranked, err := s.ranker.Rank(ctx, candidates, prefs)
	if err != nil {
		return nil, fmt.Errorf("ranking failed: %w", err)
	}
	return ranked, nil
}

// ListCatalog returns every cafe with its open/closed flag recomputed
// from the operating-hours string at read time.
func (s *RecommendationService) ListCatalog(ctx context.Context) ([]cafe.Cafe, error) {
	cafes, err := s.cafeDAO.ListCafes()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	now := s.now()
	for i := range cafes {
		cafes[i].IsOpen = IsOpenAt(cafes[i].OpeningHours, now)
	}
	return cafes, nil
}
