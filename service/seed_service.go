package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"caffind-server/catalog"
	redisdao "caffind-server/dao/redis"
	"caffind-server/models/cafe"
	"caffind-server/util"
)

// SeedService inserts the built-in catalog into an empty store. Seeding
// a non-empty store is a reported no-op; it never re-seeds.
type SeedService struct {
	cafeDAO     *redisdao.RedisCafeDAO
	catalogFile string
	log         zerolog.Logger
}

// NewSeedService constructs the service. When catalogFile is non-empty
// the seed records are read from that JSON file instead of the built-in
// dataset.
func NewSeedService(cafeDAO *redisdao.RedisCafeDAO, catalogFile string, log zerolog.Logger) *SeedService {
	return &SeedService{
		cafeDAO:     cafeDAO,
		catalogFile: catalogFile,
		log:         log,
	}
}

// SeedCatalog inserts the seed records if the store holds no cafes.
// Returns the number inserted; zero means the store was already seeded.
func (s *SeedService) SeedCatalog(ctx context.Context) (int, error) {
	count, err := s.cafeDAO.CountCafes()
	if err != nil {
		return 0, fmt.Errorf("failed to check existing catalog: %w", err)
	}
	if count > 0 {
		s.log.Info().Int("existing", count).Msg("catalog already seeded")
		return 0, nil
	}

	cafes, err := s.seedRecords()
	if err != nil {
		return 0, err
	}
	inserted := 0
	for _, c := range cafes {
		if err := s.cafeDAO.UpsertCafe(c); err != nil {
			return inserted, fmt.Errorf("failed to seed cafe %s: %w", c.ID, err)
		}
		inserted++
	}
	s.log.Info().Int("inserted", inserted).Msg("catalog seeded")
	return inserted, nil
}

func (s *SeedService) seedRecords() ([]cafe.Cafe, error) {
	if s.catalogFile == "" {
		return catalog.Seed(), nil
	}
	cafes, err := util.ReadCafesFromJSON(s.catalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", s.catalogFile, err)
	}
	return cafes, nil
}
