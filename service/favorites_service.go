package services

import (
	"fmt"
	"sync"

	"caffind-server/apperr"
	redisdao "caffind-server/dao/redis"
)

// FavoritesService mutates a single account's favorites list. Updates
// are read-modify-write against the account document, so a per-account
// lock serializes concurrent mutations to avoid lost updates.
type FavoritesService struct {
	accountDAO *redisdao.RedisAccountDAO

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFavoritesService constructs the service.
func NewFavoritesService(accountDAO *redisdao.RedisAccountDAO) *FavoritesService {
	return &FavoritesService{
		accountDAO: accountDAO,
		locks:      make(map[string]*sync.Mutex),
	}
}

// List returns the account's current favorites; absent list reads as
// empty, which is distinct from an authentication failure upstream.
func (s *FavoritesService) List(accountID string) ([]string, error) {
	acct, err := s.accountDAO.GetAccount(accountID)
	if err != nil {
		return nil, err
	}
	if acct.Favorites == nil {
		return []string{}, nil
	}
	return acct.Favorites, nil
}

// Add appends the cafe ID if not already present. Adding twice has the
// same effect as adding once.
func (s *FavoritesService) Add(accountID, cafeID string) ([]string, error) {
	if cafeID == "" {
		return nil, fmt.Errorf("cafe ID is required: %w", apperr.ErrValidation)
	}

	lock := s.lockFor(accountID)
	lock.Lock()
	defer lock.Unlock()

	acct, err := s.accountDAO.GetAccount(accountID)
	if err != nil {
		return nil, err
	}
	if !acct.HasFavorite(cafeID) {
		acct.Favorites = append(acct.Favorites, cafeID)
		if err := s.accountDAO.SaveAccount(*acct); err != nil {
			return nil, err
		}
	}
	return acct.Favorites, nil
}

// Remove deletes all occurrences of the cafe ID. Removing an absent ID
// is a no-op, not an error.
func (s *FavoritesService) Remove(accountID, cafeID string) ([]string, error) {
	if cafeID == "" {
		return nil, fmt.Errorf("cafe ID is required: %w", apperr.ErrValidation)
	}

	lock := s.lockFor(accountID)
	lock.Lock()
	defer lock.Unlock()

	acct, err := s.accountDAO.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	kept := acct.Favorites[:0]
	removed := false
	for _, id := range acct.Favorites {
		if id == cafeID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if removed {
		acct.Favorites = kept
		if err := s.accountDAO.SaveAccount(*acct); err != nil {
			return nil, err
		}
	}
	if acct.Favorites == nil {
		return []string{}, nil
	}
	return acct.Favorites, nil
}

func (s *FavoritesService) lockFor(accountID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[accountID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[accountID] = lock
	}
	return lock
}
