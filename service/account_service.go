package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"caffind-server/apperr"
	"caffind-server/auth"
	redisdao "caffind-server/dao/redis"
	"caffind-server/models"
	"caffind-server/models/account"
)

const minPasswordLength = 6

// AccountService handles signup, login and profile updates.
type AccountService struct {
	accountDAO *redisdao.RedisAccountDAO
	tokens     *auth.TokenManager
	log        zerolog.Logger
}

// NewAccountService constructs the service.
func NewAccountService(accountDAO *redisdao.RedisAccountDAO, tokens *auth.TokenManager, log zerolog.Logger) *AccountService {
	return &AccountService{
		accountDAO: accountDAO,
		tokens:     tokens,
		log:        log,
	}
}

// Register creates an account and issues a session token. The email is
// lowercased before storage; duplicates surface as apperr.ErrConflict.
func (s *AccountService) Register(name, email, password string) (*account.Account, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, "", fmt.Errorf("name is required: %w", apperr.ErrValidation)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("a valid email is required: %w", apperr.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, "", fmt.Errorf("password must be at least %d characters: %w", minPasswordLength, apperr.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	acct := account.Account{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Favorites:    []string{},
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.accountDAO.CreateAccount(acct); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(acct.ID, acct.Email)
	if err != nil {
		return nil, "", err
	}
	s.log.Info().Str("account_id", acct.ID).Msg("account registered")
	return &acct, token, nil
}

// Login verifies the credentials and issues a session token. Both an
// unknown email and a wrong password surface as apperr.ErrUnauthorized.
func (s *AccountService) Login(email, password string) (*account.Account, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("email and password are required: %w", apperr.ErrValidation)
	}

	acct, err := s.accountDAO.GetAccountByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized)
	}

	token, err := s.tokens.Issue(acct.ID, acct.Email)
	if err != nil {
		return nil, "", err
	}
	return acct, token, nil
}

// GetProfile loads an account by ID.
func (s *AccountService) GetProfile(accountID string) (*account.Account, error) {
	return s.accountDAO.GetAccount(accountID)
}

// UpdatePreferences overlays the provided fields onto the stored
// preference-set and persists the account.
func (s *AccountService) UpdatePreferences(accountID string, prefs models.Preferences) (models.Preferences, error) {
	acct, err := s.accountDAO.GetAccount(accountID)
	if err != nil {
		return models.Preferences{}, err
	}
	acct.Preferences = acct.Preferences.Merge(prefs)
	if err := s.accountDAO.SaveAccount(*acct); err != nil {
		return models.Preferences{}, err
	}
	return acct.Preferences, nil
}
