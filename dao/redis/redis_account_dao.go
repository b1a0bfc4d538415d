package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"caffind-server/apperr"
	"caffind-server/db"
	"caffind-server/models/account"
)

const ACCOUNTS_DOC_KEY_FORMAT_V1 = "accounts_doc_v1:%s"
const ACCOUNTS_EMAIL_KEY_FORMAT_V1 = "accounts_email_v1:%s"

// RedisAccountDAO handles account persistence over the document store.
// Email uniqueness is enforced through a secondary email->id key written
// with SetNX.
type RedisAccountDAO struct {
	store db.DocStore
}

// NewRedisAccountDAO initializes a RedisAccountDAO with the store.
func NewRedisAccountDAO(store db.DocStore) *RedisAccountDAO {
	return &RedisAccountDAO{store: store}
}

// CreateAccount persists a new account. Returns apperr.ErrConflict when
// the email is already registered.
func (dao *RedisAccountDAO) CreateAccount(a account.Account) error {
	emailKey := fmt.Sprintf(ACCOUNTS_EMAIL_KEY_FORMAT_V1, strings.ToLower(a.Email))
	created, err := dao.store.SetNX(emailKey, a.ID)
	if err != nil {
		return fmt.Errorf("failed to reserve email key: %w", err)
	}
	if !created {
		return fmt.Errorf("email %s: %w", a.Email, apperr.ErrConflict)
	}
	if err := dao.saveDoc(a); err != nil {
		// Release the reservation so a retry can succeed.
		_ = dao.store.Del(emailKey)
		return err
	}
	return nil
}

// GetAccount retrieves an account by ID. Returns apperr.ErrNotFound when
// no document exists.
func (dao *RedisAccountDAO) GetAccount(accountID string) (*account.Account, error) {
	docKey := fmt.Sprintf(ACCOUNTS_DOC_KEY_FORMAT_V1, accountID)
	data, err := dao.store.Get(docKey)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("account %s: %w", accountID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	var a account.Account
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account JSON: %w", err)
	}
	return &a, nil
}

// GetAccountByEmail resolves the email index and loads the account.
func (dao *RedisAccountDAO) GetAccountByEmail(email string) (*account.Account, error) {
	emailKey := fmt.Sprintf(ACCOUNTS_EMAIL_KEY_FORMAT_V1, strings.ToLower(email))
	accountID, err := dao.store.Get(emailKey)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("email %s: %w", email, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve email key: %w", err)
	}
	return dao.GetAccount(accountID)
}

// SaveAccount overwrites the stored account document.
func (dao *RedisAccountDAO) SaveAccount(a account.Account) error {
	return dao.saveDoc(a)
}

func (dao *RedisAccountDAO) saveDoc(a account.Account) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal account %s: %w", a.ID, err)
	}
	docKey := fmt.Sprintf(ACCOUNTS_DOC_KEY_FORMAT_V1, a.ID)
	if err := dao.store.Set(docKey, string(data)); err != nil {
		return fmt.Errorf("failed to set account doc: %w", err)
	}
	return nil
}
