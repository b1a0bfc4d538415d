package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caffind-server/apperr"
	"caffind-server/db"
	"caffind-server/models/account"
)

func testAccount(id, email string) account.Account {
	return account.Account{
		ID:           id,
		Name:         "Priya",
		Email:        email,
		PasswordHash: "hashed",
		Favorites:    []string{},
	}
}

func TestRedisAccountDAO_CreateAndGet(t *testing.T) {
	dao := NewRedisAccountDAO(db.NewMockDocStore(context.Background()))

	want := testAccount("acc-1", "priya@example.com")
	require.NoError(t, dao.CreateAccount(want))

	got, err := dao.GetAccount("acc-1")
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestRedisAccountDAO_CreateDuplicateEmailConflicts(t *testing.T) {
	dao := NewRedisAccountDAO(db.NewMockDocStore(context.Background()))

	require.NoError(t, dao.CreateAccount(testAccount("acc-1", "priya@example.com")))

	err := dao.CreateAccount(testAccount("acc-2", "priya@example.com"))
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestRedisAccountDAO_EmailLookupIsCaseInsensitive(t *testing.T) {
	dao := NewRedisAccountDAO(db.NewMockDocStore(context.Background()))

	require.NoError(t, dao.CreateAccount(testAccount("acc-1", "priya@example.com")))

	got, err := dao.GetAccountByEmail("Priya@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", got.ID)

	err = dao.CreateAccount(testAccount("acc-2", "PRIYA@example.com"))
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestRedisAccountDAO_GetMissingAccountNotFound(t *testing.T) {
	dao := NewRedisAccountDAO(db.NewMockDocStore(context.Background()))

	_, err := dao.GetAccount("missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = dao.GetAccountByEmail("nobody@example.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRedisAccountDAO_SaveAccountOverwrites(t *testing.T) {
	dao := NewRedisAccountDAO(db.NewMockDocStore(context.Background()))

	a := testAccount("acc-1", "priya@example.com")
	require.NoError(t, dao.CreateAccount(a))

	a.Favorites = []string{"2", "21"}
	require.NoError(t, dao.SaveAccount(a))

	got, err := dao.GetAccount("acc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "21"}, got.Favorites)
}
