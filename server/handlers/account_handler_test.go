package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caffind-server/auth"
	redisdao "caffind-server/dao/redis"
	"caffind-server/db"
	"caffind-server/models/account"
	"caffind-server/server/middleware"
	services "caffind-server/service"
)

type accountFixture struct {
	handler *AccountHandler
	mw      *middleware.AuthMiddleware
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()
	accountDAO := redisdao.NewRedisAccountDAO(db.NewMockDocStore(context.Background()))
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return &accountFixture{
		handler: NewAccountHandler(services.NewAccountService(accountDAO, tokens, zerolog.Nop()), zerolog.Nop()),
		mw:      middleware.NewAuthMiddleware(tokens, accountDAO, zerolog.Nop()),
	}
}

type authResponse struct {
	Token string          `json:"token"`
	User  account.Profile `json:"user"`
}

func (f *accountFixture) register(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	f.handler.Register(rec, httptest.NewRequest(http.MethodPost, "/v1/accounts/register", strings.NewReader(body)))
	return rec
}

func TestRegister_Success(t *testing.T) {
	f := newAccountFixture(t)

	rec := f.register(t, `{"name":"Priya","email":"priya@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "priya@example.com", resp.User.Email)
	assert.Equal(t, []string{}, resp.User.Favorites)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestRegister_Validation(t *testing.T) {
	f := newAccountFixture(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"name":"Priya","password":"secret1"}`},
		{"short password", `{"name":"Priya","email":"priya@example.com","password":"abc"}`},
		{"missing name", `{"email":"priya@example.com","password":"secret1"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.register(t, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	f := newAccountFixture(t)

	rec := f.register(t, `{"name":"Priya","email":"priya@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.register(t, `{"name":"Other","email":"Priya@Example.com","password":"secret2"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_SuccessAndFailure(t *testing.T) {
	f := newAccountFixture(t)

	rec := f.register(t, `{"name":"Priya","email":"priya@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	login := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		f.handler.Login(rec, httptest.NewRequest(http.MethodPost, "/v1/accounts/login", strings.NewReader(body)))
		return rec
	}

	rec = login(`{"email":"priya@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	rec = login(`{"email":"priya@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = login(`{"email":"nobody@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileAndUpdatePreferences(t *testing.T) {
	f := newAccountFixture(t)

	rec := f.register(t, `{"name":"Priya","email":"priya@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var registered authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))

	authed := func(method, path, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
		r := httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Authorization", "Bearer "+registered.Token)
		rec := httptest.NewRecorder()
		f.mw.RequireAccount(h)(rec, r)
		return rec
	}

	rec = authed(http.MethodGet, "/v1/accounts/me", "{}", f.handler.Profile)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "priya@example.com")

	body := `{"preferences":{"mood":"relaxed","cuisine":"Indian"}}`
	rec = authed(http.MethodPut, "/v1/accounts/me/preferences", body, f.handler.UpdatePreferences)
	require.Equal(t, http.StatusOK, rec.Code)

	// A later partial update keeps earlier fields.
	body = `{"preferences":{"ambiance":"Cozy"}}`
	rec = authed(http.MethodPut, "/v1/accounts/me/preferences", body, f.handler.UpdatePreferences)
	require.Equal(t, http.StatusOK, rec.Code)
	var prefResp struct {
		Preferences struct {
			Mood     string `json:"mood"`
			Cuisine  string `json:"cuisine"`
			Ambiance string `json:"ambiance"`
		} `json:"preferences"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefResp))
	assert.Equal(t, "relaxed", prefResp.Preferences.Mood)
	assert.Equal(t, "Indian", prefResp.Preferences.Cuisine)
	assert.Equal(t, "Cozy", prefResp.Preferences.Ambiance)
}
