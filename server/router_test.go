package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caffind-server/api/ranker"
	"caffind-server/auth"
	"caffind-server/catalog"
	redisdao "caffind-server/dao/redis"
	"caffind-server/db"
	"caffind-server/server/handlers"
	"caffind-server/server/middleware"
	services "caffind-server/service"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	store := db.NewMockDocStore(context.Background())
	cafeDAO := redisdao.NewRedisCafeDAO(store)
	accountDAO := redisdao.NewRedisAccountDAO(store)
	for _, c := range catalog.Seed() {
		require.NoError(t, cafeDAO.UpsertCafe(c))
	}

	log := zerolog.Nop()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	rk := ranker.NewFallbackRanker(nil, log)

	recommendations := services.NewRecommendationService(cafeDAO, rk, log)
	favorites := services.NewFavoritesService(accountDAO)
	accounts := services.NewAccountService(accountDAO, tokens, log)
	seeder := services.NewSeedService(cafeDAO, "", log)

	authMW := middleware.NewAuthMiddleware(tokens, accountDAO, log)
	muxRouter := mux.NewRouter()
	router := NewRouter(
		handlers.NewRecommendationHandler(recommendations, log),
		handlers.NewCatalogHandler(recommendations, seeder, log),
		handlers.NewFavoritesHandler(favorites, log),
		handlers.NewAccountHandler(accounts, log),
		authMW,
		muxRouter,
	)
	router.RegisterRoutes()
	return muxRouter
}

func TestRouter_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"recommendations", http.MethodPost, "/v1/cafes/recommendations", `{}`, http.StatusOK},
		{"list cafes", http.MethodGet, "/v1/cafes", "", http.StatusOK},
		{"seed", http.MethodPost, "/v1/catalog/seed", "", http.StatusOK},
		{"insights", http.MethodGet, "/v1/insights/ratings", "", http.StatusOK},
		{"ping", http.MethodGet, "/ping", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/v1/unknown", "", http.StatusNotFound},
		{"wrong method", http.MethodGet, "/v1/cafes/recommendations", "", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/accounts/me"},
		{http.MethodPut, "/v1/accounts/me/preferences"},
		{http.MethodGet, "/v1/favorites"},
		{http.MethodPost, "/v1/favorites"},
		{http.MethodDelete, "/v1/favorites"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(`{}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_AccountFlow(t *testing.T) {
	router := newTestRouter(t)

	do := func(method, path, body, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodPost, "/v1/accounts/register", `{"name":"Priya","email":"priya@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var registered struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	require.NotEmpty(t, registered.Token)

	rec = do(http.MethodGet, "/v1/accounts/me", "", registered.Token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodPost, "/v1/favorites", `{"cafeId":"2"}`, registered.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodGet, "/v1/favorites", "", registered.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"2"`)

	rec = do(http.MethodDelete, "/v1/favorites", `{"cafeId":"2"}`, registered.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodGet, "/v1/favorites", "", registered.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"2"`)
}
