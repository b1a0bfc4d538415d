// Package middleware provides the token-authentication gate for
// account-scoped routes.
package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"caffind-server/apperr"
	"caffind-server/auth"
	redisdao "caffind-server/dao/redis"
	"caffind-server/models/account"
	"caffind-server/server/httputil"
)

type contextKey struct{}

var accountKey contextKey

// AuthMiddleware verifies the session token and loads the account it
// refers to before the wrapped handler runs.
type AuthMiddleware struct {
	tokens     *auth.TokenManager
	accountDAO *redisdao.RedisAccountDAO
	log        zerolog.Logger
}

// NewAuthMiddleware constructs the middleware.
func NewAuthMiddleware(tokens *auth.TokenManager, accountDAO *redisdao.RedisAccountDAO, log zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:     tokens,
		accountDAO: accountDAO,
		log:        log,
	}
}

// RequireAccount rejects requests without a valid token (401) and
// requests whose token refers to a vanished account (404, a distinct
// condition), then stashes the account in the request context.
func (m *AuthMiddleware) RequireAccount(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractToken(r)
		if tokenStr == "" {
			httputil.WriteError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		claims, err := m.tokens.Verify(tokenStr)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				httputil.WriteError(w, http.StatusUnauthorized, "token expired")
				return
			}
			httputil.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		acct, err := m.accountDAO.GetAccount(claims.Subject)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				httputil.WriteError(w, http.StatusNotFound, "account not found")
				return
			}
			m.log.Error().Err(err).Msg("failed to load account for token")
			httputil.WriteError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		ctx := context.WithValue(r.Context(), accountKey, acct)
		next(w, r.WithContext(ctx))
	}
}

// AccountFrom retrieves the authenticated account stored by
// RequireAccount.
func AccountFrom(ctx context.Context) (*account.Account, bool) {
	acct, ok := ctx.Value(accountKey).(*account.Account)
	return acct, ok
}
