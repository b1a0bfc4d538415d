package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"caffind-server/models"
	"caffind-server/server/httputil"
	"caffind-server/server/middleware"
	services "caffind-server/service"
)

// AccountHandler serves signup, login and profile endpoints.
type AccountHandler struct {
	accounts *services.AccountService
	log      zerolog.Logger
}

// NewAccountHandler constructs the handler.
func NewAccountHandler(accounts *services.AccountService, log zerolog.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, log: log}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /v1/accounts/register.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	acct, token, err := h.accounts.Register(req.Name, req.Email, req.Password)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"token": token,
		"user":  acct.Profile(),
	})
}

// Login handles POST /v1/accounts/login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	acct, token, err := h.accounts.Login(req.Email, req.Password)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  acct.Profile(),
	})
}

// Profile handles GET /v1/accounts/me.
func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	acct, ok := middleware.AccountFrom(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": acct.Profile()})
}

type preferencesRequest struct {
	Preferences models.Preferences `json:"preferences"`
}

// UpdatePreferences handles PUT /v1/accounts/me/preferences. Provided
// fields overlay the stored preference-set; omitted fields keep their
// previous values.
func (h *AccountHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	acct, ok := middleware.AccountFrom(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req preferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	prefs, err := h.accounts.UpdatePreferences(acct.ID, req.Preferences)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to update preferences")
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"preferences": prefs})
}
