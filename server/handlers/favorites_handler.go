package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"caffind-server/server/httputil"
	"caffind-server/server/middleware"
	services "caffind-server/service"
)

// FavoritesHandler serves the authenticated favorites endpoints.
type FavoritesHandler struct {
	favorites *services.FavoritesService
	log       zerolog.Logger
}

// NewFavoritesHandler constructs the handler.
func NewFavoritesHandler(favorites *services.FavoritesService, log zerolog.Logger) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites, log: log}
}

type favoriteRequest struct {
	CafeID string `json:"cafeId"`
}

// List handles GET /v1/favorites. An empty list is a valid response,
// not an error.
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	acct, ok := middleware.AccountFrom(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	favorites, err := h.favorites.List(acct.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list favorites")
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"favorites": favorites})
}

// Add handles POST /v1/favorites. Adding an already-favorited cafe is a
// no-op with the same response shape.
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	acct, ok := middleware.AccountFrom(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CafeID == "" {
		httputil.WriteError(w, http.StatusBadRequest, "cafe ID is required")
		return
	}
	favorites, err := h.favorites.Add(acct.ID, req.CafeID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to add favorite")
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"favorites": favorites})
}

// Remove handles DELETE /v1/favorites. Removing an absent ID succeeds
// with the unchanged list.
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	acct, ok := middleware.AccountFrom(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CafeID == "" {
		httputil.WriteError(w, http.StatusBadRequest, "cafe ID is required")
		return
	}
	favorites, err := h.favorites.Remove(acct.ID, req.CafeID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to remove favorite")
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"favorites": favorites})
}
