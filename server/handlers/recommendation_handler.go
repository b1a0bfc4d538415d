package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"caffind-server/models"
	"caffind-server/server/httputil"
	services "caffind-server/service"
	"caffind-server/util"
)

// RecommendationHandler serves the preference search endpoint.
type RecommendationHandler struct {
	recommendations *services.RecommendationService
	log             zerolog.Logger
}

// NewRecommendationHandler constructs the handler.
func NewRecommendationHandler(svc *services.RecommendationService, log zerolog.Logger) *RecommendationHandler {
	return &RecommendationHandler{recommendations: svc, log: log}
}

// Recommend handles POST /v1/cafes/recommendations. An over-constrained
// preference-set returns the full catalog rather than an empty list.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var prefs models.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid preferences payload")
		return
	}

	cafes, err := h.recommendations.Recommend(r.Context(), prefs)
	if err != nil {
		h.log.Error().Err(err).Msg("recommendation pipeline failed")
		httputil.WriteDomainError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"cafes":     cafes,
		"count":     len(cafes),
		"shareText": util.ShareText(cafes),
	})
}
