package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"caffind-server/server/httputil"
	services "caffind-server/service"
	"caffind-server/util"
)

// CatalogHandler serves the catalog listing, seeding and insights
// endpoints.
type CatalogHandler struct {
	recommendations *services.RecommendationService
	seeder          *services.SeedService
	log             zerolog.Logger
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(recommendations *services.RecommendationService, seeder *services.SeedService, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		recommendations: recommendations,
		seeder:          seeder,
		log:             log,
	}
}

// ListCafes handles GET /v1/cafes. Each cafe's open flag is recomputed
// from its operating-hours string at read time.
func (h *CatalogHandler) ListCafes(w http.ResponseWriter, r *http.Request) {
	cafes, err := h.recommendations.ListCatalog(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list catalog")
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"cafes": cafes,
		"count": len(cafes),
	})
}

// SeedCatalog handles POST /v1/catalog/seed. Seeding a non-empty store
// reports inserted=0 and does not re-seed.
func (h *CatalogHandler) SeedCatalog(w http.ResponseWriter, r *http.Request) {
	inserted, err := h.seeder.SeedCatalog(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("catalog seeding failed")
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"inserted": inserted,
		"seeded":   inserted > 0,
	})
}

// RatingsInsights handles GET /v1/insights/ratings with an HTML chart.
func (h *CatalogHandler) RatingsInsights(w http.ResponseWriter, r *http.Request) {
	cafes, err := h.recommendations.ListCatalog(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load catalog for insights")
		httputil.WriteDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderRatingsChart(w, cafes); err != nil {
		h.log.Error().Err(err).Msg("failed to render ratings chart")
	}
}

// Ping handles GET /ping.
func (h *CatalogHandler) Ping(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}
