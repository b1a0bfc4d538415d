package server

import (
	"github.com/gorilla/mux"

	"caffind-server/server/handlers"
	"caffind-server/server/middleware"
)

// Router registers the app's routes on the underlying mux router.
type Router struct {
	recommendationHandler *handlers.RecommendationHandler
	catalogHandler        *handlers.CatalogHandler
	favoritesHandler      *handlers.FavoritesHandler
	accountHandler        *handlers.AccountHandler
	authMiddleware        *middleware.AuthMiddleware
	router                *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	recommendationHandler *handlers.RecommendationHandler,
	catalogHandler *handlers.CatalogHandler,
	favoritesHandler *handlers.FavoritesHandler,
	accountHandler *handlers.AccountHandler,
	authMiddleware *middleware.AuthMiddleware,
	router *mux.Router) *Router {
	return &Router{
		recommendationHandler: recommendationHandler,
		catalogHandler:        catalogHandler,
		favoritesHandler:      favoritesHandler,
		accountHandler:        accountHandler,
		authMiddleware:        authMiddleware,
		router:                router,
	}
}

// RegisterRoutes wires every endpoint. Favorites and profile routes go
// through the auth gate; everything else is public.
func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/cafes/recommendations", r.recommendationHandler.Recommend).Methods("POST")
	r.router.HandleFunc("/v1/cafes", r.catalogHandler.ListCafes).Methods("GET")
	r.router.HandleFunc("/v1/catalog/seed", r.catalogHandler.SeedCatalog).Methods("POST")
	r.router.HandleFunc("/v1/insights/ratings", r.catalogHandler.RatingsInsights).Methods("GET")

	r.router.HandleFunc("/v1/accounts/register", r.accountHandler.Register).Methods("POST")
	r.router.HandleFunc("/v1/accounts/login", r.accountHandler.Login).Methods("POST")
	r.router.HandleFunc("/v1/accounts/me", r.authMiddleware.RequireAccount(r.accountHandler.Profile)).Methods("GET")
	r.router.HandleFunc("/v1/accounts/me/preferences", r.authMiddleware.RequireAccount(r.accountHandler.UpdatePreferences)).Methods("PUT")

	r.router.HandleFunc("/v1/favorites", r.authMiddleware.RequireAccount(r.favoritesHandler.List)).Methods("GET")
	r.router.HandleFunc("/v1/favorites", r.authMiddleware.RequireAccount(r.favoritesHandler.Add)).Methods("POST")
	r.router.HandleFunc("/v1/favorites", r.authMiddleware.RequireAccount(r.favoritesHandler.Remove)).Methods("DELETE")

	r.router.HandleFunc("/ping", r.catalogHandler.Ping).Methods("GET")
}
