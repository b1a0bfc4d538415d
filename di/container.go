// Package di wires up all application dependencies.
package di

import (
	"context"
	"fmt"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"caffind-server/api/ranker"
	"caffind-server/auth"
	"caffind-server/config"
	redisdao "caffind-server/dao/redis"
	"caffind-server/db"
	"caffind-server/server"
	"caffind-server/server/handlers"
	"caffind-server/server/middleware"
	services "caffind-server/service"
)

// Container holds all application dependencies.
type Container struct {
	Store                 db.DocStore
	CafeDAO               *redisdao.RedisCafeDAO
	AccountDAO            *redisdao.RedisAccountDAO
	TokenManager          *auth.TokenManager
	Ranker                ranker.Ranker
	RecommendationService *services.RecommendationService
	FavoritesService      *services.FavoritesService
	AccountService        *services.AccountService
	SeedService           *services.SeedService
	MuxRouter             *mux.Router
	Router                *server.Router
	HttpServer            *server.CaffindHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	log.Info().Str("env", cfg.Env).Msg("initializing container")
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	store := db.NewRedisDocStore(ctx, redisInternalClient)
	if err := store.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	cafeDAO := redisdao.NewRedisCafeDAO(store)
	accountDAO := redisdao.NewRedisAccountDAO(store)
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// The remote ranker is optional: without an API key, or outside
	// prod, the fallback decorator serves rating order only.
	var primary ranker.Ranker
	if cfg.IsProd() && cfg.RankAPIKey != "" {
		primary = ranker.NewCompletionRanker(cfg.RankBaseURL, cfg.RankAPIKey, cfg.RankModel, cfg.RankTimeout)
		log.Info().Str("model", cfg.RankModel).Msg("using completion ranker")
	} else {
		log.Info().Msg("completion ranker disabled, using rating sort")
	}
	rk := ranker.NewFallbackRanker(primary, log)

	recommendationService := services.NewRecommendationService(cafeDAO, rk, log)
	favoritesService := services.NewFavoritesService(accountDAO)
	accountService := services.NewAccountService(accountDAO, tokenManager, log)
	seedService := services.NewSeedService(cafeDAO, cfg.CatalogFile, log)

	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, log)
	catalogHandler := handlers.NewCatalogHandler(recommendationService, seedService, log)
	favoritesHandler := handlers.NewFavoritesHandler(favoritesService, log)
	accountHandler := handlers.NewAccountHandler(accountService, log)
	authMiddleware := middleware.NewAuthMiddleware(tokenManager, accountDAO, log)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(
		recommendationHandler,
		catalogHandler,
		favoritesHandler,
		accountHandler,
		authMiddleware,
		muxRouter,
	)
	httpServer := server.NewCaffindHttpServer(router, muxRouter, cfg.HTTPAddr(), log)

	return &Container{
		Store:                 store,
		CafeDAO:               cafeDAO,
		AccountDAO:            accountDAO,
		TokenManager:          tokenManager,
		Ranker:                rk,
		RecommendationService: recommendationService,
		FavoritesService:      favoritesService,
		AccountService:        accountService,
		SeedService:           seedService,
		MuxRouter:             muxRouter,
		Router:                router,
		HttpServer:            httpServer,
	}, nil
}
