package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"caffind-server/config"
	"caffind-server/di"
)

func main() {
	log := zerolog.New(os.Stdout).With().
		Str("service", "caffind-server").
		Timestamp().
		Logger()

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	container, err := di.NewContainer(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize container")
	}

	inserted, err := container.SeedService.SeedCatalog(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog")
	}
	log.Info().Int("inserted", inserted).Msg("catalog ready")

	container.HttpServer.Start()
}
