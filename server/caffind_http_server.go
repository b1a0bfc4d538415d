package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// CaffindHttpServer runs the HTTP server with graceful shutdown.
type CaffindHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
	log       zerolog.Logger
}

// NewCaffindHttpServer constructs the server.
func NewCaffindHttpServer(router *Router, muxRouter *mux.Router, addr string, log zerolog.Logger) *CaffindHttpServer {
	return &CaffindHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
		log:       log,
	}
}

// Start registers routes, serves until interrupted, then shuts down
// gracefully.
func (s *CaffindHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info().Str("addr", s.addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-stop
	s.log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.log.Fatal().Err(err).Msg("forced shutdown")
	}
	s.log.Info().Msg("server exited")
}
