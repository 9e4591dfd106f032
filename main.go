package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"policyedge/analysis"
	"policyedge/api"
	"policyedge/config"
	"policyedge/db"
	"policyedge/logging"
	"policyedge/utils"
)

// @title           PolicyEdgeAI API
// @version         1.0.0

// @description     ## PolicyEdgeAI API
// @description
// @description     **Purpose:** A policy-document compliance assistant. Users register, upload policy documents and request compliance analyses of them. Analyses come from a fixed rule table keyed by the policy's type; no document is parsed and no AI provider is called.
// @description
// @description     **Authentication:** `POST /token` exchanges an email and password for a bearer token. Send it as `Authorization: Bearer <token>` on every protected route.
// @description
// @description     **Ownership:** Policies and analysis results are private to their owner. Anything that belongs to someone else is reported as not found.
// @description
// @description     **Storage:** Everything is held in memory and lost on restart.

// @host      localhost:8000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("CRITICAL: Failed to load configuration")
	}

	logger := logging.New(cfg.Environment)
	config.LogConfiguration(cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Database ---
	database, err := db.NewDatabase(db.Options{SeedDemoUser: cfg.SeedDemoUser})
	if err != nil {
		log.Fatal().Err(err).Msg("CRITICAL: Failed to initialize database")
	}

	engine := analysis.NewEngine(database.Policies, database.Analyses, nil)

	tokens, err := utils.NewTokenScheme(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("CRITICAL: Failed to set up token scheme")
	}

	router := api.SetupRouter(cfg, database, engine, tokens, logger)

	// --- Start Server ---
	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("starting server")
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("CRITICAL: Server failed to start")
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
			return
		}
		log.Info().Msg("server stopped")
	}
}
