// Package main is the entry point for the FlipCymru backend server.
//
// The server initializes components in the following order:
//
//  1. Configuration from environment variables (a local .env is honored in dev)
//  2. Structured logging (zerolog)
//  3. OpenTelemetry tracing (no-op unless OTEL_ENABLED=true)
//  4. Firebase Auth and Firestore clients
//  5. Gemini translation/transcription and Google Cloud TTS clients
//  6. The Gin HTTP router with all middleware and routes
//
// Shutdown is graceful: SIGINT/SIGTERM stops accepting connections, waits up
// to 10 seconds for in-flight requests, then flushes traces and closes the
// Firestore client.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/flipcymru/flipcymru-backend/internal/config"
	"github.com/flipcymru/flipcymru-backend/internal/genlang"
	httpapi "github.com/flipcymru/flipcymru-backend/internal/http"
	"github.com/flipcymru/flipcymru-backend/internal/identity"
	"github.com/flipcymru/flipcymru-backend/internal/observability"
	"github.com/flipcymru/flipcymru-backend/internal/repo"
	"github.com/flipcymru/flipcymru-backend/internal/speech"
	"github.com/flipcymru/flipcymru-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Local development convenience; in production the environment is the
	// source of truth and no .env file exists.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log.Logger = zerolog.New(sysutil.LogWriter(cfg.LogPretty)).With().
		Timestamp().
		Str("service", cfg.OTEL.ServiceName).
		Str("version", version).
		Logger()
	sysutil.SetLogLevel(cfg.LogLevel)

	ctx := context.Background()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	provider, err := identity.NewFirebase(ctx, cfg.Firebase)
	if err != nil {
		log.Fatal().Err(err).Msg("firebase auth init failed")
	}

	fs, err := repo.OpenFirestore(ctx, cfg.Firebase)
	if err != nil {
		log.Fatal().Err(err).Msg("firestore init failed")
	}

	translator, err := genlang.NewGemini(ctx, cfg.Gemini)
	if err != nil {
		log.Fatal().Err(err).Msg("gemini init failed")
	}

	synthesizer, err := speech.NewGoogleTTS(ctx, cfg.TTS)
	if err != nil {
		log.Fatal().Err(err).Msg("tts init failed")
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, fs, provider, translator, synthesizer, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("base_path", cfg.APIBasePath).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown")
	}
	if err := fs.Close(); err != nil {
		log.Error().Err(err).Msg("firestore close")
	}

	log.Info().Msg("server stopped")
}
