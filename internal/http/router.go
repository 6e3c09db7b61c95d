// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, authentication, and rate limiting.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
package httpapi

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/flipcymru/flipcymru-backend/internal/config"
	"github.com/flipcymru/flipcymru-backend/internal/domain"
	"github.com/flipcymru/flipcymru-backend/internal/genlang"
	"github.com/flipcymru/flipcymru-backend/internal/http/handlers"
	"github.com/flipcymru/flipcymru-backend/internal/http/middleware"
	"github.com/flipcymru/flipcymru-backend/internal/identity"
	"github.com/flipcymru/flipcymru-backend/internal/repo"
	"github.com/flipcymru/flipcymru-backend/internal/services"
	"github.com/flipcymru/flipcymru-backend/internal/speech"
)

//
// Store shims
//
// The repo package exposes free functions over a *firestore.Client; the
// services consume narrow store interfaces. These shims close over the
// client and namespace so services stay decoupled from Firestore.
//

// historyStoreShim adapts the history repo functions to
// services.HistoryStore.
type historyStoreShim struct {
	fs        *firestore.Client
	namespace string
}

func (s historyStoreShim) List(ctx context.Context, uid string, desc bool) ([]domain.HistoryRecord, error) {
	dir := firestore.Asc
	if desc {
		dir = firestore.Desc
	}
	return repo.ListHistory(ctx, s.fs, s.namespace, uid, dir)
}

func (s historyStoreShim) Delete(ctx context.Context, uid, id string) error {
	return repo.DeleteHistory(ctx, s.fs, s.namespace, uid, id)
}

func (s historyStoreShim) Insert(ctx context.Context, uid string, rec domain.HistoryRecord) (string, error) {
	return repo.InsertHistory(ctx, s.fs, s.namespace, uid, rec)
}

// flashcardStoreShim adapts the flashcard repo functions to
// services.FlashcardStore.
type flashcardStoreShim struct {
	fs        *firestore.Client
	namespace string
}

func (s flashcardStoreShim) Insert(ctx context.Context, uid string, card domain.Flashcard) (string, error) {
	return repo.InsertFlashcard(ctx, s.fs, s.namespace, uid, card)
}

func (s flashcardStoreShim) List(ctx context.Context, uid, category, difficulty string) ([]domain.Flashcard, error) {
	return repo.ListFlashcards(ctx, s.fs, s.namespace, uid, category, difficulty)
}

func (s flashcardStoreShim) Get(ctx context.Context, uid, id string) (domain.Flashcard, error) {
	card, err := repo.GetFlashcard(ctx, s.fs, s.namespace, uid, id)
	if err != nil {
		return domain.Flashcard{}, err
	}
	return *card, nil
}

func (s flashcardStoreShim) TouchReviewed(ctx context.Context, uid, id string) error {
	return repo.TouchFlashcardReviewed(ctx, s.fs, s.namespace, uid, id)
}

func (s flashcardStoreShim) SetLearnt(ctx context.Context, uid, id string, learnt bool) error {
	return repo.SetFlashcardLearnt(ctx, s.fs, s.namespace, uid, id, learnt)
}

// categoryStoreShim adapts the category repo functions to
// services.CategoryStore.
type categoryStoreShim struct {
	fs        *firestore.Client
	namespace string
}

func (s categoryStoreShim) FindByName(ctx context.Context, uid, name string) (domain.FlashcardCategory, error) {
	cat, err := repo.FindCategoryByName(ctx, s.fs, s.namespace, uid, name)
	if err != nil {
		return domain.FlashcardCategory{}, err
	}
	return *cat, nil
}

func (s categoryStoreShim) Insert(ctx context.Context, uid string, cat domain.FlashcardCategory) (string, error) {
	return repo.InsertCategory(ctx, s.fs, s.namespace, uid, cat)
}

func (s categoryStoreShim) List(ctx context.Context, uid string) ([]domain.FlashcardCategory, error) {
	return repo.ListCategories(ctx, s.fs, s.namespace, uid)
}

// profileStoreShim adapts the profile repo functions to
// services.ProfileStore.
type profileStoreShim struct {
	fs        *firestore.Client
	namespace string
}

func (s profileStoreShim) Set(ctx context.Context, uid string, p domain.UserProfile) error {
	return repo.SetProfile(ctx, s.fs, s.namespace, uid, p)
}

func (s profileStoreShim) Get(ctx context.Context, uid string) (domain.UserProfile, error) {
	p, err := repo.GetProfile(ctx, s.fs, s.namespace, uid)
	if err != nil {
		return domain.UserProfile{}, err
	}
	return *p, nil
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after the logger
//  5. Body size limiter (speech upload sized)
//  6. Metrics
//  7. Rate limiter (per user/IP)
//  8. CORS and security headers
//  9. Auth on the protected route group only
func RegisterRoutes(
	r *gin.Engine,
	fs *firestore.Client,
	provider identity.Provider,
	translator genlang.Translator,
	synthesizer speech.Synthesizer,
	cfg config.Config,
) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured access logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit. Sized for STT audio uploads; JSON payloads
	// are far below it.
	r.Use(limitBody(12 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 8) CORS posture (allow all when no origins configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "FlipCymru Backend is running!"})
	})

	// Dependency injection: services ← stores/providers
	ns := cfg.Firebase.AppNamespace
	historySvc := &services.HistoryService{
		Store:      historyStoreShim{fs: fs, namespace: ns},
		MaxEntries: cfg.HistoryMaxEntries,
	}
	cardSvc := services.NewFlashcardService(
		flashcardStoreShim{fs: fs, namespace: ns},
		categoryStoreShim{fs: fs, namespace: ns},
		translator,
	)
	categorySvc := services.NewCategoryService(
		categoryStoreShim{fs: fs, namespace: ns},
		flashcardStoreShim{fs: fs, namespace: ns},
	)
	accountSvc := services.NewAccountService(provider, profileStoreShim{fs: fs, namespace: ns})

	h := handlers.New(accountSvc, historySvc, cardSvc, categorySvc, translator, synthesizer)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Accounts and provider proxies (no bearer token required)
		api.POST("/register-user", h.RegisterUser)
		api.POST("/login-user", h.LoginUser)
		api.POST("/translate-text", h.TranslateText)
		api.POST("/stt-welsh-english", h.STTWelshEnglish)
		api.POST("/tts-welsh", h.TTSWelsh)

		// User-owned data (bearer token required)
		authed := api.Group("")
		authed.Use(middleware.Auth(provider))
		{
			authed.POST("/save-translation-history", h.SaveTranslationHistory)
			authed.GET("/get-translation-history", h.GetTranslationHistory)
			authed.POST("/create-flashcard", h.CreateFlashcard)
			authed.GET("/get-flashcards", h.GetFlashcards)
			authed.GET("/get-flashcard-categories", h.GetFlashcardCategories)
			authed.GET("/get-flashcards-by-category/:categoryName", h.GetFlashcardsByCategory)
			authed.GET("/get-flashcard/:cardId", h.GetFlashcard)
			authed.PUT("/update-flashcard-learnt-status/:cardId", h.UpdateFlashcardLearntStatus)
			authed.GET("/get-user-profile", h.GetUserProfile)
		}
	}
}

// limitBody caps the request body size for all endpoints using
// http.MaxBytesReader; downstream reads past the cap error out.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
