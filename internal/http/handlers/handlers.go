// Handler wiring.
//
// Handlers depend on abstract service interfaces so transport concerns stay
// separate from business logic and tests can substitute fakes.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
	"github.com/flipcymru/flipcymru-backend/internal/genlang"
	"github.com/flipcymru/flipcymru-backend/internal/http/middleware"
	"github.com/flipcymru/flipcymru-backend/internal/identity"
	"github.com/flipcymru/flipcymru-backend/internal/services"
	"github.com/flipcymru/flipcymru-backend/internal/speech"
)

// AccountService defines registration, login, and profile operations.
//
// Implementations must be safe for concurrent use and honor the provided
// context for cancellation and timeouts.
type AccountService interface {
	// Register creates an account and seeds the user's profile document.
	Register(ctx context.Context, email, password, username string) (identity.User, error)
	// Login resolves an email to an account and mints a custom token.
	Login(ctx context.Context, email string) (services.LoginResult, error)
	// Profile returns the user's stored profile document.
	Profile(ctx context.Context, uid string) (domain.UserProfile, error)
}

// HistoryService defines the bounded translation-history ledger operations.
type HistoryService interface {
	// Append records one completed translation, evicting the oldest record
	// when the per-user cap is reached.
	Append(ctx context.Context, uid string, rec domain.HistoryRecord) error
	// List returns the user's history ordered by timestamp.
	List(ctx context.Context, uid string, desc bool) ([]domain.HistoryRecord, error)
}

// FlashcardService defines study-card creation and retrieval operations.
type FlashcardService interface {
	// Create translates the English text and stores the resulting card.
	Create(ctx context.Context, uid string, in services.CreateInput) (domain.Flashcard, error)
	// List returns the user's cards newest-first, filtered.
	List(ctx context.Context, uid string, filter services.ListFilter) ([]domain.Flashcard, error)
	// ListByCategory returns all cards in one category, newest-first.
	ListByCategory(ctx context.Context, uid, category string) ([]domain.Flashcard, error)
	// Get returns one card and stamps its lastReviewed time.
	Get(ctx context.Context, uid, id string) (domain.Flashcard, error)
	// SetLearnt flips a card's learnt status.
	SetLearnt(ctx context.Context, uid, id string, learnt bool) error
}

// CategoryService defines category listing with derived progress counts.
type CategoryService interface {
	List(ctx context.Context, uid string) ([]domain.FlashcardCategory, error)
}

// Handlers groups the HTTP endpoints for accounts, translation, speech,
// history, flashcards, and categories.
type Handlers struct {
	accountSvc  AccountService
	historySvc  HistoryService
	cardSvc     FlashcardService
	categorySvc CategoryService
	translator  genlang.Translator
	synthesizer speech.Synthesizer
}

// New constructs a Handlers instance bound to the given collaborators.
func New(
	accountSvc AccountService,
	historySvc HistoryService,
	cardSvc FlashcardService,
	categorySvc CategoryService,
	translator genlang.Translator,
	synthesizer speech.Synthesizer,
) *Handlers {
	return &Handlers{
		accountSvc:  accountSvc,
		historySvc:  historySvc,
		cardSvc:     cardSvc,
		categorySvc: categorySvc,
		translator:  translator,
		synthesizer: synthesizer,
	}
}

// userID returns the authenticated principal's UID set by the auth
// middleware. Handlers on protected routes may assume it is non-empty.
func userID(c *gin.Context) string {
	return middleware.UserID(c)
}
