package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
	"github.com/flipcymru/flipcymru-backend/internal/genlang"
	"github.com/flipcymru/flipcymru-backend/internal/repo"
)

// CategoryAll is the sentinel filter value meaning "no category filter".
// DifficultyAll is its counterpart for the difficulty filter.
const (
	CategoryAll   = "All"
	DifficultyAll = "All"
)

// FlashcardStore is the store contract for the per-user flashcard
// collection. Missing documents surface as repo.ErrNotFound; other store
// failures propagate raw for the service to classify.
type FlashcardStore interface {
	// Insert adds a card, returning its store-assigned id.
	Insert(ctx context.Context, uid string, card domain.Flashcard) (string, error)
	// List returns cards newest-first, optionally filtered by category
	// and/or difficulty (empty string means no filter).
	List(ctx context.Context, uid, category, difficulty string) ([]domain.Flashcard, error)
	// Get returns one card by id.
	Get(ctx context.Context, uid, id string) (domain.Flashcard, error)
	// TouchReviewed stamps the card's lastReviewed to the store's now.
	TouchReviewed(ctx context.Context, uid, id string) error
	// SetLearnt updates the learnt flag, stamping learntAt when set.
	SetLearnt(ctx context.Context, uid, id string, learnt bool) error
}

// CategoryStore is the store contract for the per-user category collection.
type CategoryStore interface {
	// FindByName returns the category with the given display name.
	FindByName(ctx context.Context, uid, name string) (domain.FlashcardCategory, error)
	// Insert adds a category, returning its store-assigned id.
	Insert(ctx context.Context, uid string, cat domain.FlashcardCategory) (string, error)
	// List returns all categories ordered oldest-first.
	List(ctx context.Context, uid string) ([]domain.FlashcardCategory, error)
}

// FlashcardService creates and serves study cards. Creation calls the
// translation provider for the Welsh side, so a card is never stored without
// its translation.
type FlashcardService struct {
	Cards      FlashcardStore
	Categories CategoryStore
	Translator genlang.Translator
}

// NewFlashcardService wires the flashcard service.
func NewFlashcardService(cards FlashcardStore, categories CategoryStore, translator genlang.Translator) *FlashcardService {
	return &FlashcardService{Cards: cards, Categories: categories, Translator: translator}
}

// CreateInput carries the caller-supplied fields for a new flashcard.
type CreateInput struct {
	EnglishText    string
	CategoryName   string
	WelshDialect   string
	WelshFormality string
}

// Create translates the English text to Welsh, ensures the category exists
// (creating it on first use), and stores the card. The returned card carries
// its store-assigned id; CreatedAt is stamped by the store and therefore
// zero here.
func (s *FlashcardService) Create(ctx context.Context, uid string, in CreateInput) (domain.Flashcard, error) {
	tr := otel.Tracer("services/FlashcardService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(attribute.String("user.id", uid)),
	)
	defer span.End()

	english := strings.TrimSpace(in.EnglishText)
	if english == "" {
		return domain.Flashcard{}, fmt.Errorf("%w: english text must be non-empty", ErrValidation)
	}
	category := strings.TrimSpace(in.CategoryName)
	if category == "" {
		return domain.Flashcard{}, ErrEmptyCategory
	}

	if err := s.ensureCategory(ctx, uid, category); err != nil {
		return domain.Flashcard{}, err
	}

	res, err := s.Translator.Translate(ctx, genlang.TranslationRequest{
		Text:           english,
		SourceLanguage: "English",
		TargetLanguage: "Welsh",
		WelshDialect:   in.WelshDialect,
		WelshFormality: in.WelshFormality,
	})
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("%w: translating %q: %v", ErrProviderUnavailable, english, err)
	}

	card := domain.Flashcard{
		English:          english,
		Welsh:            res.TranslatedText,
		Pronunciation:    res.PronunciationText,
		Category:         category,
		Difficulty:       domain.DefaultDifficulty,
		Learnt:           false,
		ExampleSentences: res.ExampleSentences,
	}
	id, err := s.Cards.Insert(ctx, uid, card)
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("%w: inserting flashcard: %v", ErrStoreUnavailable, err)
	}
	card.ID = id
	return card, nil
}

// ensureCategory creates the named category on first use.
func (s *FlashcardService) ensureCategory(ctx context.Context, uid, name string) error {
	_, err := s.Categories.FindByName(ctx, uid, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("%w: looking up category %q: %v", ErrStoreUnavailable, name, err)
	}
	cat := domain.FlashcardCategory{Name: name, UserID: uid}
	if _, err := s.Categories.Insert(ctx, uid, cat); err != nil {
		return fmt.Errorf("%w: creating category %q: %v", ErrStoreUnavailable, name, err)
	}
	return nil
}

// ListFilter narrows a flashcard listing. "All" (or empty) disables the
// category/difficulty filters; SearchTerm matches case-insensitively against
// the English text, Welsh text, and pronunciation.
type ListFilter struct {
	Category   string
	Difficulty string
	SearchTerm string
}

// List returns the user's flashcards newest-first, filtered. The category
// and difficulty filters run in the store; the search term is applied
// in-memory over the fetched page.
func (s *FlashcardService) List(ctx context.Context, uid string, filter ListFilter) ([]domain.Flashcard, error) {
	tr := otel.Tracer("services/FlashcardService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(attribute.String("user.id", uid)),
	)
	defer span.End()

	category := normalizeFilter(filter.Category, CategoryAll)
	difficulty := normalizeFilter(filter.Difficulty, DifficultyAll)

	cards, err := s.Cards.List(ctx, uid, category, difficulty)
	if err != nil {
		return nil, fmt.Errorf("%w: listing flashcards: %v", ErrStoreUnavailable, err)
	}

	term := strings.ToLower(strings.TrimSpace(filter.SearchTerm))
	if term == "" {
		return cards, nil
	}
	matched := cards[:0:0]
	for _, c := range cards {
		if strings.Contains(strings.ToLower(c.English), term) ||
			strings.Contains(strings.ToLower(c.Welsh), term) ||
			strings.Contains(strings.ToLower(c.Pronunciation), term) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// ListByCategory returns all cards in one category, newest-first.
func (s *FlashcardService) ListByCategory(ctx context.Context, uid, category string) ([]domain.Flashcard, error) {
	return s.List(ctx, uid, ListFilter{Category: category})
}

// Get returns one card and stamps its lastReviewed time. The returned card
// reflects the state before the stamp, so a client sees when the card was
// last reviewed prior to this fetch.
func (s *FlashcardService) Get(ctx context.Context, uid, id string) (domain.Flashcard, error) {
	tr := otel.Tracer("services/FlashcardService")
	ctx, span := tr.Start(ctx, "Get",
		trace.WithAttributes(
			attribute.String("user.id", uid),
			attribute.String("flashcard.id", id),
		),
	)
	defer span.End()

	card, err := s.Cards.Get(ctx, uid, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.Flashcard{}, fmt.Errorf("%w: flashcard %s", ErrNotFound, id)
		}
		return domain.Flashcard{}, fmt.Errorf("%w: fetching flashcard: %v", ErrStoreUnavailable, err)
	}
	if err := s.Cards.TouchReviewed(ctx, uid, id); err != nil {
		return domain.Flashcard{}, fmt.Errorf("%w: stamping review: %v", ErrStoreUnavailable, err)
	}
	return card, nil
}

// SetLearnt flips a card's learnt status; the store stamps learntAt when the
// card becomes learnt.
func (s *FlashcardService) SetLearnt(ctx context.Context, uid, id string, learnt bool) error {
	tr := otel.Tracer("services/FlashcardService")
	ctx, span := tr.Start(ctx, "SetLearnt",
		trace.WithAttributes(
			attribute.String("user.id", uid),
			attribute.String("flashcard.id", id),
			attribute.Bool("learnt", learnt),
		),
	)
	defer span.End()

	if err := s.Cards.SetLearnt(ctx, uid, id, learnt); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return fmt.Errorf("%w: flashcard %s", ErrNotFound, id)
		}
		return fmt.Errorf("%w: updating learnt status: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// normalizeFilter maps the "All" sentinel (and blanks) to the store's
// no-filter convention.
func normalizeFilter(v, all string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, all) {
		return ""
	}
	return v
}
