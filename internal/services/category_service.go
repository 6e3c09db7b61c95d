package services

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
)

// CategoryService serves the user's category list with per-category progress
// counts. Counts are derived at read time from the flashcard collection and
// never stored, so they cannot drift from the cards themselves.
type CategoryService struct {
	Categories CategoryStore
	Cards      FlashcardStore
}

// NewCategoryService wires the category service.
func NewCategoryService(categories CategoryStore, cards FlashcardStore) *CategoryService {
	return &CategoryService{Categories: categories, Cards: cards}
}

// List returns all categories oldest-first, each annotated with its total
// and learnt flashcard counts.
func (s *CategoryService) List(ctx context.Context, uid string) ([]domain.FlashcardCategory, error) {
	tr := otel.Tracer("services/CategoryService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(attribute.String("user.id", uid)),
	)
	defer span.End()

	cats, err := s.Categories.List(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%w: listing categories: %v", ErrStoreUnavailable, err)
	}
	for i := range cats {
		cards, err := s.Cards.List(ctx, uid, cats[i].Name, "")
		if err != nil {
			return nil, fmt.Errorf("%w: counting flashcards for %q: %v", ErrStoreUnavailable, cats[i].Name, err)
		}
		cats[i].TotalFlashcards = len(cards)
		learnt := 0
		for _, c := range cards {
			if c.Learnt {
				learnt++
			}
		}
		cats[i].LearntFlashcards = learnt
	}
	return cats, nil
}
