// Package repo – flashcard repository.
//
// Functions:
//
//   - InsertFlashcard(ctx, fs, namespace, uid, card) -> id, error
//   - ListFlashcards(ctx, fs, namespace, uid, category, difficulty) -> []Flashcard, error
//     Ordered by createdAt descending; empty filter strings (or "All") mean
//     no server-side filter for that field.
//   - GetFlashcard(ctx, fs, namespace, uid, id) -> *Flashcard, error
//     Returns ErrNotFound when the document is missing.
//   - TouchFlashcardReviewed(ctx, fs, namespace, uid, id) -> error
//     Stamps lastReviewed with the server time.
//   - SetFlashcardLearnt(ctx, fs, namespace, uid, id, learnt) -> error
//     Sets learnt and stamps learntAt with the server time.
package repo

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
	"github.com/flipcymru/flipcymru-backend/internal/utils"
)

// InsertFlashcard adds a new card with a store-assigned document id and a
// server-stamped createdAt.
func InsertFlashcard(ctx context.Context, fs *firestore.Client, namespace, uid string, card domain.Flashcard) (string, error) {
	ref, _, err := userCollection(fs, namespace, uid, colFlashcards).Add(ctx, card)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// ListFlashcards returns the user's cards newest-first, optionally filtered
// by category and difficulty. The sentinel "All" disables a filter, matching
// the frontend's picker values.
func ListFlashcards(ctx context.Context, fs *firestore.Client, namespace, uid, category, difficulty string) ([]domain.Flashcard, error) {
	q := userCollection(fs, namespace, uid, colFlashcards).
		OrderBy("createdAt", firestore.Desc)
	if category != "" && category != "All" {
		q = q.Where("category", "==", category)
	}
	if difficulty != "" && difficulty != "All" {
		q = q.Where("difficulty", "==", difficulty)
	}

	it := q.Documents(ctx)
	defer it.Stop()

	out := []domain.Flashcard{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		card, err := flashcardFromDoc(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, card)
	}
	return out, nil
}

// GetFlashcard fetches a single card by document id, or ErrNotFound.
func GetFlashcard(ctx context.Context, fs *firestore.Client, namespace, uid, id string) (*domain.Flashcard, error) {
	doc, err := userCollection(fs, namespace, uid, colFlashcards).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	card, err := flashcardFromDoc(doc)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// TouchFlashcardReviewed stamps lastReviewed with the current server time.
func TouchFlashcardReviewed(ctx context.Context, fs *firestore.Client, namespace, uid, id string) error {
	_, err := userCollection(fs, namespace, uid, colFlashcards).Doc(id).Update(ctx, []firestore.Update{
		{Path: "lastReviewed", Value: firestore.ServerTimestamp},
	})
	if isNotFound(err) {
		return ErrNotFound
	}
	return err
}

// SetFlashcardLearnt updates the learnt flag and stamps learntAt.
func SetFlashcardLearnt(ctx context.Context, fs *firestore.Client, namespace, uid, id string, learnt bool) error {
	_, err := userCollection(fs, namespace, uid, colFlashcards).Doc(id).Update(ctx, []firestore.Update{
		{Path: "learnt", Value: learnt},
		{Path: "learntAt", Value: firestore.ServerTimestamp},
	})
	if isNotFound(err) {
		return ErrNotFound
	}
	return err
}

// flashcardFromDoc maps a snapshot to the domain type, attaching the
// document id and normalizing instants to UTC.
func flashcardFromDoc(doc *firestore.DocumentSnapshot) (domain.Flashcard, error) {
	var card domain.Flashcard
	if err := doc.DataTo(&card); err != nil {
		return domain.Flashcard{}, err
	}
	card.ID = doc.Ref.ID
	card.CreatedAt = utils.UTC(card.CreatedAt)
	card.LastReviewed = utils.UTCPtr(card.LastReviewed)
	card.LearntAt = utils.UTCPtr(card.LearntAt)
	return card, nil
}
