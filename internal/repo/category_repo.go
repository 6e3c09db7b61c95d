// Package repo – flashcard category repository.
package repo

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
	"github.com/flipcymru/flipcymru-backend/internal/utils"
)

// FindCategoryByName returns the user's category with the exact given name,
// or ErrNotFound. Names are matched as stored (case-sensitive), the same
// equality the frontend uses.
func FindCategoryByName(ctx context.Context, fs *firestore.Client, namespace, uid, name string) (*domain.FlashcardCategory, error) {
	it := userCollection(fs, namespace, uid, colFlashcardCategories).
		Where("name", "==", name).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	cat, err := categoryFromDoc(doc)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// InsertCategory adds a new category with a store-assigned id and a
// server-stamped createdAt.
func InsertCategory(ctx context.Context, fs *firestore.Client, namespace, uid string, cat domain.FlashcardCategory) (string, error) {
	ref, _, err := userCollection(fs, namespace, uid, colFlashcardCategories).Add(ctx, cat)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// ListCategories returns the user's categories oldest-first.
func ListCategories(ctx context.Context, fs *firestore.Client, namespace, uid string) ([]domain.FlashcardCategory, error) {
	it := userCollection(fs, namespace, uid, colFlashcardCategories).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)
	defer it.Stop()

	out := []domain.FlashcardCategory{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		cat, err := categoryFromDoc(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, nil
}

func categoryFromDoc(doc *firestore.DocumentSnapshot) (domain.FlashcardCategory, error) {
	var cat domain.FlashcardCategory
	if err := doc.DataTo(&cat); err != nil {
		return domain.FlashcardCategory{}, err
	}
	cat.ID = doc.Ref.ID
	cat.CreatedAt = utils.UTC(cat.CreatedAt)
	return cat, nil
}
