// Package repo – user profile repository.
//
// A user's profile lives in a single document
// artifacts/{namespace}/users/{uid}/userProfile/data, the path the frontend
// also reads.
package repo

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
	"github.com/flipcymru/flipcymru-backend/internal/utils"
)

// SetProfile writes (or overwrites) the user's profile document. The zero
// CreatedAt is stamped server-side.
func SetProfile(ctx context.Context, fs *firestore.Client, namespace, uid string, p domain.UserProfile) error {
	_, err := userCollection(fs, namespace, uid, colUserProfile).Doc(profileDocID).Set(ctx, p)
	return err
}

// GetProfile fetches the user's profile document, or ErrNotFound.
func GetProfile(ctx context.Context, fs *firestore.Client, namespace, uid string) (*domain.UserProfile, error) {
	doc, err := userCollection(fs, namespace, uid, colUserProfile).Doc(profileDocID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !doc.Exists() {
		return nil, ErrNotFound
	}
	var p domain.UserProfile
	if err := doc.DataTo(&p); err != nil {
		return nil, err
	}
	p.CreatedAt = utils.UTC(p.CreatedAt)
	return &p, nil
}
