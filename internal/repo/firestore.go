// Package repo implements the data persistence layer for domain documents,
// backed by Firestore. This file contains client bootstrapping and the
// per-user collection path derivation shared by all repositories.
//
// All functions are context-aware and accept a *firestore.Client handle.
// They follow the "thin repository" approach: no business logic, only
// document CRUD and query composition.
//
// Error semantics:
//   - When a document is not found, functions return ErrNotFound.
//   - On other store errors (connectivity, permission, quota), the raw
//     error is propagated for the service layer to classify.
package repo

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/flipcymru/flipcymru-backend/internal/config"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// OpenFirestore connects to the configured (named) Firestore database using
// the service-account JSON from configuration.
func OpenFirestore(ctx context.Context, cfg config.FirebaseConfig) (*firestore.Client, error) {
	return firestore.NewClientWithDatabase(
		ctx,
		cfg.ProjectID,
		cfg.DatabaseID,
		option.WithCredentialsJSON([]byte(cfg.AdminSDKConfig)),
	)
}

// Collection names under each user's namespace. These match what the
// frontend reads directly and must not change.
const (
	colTranslationHistory  = "translationHistory"
	colFlashcards          = "flashcards"
	colFlashcardCategories = "flashcardCategories"
	colUserProfile         = "userProfile"

	// profileDocID is the single document holding a user's profile.
	profileDocID = "data"
)

// userCollection returns the per-user collection reference
// artifacts/{namespace}/users/{uid}/{name}. The derivation is deterministic:
// the same uid always maps to the same collection path.
func userCollection(fs *firestore.Client, namespace, uid, name string) *firestore.CollectionRef {
	return fs.Collection("artifacts").Doc(namespace).Collection("users").Doc(uid).Collection(name)
}

// isNotFound reports whether a Firestore error is a missing-document error.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
