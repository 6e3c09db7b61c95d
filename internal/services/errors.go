// Package services defines the business logic for accounts, translation
// history, flashcards, and categories. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import "errors"

var (
	// ErrValidation indicates caller input that must be fixed before a
	// retry (e.g. an empty sourceText/translatedText on a history append).
	ErrValidation = errors.New("invalid input")

	// ErrStoreUnavailable wraps any failure of the document store's read,
	// delete, or insert calls. It is surfaced once, immediately, with no
	// internal retry.
	ErrStoreUnavailable = errors.New("document store unavailable")

	// ErrProviderUnavailable wraps failures of the generative-language or
	// speech-synthesis collaborators.
	ErrProviderUnavailable = errors.New("upstream provider unavailable")

	// ErrNotFound indicates the requested document does not exist or is not
	// accessible to the current user.
	ErrNotFound = errors.New("not found")

	// ErrEmailExists is returned when registration hits an email already
	// known to the identity provider.
	ErrEmailExists = errors.New("email already in use")

	// ErrUserNotFound is returned when login cannot resolve the email to an
	// existing identity.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmptyCategory is returned when a flashcard is created with a blank
	// category name.
	ErrEmptyCategory = errors.New("flashcard category name cannot be empty")
)
