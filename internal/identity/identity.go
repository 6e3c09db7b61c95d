// Package identity wraps the external identity provider (Firebase Auth)
// behind a narrow interface. Authentication is a consumed capability, not
// engineered here: the provider owns passwords, token signing, and
// revocation; this package only shapes its SDK into the operations the
// services need and classifies its errors.
package identity

import (
	"context"
	"errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/flipcymru/flipcymru-backend/internal/config"
)

var (
	// ErrInvalidToken covers malformed, expired, and revoked ID tokens.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrEmailExists is returned when CreateUser hits a registered email.
	ErrEmailExists = errors.New("email already in use")

	// ErrUserNotFound is returned when no account matches the email.
	ErrUserNotFound = errors.New("user not found")
)

// User is the provider-agnostic view of an account.
type User struct {
	UID         string
	Email       string
	DisplayName string
}

// Provider is the contract consumed by middleware and the account service.
// Implementations must be safe for concurrent use.
type Provider interface {
	// VerifyToken checks an ID token (including revocation) and returns the
	// authenticated principal's UID.
	VerifyToken(ctx context.Context, idToken string) (string, error)
	// CreateUser registers a new account with the provider.
	CreateUser(ctx context.Context, email, password, displayName string) (User, error)
	// UserByEmail resolves an email to an existing account.
	UserByEmail(ctx context.Context, email string) (User, error)
	// CustomToken mints a token the client exchanges for a session.
	CustomToken(ctx context.Context, uid string) (string, error)
}

// firebaseProvider implements Provider on the Firebase Admin SDK.
type firebaseProvider struct {
	client *auth.Client
}

// NewFirebase initializes the Firebase Admin app from the service-account
// JSON in configuration and returns a Provider backed by its auth client.
func NewFirebase(ctx context.Context, cfg config.FirebaseConfig) (Provider, error) {
	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: cfg.ProjectID},
		option.WithCredentialsJSON([]byte(cfg.AdminSDKConfig)),
	)
	if err != nil {
		return nil, err
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &firebaseProvider{client: client}, nil
}

func (p *firebaseProvider) VerifyToken(ctx context.Context, idToken string) (string, error) {
	tok, err := p.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return "", ErrInvalidToken
	}
	return tok.UID, nil
}

func (p *firebaseProvider) CreateUser(ctx context.Context, email, password, displayName string) (User, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName).
		EmailVerified(false).
		Disabled(false)
	rec, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}
	return userFromRecord(rec), nil
}

func (p *firebaseProvider) UserByEmail(ctx context.Context, email string) (User, error) {
	rec, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return userFromRecord(rec), nil
}

func (p *firebaseProvider) CustomToken(ctx context.Context, uid string) (string, error) {
	return p.client.CustomToken(ctx, uid)
}

func userFromRecord(rec *auth.UserRecord) User {
	return User{
		UID:         rec.UID,
		Email:       rec.Email,
		DisplayName: rec.DisplayName,
	}
}
