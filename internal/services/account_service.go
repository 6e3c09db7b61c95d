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
	"github.com/flipcymru/flipcymru-backend/internal/identity"
	"github.com/flipcymru/flipcymru-backend/internal/repo"
	"github.com/flipcymru/flipcymru-backend/internal/sysutil"
)

// ProfileStore is the store contract for the per-user profile document.
type ProfileStore interface {
	// Set writes the profile document, overwriting any existing one.
	Set(ctx context.Context, uid string, p domain.UserProfile) error
	// Get returns the profile document; repo.ErrNotFound when absent.
	Get(ctx context.Context, uid string) (domain.UserProfile, error)
}

// AccountService handles registration, login, and profile reads against the
// identity provider and the profile store.
type AccountService struct {
	Provider identity.Provider
	Profiles ProfileStore
}

// NewAccountService wires the account service.
func NewAccountService(provider identity.Provider, profiles ProfileStore) *AccountService {
	return &AccountService{Provider: provider, Profiles: profiles}
}

// LoginResult is what a successful login hands back to the handler: the
// resolved account, a display username, and a custom token the client
// exchanges with the identity provider for a session.
type LoginResult struct {
	User        identity.User
	Username    string
	CustomToken string
}

// Register creates an account with the identity provider and seeds the
// user's profile document with default learning preferences and zeroed
// stats. A duplicate email maps to ErrEmailExists.
func (s *AccountService) Register(ctx context.Context, email, password, username string) (identity.User, error) {
	tr := otel.Tracer("services/AccountService")
	ctx, span := tr.Start(ctx, "Register")
	defer span.End()

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return identity.User{}, fmt.Errorf("%w: email and password are required", ErrValidation)
	}
	username = strings.TrimSpace(username)
	if username == "" {
		username = emailLocalPart(email)
	}

	user, err := s.Provider.CreateUser(ctx, email, password, username)
	if err != nil {
		if errors.Is(err, identity.ErrEmailExists) {
			return identity.User{}, ErrEmailExists
		}
		return identity.User{}, fmt.Errorf("%w: creating account: %v", ErrProviderUnavailable, err)
	}
	span.SetAttributes(attribute.String("user.id", user.UID))

	if err := s.Profiles.Set(ctx, user.UID, domain.NewUserProfile(user.UID, email, username)); err != nil {
		// The identity account exists at this point; the profile write is
		// not compensated. Login falls back to the display name until a
		// later write succeeds.
		return identity.User{}, fmt.Errorf("%w: seeding profile: %v", ErrStoreUnavailable, err)
	}
	return user, nil
}

// Login resolves an email to an existing account and mints a custom token.
// The username is resolved from, in order: the stored profile, the
// provider's display name, the email's local part, then "User". A missing
// profile document is tolerated; any other profile read failure fails the
// login.
func (s *AccountService) Login(ctx context.Context, email string) (LoginResult, error) {
	tr := otel.Tracer("services/AccountService")
	ctx, span := tr.Start(ctx, "Login")
	defer span.End()

	email = strings.TrimSpace(email)
	if email == "" {
		return LoginResult{}, fmt.Errorf("%w: email is required", ErrValidation)
	}

	user, err := s.Provider.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return LoginResult{}, ErrUserNotFound
		}
		return LoginResult{}, fmt.Errorf("%w: resolving account: %v", ErrProviderUnavailable, err)
	}
	span.SetAttributes(attribute.String("user.id", user.UID))

	token, err := s.Provider.CustomToken(ctx, user.UID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("%w: minting token: %v", ErrProviderUnavailable, err)
	}

	profileUsername := ""
	profile, err := s.Profiles.Get(ctx, user.UID)
	switch {
	case err == nil:
		profileUsername = profile.Username
	case errors.Is(err, repo.ErrNotFound):
		// Registered before profiles existed, or the seed write failed.
	default:
		return LoginResult{}, fmt.Errorf("%w: reading profile: %v", ErrStoreUnavailable, err)
	}

	username := sysutil.FirstNonEmpty(
		profileUsername,
		user.DisplayName,
		emailLocalPart(user.Email),
		"User",
	)
	return LoginResult{User: user, Username: username, CustomToken: token}, nil
}

// Profile returns the user's stored profile document.
func (s *AccountService) Profile(ctx context.Context, uid string) (domain.UserProfile, error) {
	tr := otel.Tracer("services/AccountService")
	ctx, span := tr.Start(ctx, "Profile",
		trace.WithAttributes(attribute.String("user.id", uid)),
	)
	defer span.End()

	profile, err := s.Profiles.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.UserProfile{}, fmt.Errorf("%w: profile for %s", ErrNotFound, uid)
		}
		return domain.UserProfile{}, fmt.Errorf("%w: reading profile: %v", ErrStoreUnavailable, err)
	}
	return profile, nil
}

// emailLocalPart returns everything before the first "@", or the input when
// there is none.
func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
