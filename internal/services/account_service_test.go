package services

import (
	"context"
	"errors"
	"testing"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
	"github.com/flipcymru/flipcymru-backend/internal/identity"
	"github.com/flipcymru/flipcymru-backend/internal/repo"
)

type fakeProvider struct {
	users map[string]identity.User // keyed by email

	createErr error
	tokenErr  error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{users: map[string]identity.User{}}
}

func (f *fakeProvider) VerifyToken(context.Context, string) (string, error) {
	return "", identity.ErrInvalidToken
}

func (f *fakeProvider) CreateUser(_ context.Context, email, _, displayName string) (identity.User, error) {
	if f.createErr != nil {
		return identity.User{}, f.createErr
	}
	if _, exists := f.users[email]; exists {
		return identity.User{}, identity.ErrEmailExists
	}
	u := identity.User{UID: "uid-" + email, Email: email, DisplayName: displayName}
	f.users[email] = u
	return u, nil
}

func (f *fakeProvider) UserByEmail(_ context.Context, email string) (identity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return identity.User{}, identity.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeProvider) CustomToken(_ context.Context, uid string) (string, error) {
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	return "token-" + uid, nil
}

type fakeProfileStore struct {
	profiles map[string]domain.UserProfile

	setErr error
	getErr error
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[string]domain.UserProfile{}}
}

func (f *fakeProfileStore) Set(_ context.Context, uid string, p domain.UserProfile) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.profiles[uid] = p
	return nil
}

func (f *fakeProfileStore) Get(_ context.Context, uid string) (domain.UserProfile, error) {
	if f.getErr != nil {
		return domain.UserProfile{}, f.getErr
	}
	p, ok := f.profiles[uid]
	if !ok {
		return domain.UserProfile{}, repo.ErrNotFound
	}
	return p, nil
}

func TestAccountServiceRegister(t *testing.T) {
	provider := newFakeProvider()
	profiles := newFakeProfileStore()
	svc := NewAccountService(provider, profiles)

	user, err := svc.Register(context.Background(), "dai@example.com", "hunter2", "Dai")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "dai@example.com" {
		t.Errorf("email = %q", user.Email)
	}

	p, ok := profiles.profiles[user.UID]
	if !ok {
		t.Fatal("profile not seeded")
	}
	if p.Username != "Dai" || p.Email != "dai@example.com" {
		t.Errorf("profile = %+v", p)
	}
	if p.LearningPreferences.Difficulty != domain.DefaultDifficulty || p.LearningPreferences.DailyGoal != 10 {
		t.Errorf("preferences not seeded: %+v", p.LearningPreferences)
	}
	if p.Stats.XP != 0 || p.Stats.Streak != 0 || p.Stats.WordsMastered != 0 {
		t.Errorf("stats not zeroed: %+v", p.Stats)
	}
}

func TestAccountServiceRegisterDefaultsUsername(t *testing.T) {
	provider := newFakeProvider()
	profiles := newFakeProfileStore()
	svc := NewAccountService(provider, profiles)

	user, err := svc.Register(context.Background(), "megan@example.com", "hunter2", "  ")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if got := profiles.profiles[user.UID].Username; got != "megan" {
		t.Errorf("username = %q, want email local part %q", got, "megan")
	}
}

func TestAccountServiceRegisterErrors(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		svc := NewAccountService(newFakeProvider(), newFakeProfileStore())
		if _, err := svc.Register(context.Background(), "", "pw", "x"); !errors.Is(err, ErrValidation) {
			t.Errorf("empty email: err = %v, want ErrValidation", err)
		}
		if _, err := svc.Register(context.Background(), "a@b.c", "", "x"); !errors.Is(err, ErrValidation) {
			t.Errorf("empty password: err = %v, want ErrValidation", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		provider := newFakeProvider()
		svc := NewAccountService(provider, newFakeProfileStore())
		if _, err := svc.Register(context.Background(), "dai@example.com", "pw", "Dai"); err != nil {
			t.Fatalf("first register: %v", err)
		}
		if _, err := svc.Register(context.Background(), "dai@example.com", "pw", "Dai"); !errors.Is(err, ErrEmailExists) {
			t.Errorf("err = %v, want ErrEmailExists", err)
		}
	})

	t.Run("profile seed fails", func(t *testing.T) {
		profiles := newFakeProfileStore()
		profiles.setErr = errors.New("firestore unavailable")
		svc := NewAccountService(newFakeProvider(), profiles)
		if _, err := svc.Register(context.Background(), "dai@example.com", "pw", "Dai"); !errors.Is(err, ErrStoreUnavailable) {
			t.Errorf("err = %v, want ErrStoreUnavailable", err)
		}
	})
}

func TestAccountServiceLogin(t *testing.T) {
	provider := newFakeProvider()
	profiles := newFakeProfileStore()
	svc := NewAccountService(provider, profiles)

	user, err := svc.Register(context.Background(), "dai@example.com", "pw", "Dai")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.Login(context.Background(), "dai@example.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Username != "Dai" {
		t.Errorf("username = %q, want profile value %q", res.Username, "Dai")
	}
	if res.CustomToken != "token-"+user.UID {
		t.Errorf("token = %q", res.CustomToken)
	}
}

func TestAccountServiceLoginUsernameFallbacks(t *testing.T) {
	// No profile document: fall back to display name, then the email's
	// local part, then the fixed default.
	cases := []struct {
		name        string
		displayName string
		email       string
		want        string
	}{
		{"display name", "Dai Jones", "dai@example.com", "Dai Jones"},
		{"email local part", "", "megan@example.com", "megan"},
		{"fixed default", "", "", "User"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := newFakeProvider()
			provider.users[tc.email] = identity.User{UID: "u1", Email: tc.email, DisplayName: tc.displayName}
			svc := NewAccountService(provider, newFakeProfileStore())

			email := tc.email
			if email == "" {
				// Account records can lack an email (phone auth).
				provider.users["login@example.com"] = identity.User{UID: "u1"}
				email = "login@example.com"
			}
			res, err := svc.Login(context.Background(), email)
			if err != nil {
				t.Fatalf("login: %v", err)
			}
			if res.Username != tc.want {
				t.Errorf("username = %q, want %q", res.Username, tc.want)
			}
		})
	}
}

func TestAccountServiceLoginErrors(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		svc := NewAccountService(newFakeProvider(), newFakeProfileStore())
		if _, err := svc.Login(context.Background(), "ghost@example.com"); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("err = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("token minting fails", func(t *testing.T) {
		provider := newFakeProvider()
		provider.users["dai@example.com"] = identity.User{UID: "u1", Email: "dai@example.com"}
		provider.tokenErr = errors.New("kms down")
		svc := NewAccountService(provider, newFakeProfileStore())
		if _, err := svc.Login(context.Background(), "dai@example.com"); !errors.Is(err, ErrProviderUnavailable) {
			t.Errorf("err = %v, want ErrProviderUnavailable", err)
		}
	})

	t.Run("profile store down", func(t *testing.T) {
		provider := newFakeProvider()
		provider.users["dai@example.com"] = identity.User{UID: "u1", Email: "dai@example.com"}
		profiles := newFakeProfileStore()
		profiles.getErr = errors.New("firestore unavailable")
		svc := NewAccountService(provider, profiles)
		if _, err := svc.Login(context.Background(), "dai@example.com"); !errors.Is(err, ErrStoreUnavailable) {
			t.Errorf("err = %v, want ErrStoreUnavailable", err)
		}
	})
}

func TestAccountServiceProfile(t *testing.T) {
	profiles := newFakeProfileStore()
	profiles.profiles["u1"] = domain.UserProfile{UID: "u1", Email: "dai@example.com", Username: "Dai"}
	svc := NewAccountService(newFakeProvider(), profiles)

	p, err := svc.Profile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.Username != "Dai" {
		t.Errorf("username = %q", p.Username)
	}

	if _, err := svc.Profile(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing profile: err = %v, want ErrNotFound", err)
	}
}
