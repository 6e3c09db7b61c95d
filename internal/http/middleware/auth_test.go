package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/flipcymru/flipcymru-backend/internal/identity"
)

type stubProvider struct {
	uidByToken map[string]string
}

func (s *stubProvider) VerifyToken(_ context.Context, tok string) (string, error) {
	if uid, ok := s.uidByToken[tok]; ok {
		return uid, nil
	}
	return "", identity.ErrInvalidToken
}

func (s *stubProvider) CreateUser(context.Context, string, string, string) (identity.User, error) {
	return identity.User{}, nil
}
func (s *stubProvider) UserByEmail(context.Context, string) (identity.User, error) {
	return identity.User{}, identity.ErrUserNotFound
}
func (s *stubProvider) CustomToken(context.Context, string) (string, error) { return "", nil }

func authRouter(p identity.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Auth(p))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	captureLogger(t)
	r := authRouter(&stubProvider{uidByToken: map[string]string{"good": "u1"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if w.Body.String() != "u1" {
		t.Fatalf("uid = %q, want u1", w.Body.String())
	}
}

func TestAuth_Rejections(t *testing.T) {
	captureLogger(t)
	r := authRouter(&stubProvider{uidByToken: map[string]string{"good": "u1"}})

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic Zm9vOmJhcg=="},
		{"bad token", "Bearer expired"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
			if !strings.Contains(w.Body.String(), `"code":"unauthorized"`) {
				t.Fatalf("body = %q, want unauthorized envelope", w.Body.String())
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Bearer tok123", "tok123"},
		{"bearer tok123", "tok123"},
		{"BEARER  tok123 ", "tok123"},
		{"Bearer", ""},
		{"Basic abc", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := bearerToken(tc.in); got != tc.want {
			t.Errorf("bearerToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
