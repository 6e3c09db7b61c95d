package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
	"github.com/flipcymru/flipcymru-backend/internal/identity"
	"github.com/flipcymru/flipcymru-backend/internal/services"
)

func TestRegisterUser_Success(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/register-user",
		`{"email":"dai@example.com","password":"hunter2h","username":"Dai"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp RegisterUserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.UID == "" || resp.Email != "dai@example.com" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestRegisterUser_Rejections(t *testing.T) {
	r, deps := newTestRouter(t)

	cases := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{"malformed json", `{`, nil, http.StatusBadRequest, ErrCodeBadRequest},
		{"missing password", `{"email":"a@b.c"}`, nil, http.StatusBadRequest, ErrCodeBadRequest},
		{"bad email", `{"email":"nope","password":"hunter2h"}`, nil, http.StatusBadRequest, ErrCodeBadRequest},
		{"duplicate email", `{"email":"a@b.cy","password":"hunter2h"}`, services.ErrEmailExists, http.StatusConflict, ErrCodeConflict},
		{"provider down", `{"email":"a@b.cy","password":"hunter2h"}`, services.ErrProviderUnavailable, http.StatusBadGateway, ErrCodeProviderUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps.account.registerErr = tc.svcErr
			w := doJSON(t, r, http.MethodPost, "/api/register-user", tc.body)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tc.wantStatus, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), `"code":"`+tc.wantCode+`"`) {
				t.Fatalf("body = %s, want code %s", w.Body.String(), tc.wantCode)
			}
		})
	}
}

func TestLoginUser_Success(t *testing.T) {
	r, deps := newTestRouter(t)
	deps.account.loginRes = services.LoginResult{
		User:        identity.User{UID: "u1", Email: "dai@example.com"},
		Username:    "Dai",
		CustomToken: "tok123",
	}

	w := doJSON(t, r, http.MethodPost, "/api/login-user", `{"email":"dai@example.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp LoginUserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.CustomToken != "tok123" || resp.Username != "Dai" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestLoginUser_UnknownEmailIs404(t *testing.T) {
	r, deps := newTestRouter(t)
	deps.account.loginErr = services.ErrUserNotFound

	w := doJSON(t, r, http.MethodPost, "/api/login-user", `{"email":"ghost@example.com"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"code":"not_found"`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestGetUserProfile(t *testing.T) {
	r, deps := newTestRouter(t)
	deps.account.profile = domain.UserProfile{UID: "u1", Email: "dai@example.com", Username: "Dai"}

	w := doJSON(t, r, http.MethodGet, "/api/get-user-profile", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"username":"Dai"`) {
		t.Fatalf("body = %s", w.Body.String())
	}

	deps.account.profileErr = services.ErrNotFound
	w2 := doJSON(t, r, http.MethodGet, "/api/get-user-profile", "")
	if w2.Code != http.StatusNotFound {
		t.Fatalf("missing profile: status = %d, want 404", w2.Code)
	}
}
