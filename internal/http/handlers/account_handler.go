// Account HTTP handlers.
//
// This file exposes the registration, login, and profile endpoints:
//   - POST /register-user       (create account + seed profile)
//   - POST /login-user          (resolve email, mint custom token)
//   - GET  /get-user-profile    (authenticated profile read)
//
// Login does not take a password: the identity provider owns password
// verification. The endpoint resolves the account and returns a custom token
// the client exchanges with the provider to complete sign-in.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterUserRequest is the JSON payload for creating an account.
type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required,email" example:"dai@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"hunter2h"`
	Username string `json:"username" example:"Dai"`
}

// RegisterUserResponse confirms a successful registration.
type RegisterUserResponse struct {
	Message  string `json:"message" example:"User registered successfully!"`
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// LoginUserRequest is the JSON payload for logging in.
type LoginUserRequest struct {
	Email string `json:"email" binding:"required,email" example:"dai@example.com"`
}

// LoginUserResponse carries the custom token the client signs in with.
type LoginUserResponse struct {
	Message     string `json:"message" example:"User found, custom token generated."`
	UID         string `json:"uid"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	CustomToken string `json:"customToken"`
}

// RegisterUser godoc
// @ID          registerUser
// @Summary     Register a new user
// @Description Creates the account with the identity provider and seeds the
// @Description user's profile with default learning preferences.
// @Tags        Accounts
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.RegisterUserRequest  true  "Registration payload"
// @Success     201  {object}  handlers.RegisterUserResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Email already in use"
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream failure"
// @Router      /register-user [post]
func (h *Handlers) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email and password (min 6 chars) required")
		return
	}

	user, err := h.accountSvc.Register(c.Request.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		failFromService(c, err)
		return
	}

	ok(c, http.StatusCreated, RegisterUserResponse{
		Message:  "User registered successfully!",
		UID:      user.UID,
		Email:    user.Email,
		Username: user.DisplayName,
	})
}

// LoginUser godoc
// @ID          loginUser
// @Summary     Log in by email
// @Description Resolves the email to an account and returns a custom token
// @Description the client exchanges with the identity provider for a session.
// @Tags        Accounts
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.LoginUserRequest  true  "Login payload"
// @Success     200  {object}  handlers.LoginUserResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream failure"
// @Router      /login-user [post]
func (h *Handlers) LoginUser(c *gin.Context) {
	var req LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "valid email required")
		return
	}

	res, err := h.accountSvc.Login(c.Request.Context(), req.Email)
	if err != nil {
		failFromService(c, err)
		return
	}

	ok(c, http.StatusOK, LoginUserResponse{
		Message:     "User found, custom token generated.",
		UID:         res.User.UID,
		Email:       res.User.Email,
		Username:    res.Username,
		CustomToken: res.CustomToken,
	})
}

// GetUserProfile godoc
// @ID          getUserProfile
// @Summary     Get the authenticated user's profile
// @Tags        Accounts
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object}  domain.UserProfile
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Profile not found"
// @Failure     502  {object}  handlers.ErrorResponse  "Store unavailable"
// @Router      /get-user-profile [get]
func (h *Handlers) GetUserProfile(c *gin.Context) {
	profile, err := h.accountSvc.Profile(c.Request.Context(), userID(c))
	if err != nil {
		failFromService(c, err)
		return
	}
	ok(c, http.StatusOK, profile)
}
