// Package handlers provides the HTTP handler implementations for the public
// API.
//
// This file defines the response utilities shared by all endpoints: the
// standard error envelope, the fail/ok helpers, and the mapping from
// service-level errors to HTTP statuses and stable error codes.
//
// Conventions:
//   - All error responses return an ErrorResponse with a stable `code`.
//   - fail() centralizes formatting and logs 5xx responses with request
//     context.
//   - Upstream dependency failures (document store, language or speech
//     provider) answer 502, not 500: the service itself is healthy, its
//     collaborator is not.
//
// Example error response:
//
//	HTTP/1.1 502 Bad Gateway
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "store_unavailable",
//	  "message": "document store unavailable"
//	}
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flipcymru/flipcymru-backend/internal/http/middleware"
	"github.com/flipcymru/flipcymru-backend/internal/services"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"resource not found"`
}

// fail aborts the request with a structured error envelope. Responses at 500
// and above are additionally logged with the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail(), for router-level handlers
// (NoRoute, NoMethod) that live outside this package.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// failFromService translates a service-layer error into the matching HTTP
// response. Unrecognized errors become a 500 with the error text logged but
// a generic message on the wire.
func failFromService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		fail(c, http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
	case errors.Is(err, services.ErrEmptyCategory):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrEmailExists):
		fail(c, http.StatusConflict, ErrCodeConflict, "the provided email is already in use")
	case errors.Is(err, services.ErrUserNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "resource not found")
	case errors.Is(err, services.ErrStoreUnavailable):
		fail(c, http.StatusBadGateway, ErrCodeStoreUnavailable, "document store unavailable")
	case errors.Is(err, services.ErrProviderUnavailable):
		fail(c, http.StatusBadGateway, ErrCodeProviderUnavailable, "upstream provider unavailable")
	default:
		middleware.LoggerFrom(c).Error().Err(err).Msg("unclassified service error")
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}
}
