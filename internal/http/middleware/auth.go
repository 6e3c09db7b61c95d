package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/flipcymru/flipcymru-backend/internal/identity"
)

// Auth verifies the request's bearer ID token against the identity provider
// and stores the principal's UID in the Gin context under "userID".
//
// Requests without an Authorization header, with a non-Bearer scheme, or
// whose token fails verification (malformed, expired, revoked) are rejected
// with 401 and the standard error envelope. The middleware never
// distinguishes these cases in the response body; the reason is only logged.
func Auth(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			unauthorized(c, "missing bearer token")
			return
		}

		uid, err := provider.VerifyToken(c.Request.Context(), token)
		if err != nil {
			LoggerFrom(c).Warn().Err(err).Msg("token verification failed")
			unauthorized(c, "token verification failed")
			return
		}
		c.Set(userIDKey, uid)
		c.Next()
	}
}

// UserID returns the authenticated principal's UID set by Auth, empty when
// the request is unauthenticated.
func UserID(c *gin.Context) string {
	v, _ := c.Get(userIDKey)
	return asString(v)
}

// bearerToken extracts the credential from an "Authorization: Bearer <tok>"
// header, case-insensitive on the scheme. Empty when the header does not
// carry a bearer credential.
func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

func unauthorized(c *gin.Context, logMsg string) {
	rid, _ := c.Get(requestIDKey)
	LoggerFrom(c).Warn().Msg(logMsg)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": asString(rid),
		"code":       "unauthorized",
		"message":    "authentication required",
	})
}
