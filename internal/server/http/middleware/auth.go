package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/polkiloo/givebox/internal/server/http/dto"
)

// UserIDContextKey is a gin context key for authenticated user identifier.
const UserIDContextKey = "userID"

// TokenParser resolves a bearer token into a user identifier.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// AuthRequired ensures user is authenticated before accessing handler.
// A missing token yields 401, any token that fails verification yields 403.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "token required"})
			return
		}

		userID, err := parser.ParseToken(token)
		if err != nil || userID == "" {
			zerolog.Ctx(c.Request.Context()).Debug().Err(err).Msg("token rejected")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "invalid token"})
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

// extractToken reads the Authorization header. The raw token is accepted as is;
// a "Bearer " prefix is stripped when present.
func extractToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	const scheme = "bearer"
	if len(header) >= len(scheme) && strings.EqualFold(header[:len(scheme)], scheme) &&
		(len(header) == len(scheme) || header[len(scheme)] == ' ') {
		return strings.TrimSpace(header[len(scheme):])
	}
	return header
}
