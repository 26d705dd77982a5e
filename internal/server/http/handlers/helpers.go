package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/polkiloo/givebox/internal/server/http/dto"
	"github.com/polkiloo/givebox/internal/server/http/middleware"
)

const msgInvalidBody = "invalid request body"

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(middleware.UserIDContextKey)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Error: message})
}

// respondInternal logs err with the request-scoped logger and answers with a generic message.
func respondInternal(c *gin.Context, status int, err error, message string) {
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg(message)
	respondError(c, status, message)
}
