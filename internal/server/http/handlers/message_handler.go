package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/givebox/internal/server/http/dto"
)

// MessageHandler accepts contact form submissions.
type MessageHandler struct {
	facade MessageFacade
}

// NewMessageHandler constructs MessageHandler.
func NewMessageHandler(facade MessageFacade) *MessageHandler {
	return &MessageHandler{facade: facade}
}

// Submit handles POST /api/messages.
func (h *MessageHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if _, err := h.facade.SubmitMessage(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
		respondInternal(c, http.StatusInternalServerError, err, "message could not be saved")
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "message saved"})
}
