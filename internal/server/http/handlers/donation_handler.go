package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/givebox/internal/domain/errors"
	"github.com/polkiloo/givebox/internal/server/http/dto"
)

const msgInvalidAmount = "enter a valid donation amount"

// DonationHandler manages donation endpoints.
type DonationHandler struct {
	facade DonationFacade
}

// NewDonationHandler constructs DonationHandler.
func NewDonationHandler(facade DonationFacade) *DonationHandler {
	return &DonationHandler{facade: facade}
}

// Donate handles POST /api/donate.
func (h *DonationHandler) Donate(c *gin.Context) {
	var req dto.DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.Amount == nil {
		respondError(c, http.StatusBadRequest, msgInvalidAmount)
		return
	}

	_, err := h.facade.Donate(c.Request.Context(), CurrentUserID(c), *req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			respondError(c, http.StatusBadRequest, msgInvalidAmount)
		case errors.Is(err, domainErrors.ErrInvalidInput):
			respondError(c, http.StatusUnauthorized, "token required")
		default:
			respondInternal(c, http.StatusInternalServerError, err, "donation failed")
		}
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "donation successful"})
}

// List handles GET /api/donations.
func (h *DonationHandler) List(c *gin.Context) {
	donations, err := h.facade.Donations(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondInternal(c, http.StatusInternalServerError, err, "failed to fetch donations")
		return
	}

	resp := make([]dto.DonationResponse, 0, len(donations))
	for _, d := range donations {
		resp = append(resp, dto.DonationResponse{ID: d.ID, UserID: d.UserID, Amount: d.Amount, Date: d.Date})
	}
	c.JSON(http.StatusOK, resp)
}
