package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/givebox/internal/domain/errors"
	pkgAuth "github.com/polkiloo/givebox/internal/pkg/auth"
	"github.com/polkiloo/givebox/internal/server/http/dto"
)

var msgPasswordTooLong = fmt.Sprintf("password must be at most %d bytes", pkgAuth.MaxPasswordLength)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err := h.facade.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, pkgAuth.ErrPasswordTooLong):
			respondError(c, http.StatusBadRequest, msgPasswordTooLong)
		case errors.Is(err, domainErrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "username and password are required")
		default:
			// duplicates are reported like any other storage failure
			respondInternal(c, http.StatusInternalServerError, err, "registration failed")
		}
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "user registered successfully"})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "username and password are required")
		case errors.Is(err, domainErrors.ErrNotFound):
			respondError(c, http.StatusBadRequest, "user not found")
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			respondError(c, http.StatusBadRequest, "wrong password")
		default:
			respondInternal(c, http.StatusInternalServerError, err, "login failed")
		}
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Message: "login successful", Token: token})
}
