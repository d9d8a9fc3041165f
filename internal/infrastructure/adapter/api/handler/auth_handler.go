package handler

import (
	"net/http"
	"strings"

	domainerr "github.com/andreysazonov/office-booking/internal/domain/error"
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"github.com/andreysazonov/office-booking/internal/domain/port/usecase"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/api/dto"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/api/middleware"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/session"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and account preference requests
type AuthHandler struct {
	userService usecase.UserUseCase
	sessions    *session.Manager
	revocations session.RevocationStore
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	userService usecase.UserUseCase,
	sessions *session.Manager,
	revocations session.RevocationStore,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		sessions:    sessions,
		revocations: revocations,
		logger:      logger,
	}
}

// Register handles the POST /auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUsername),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	token, err := h.sessions.Issue(user.ID, user.Username)
	if err != nil {
		h.logger.Error("Failed to issue session token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	})
}

// Logout handles the POST /auth/logout endpoint. The presented token's id
// is recorded as revoked until the token would have expired anyway.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, err := h.sessions.Verify(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrTokenInvalid),
			Message: "Invalid or expired token",
		})
		return
	}

	if err := h.revocations.Revoke(c.Request.Context(), claims.ID, h.sessions.TTLUntilExpiry(claims)); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// Me handles the GET /auth/me endpoint
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrTokenInvalid),
			Message: "Missing authentication",
		})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	resp := dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
	if user.HasDefaultLocation() {
		resp.DefaultLocation = *user.DefaultLocation
	}
	c.JSON(http.StatusOK, resp)
}

// ChangePassword handles the PUT /auth/password endpoint
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrTokenInvalid),
			Message: "Missing authentication",
		})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidPassword),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetDefaultLocation handles the PUT /auth/location endpoint
func (h *AuthHandler) SetDefaultLocation(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrTokenInvalid),
			Message: "Missing authentication",
		})
		return
	}

	var req dto.DefaultLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnknownLocation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	if err := h.userService.SetDefaultLocation(c.Request.Context(), userID, req.Location); err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
