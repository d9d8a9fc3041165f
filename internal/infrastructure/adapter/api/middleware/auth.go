package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/andreysazonov/office-booking/internal/domain/error"
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/api/dto"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/session"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware
const (
	ContextUserID   = "auth_user_id"
	ContextUsername = "auth_username"
	ContextTokenID  = "auth_token_id"
)

// Auth middleware validates the bearer token and rejects revoked sessions
func Auth(manager *session.Manager, store session.RevocationStore, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrTokenInvalid),
				Message: "Missing bearer token",
			})
			return
		}

		claims, err := manager.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Warn("Rejected invalid session token", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrTokenInvalid),
				Message: "Invalid or expired token",
			})
			return
		}

		revoked, err := store.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logger.Error("Failed to check token revocation", map[string]any{
				"token_id": claims.ID,
				"error":    err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
				Message: "Internal server error",
			})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrTokenRevoked),
				Message: "Session has been logged out",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextTokenID, claims.ID)
		c.Next()
	}
}

// AuthenticatedUserID extracts the requester id set by the Auth middleware
func AuthenticatedUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok
}
