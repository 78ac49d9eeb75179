// File: handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"fairway/models"
	"fairway/services/user"
	"fairway/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes operator signin.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler constructs the auth handler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// LoginHandler authenticates an operator and returns a bearer token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to authenticate operator", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
