// File: handlers/users.go
package handlers

import (
	"net/http"

	"fairway/models"
	"fairway/services/user"
	"fairway/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes operator administration.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler constructs the user handler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// ListUsersHandler lists all operators.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Service.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUserHandler fetches one operator.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	userData, err := h.Service.GetUserByID(c.Request.Context(), c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userData})
}

// CreateUserHandler registers an operator.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateUser(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Error("Failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": created})
}

// UpdateUserHandler changes an operator's name, role, or course assignment.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	updated, err := h.Service.UpdateUser(c.Request.Context(), c.Param("userID"), req)
	if err != nil {
		utils.GetLogger().Error("Failed to update user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": updated})
}

// DeleteUserHandler removes an operator.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.Service.DeleteUser(c.Request.Context(), c.Param("userID")); err != nil {
		utils.GetLogger().Error("Failed to delete user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
