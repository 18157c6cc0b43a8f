package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/best-life-api/internal/models"
	"github.com/best-life-api/internal/service"
	"github.com/best-life-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UserHandler handles user and role endpoints
type UserHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(services *service.Services, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		services: services,
		log:      log.With().Str("handler", "users").Logger(),
	}
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.services.User.GetUser(c.Request.Context(), id)
	if err != nil {
		backendFailure(c, h.log, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetByRole handles GET /users/role/:role. An integer segment is a role id
// and lists that role's user names; anything else is a role name and
// resolves to its id.
func (h *UserHandler) GetByRole(c *gin.Context) {
	ctx := c.Request.Context()
	role := c.Param("role")

	if validation.IsInteger(role) {
		roleID, _ := strconv.ParseInt(role, 10, 64)
		names, err := h.services.User.ListUsernames(ctx, roleID)
		if err != nil {
			backendFailure(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, names)
		return
	}

	roleID, err := h.services.User.GetRoleID(ctx, role)
	if err != nil {
		backendFailure(c, h.log, err)
		return
	}
	if roleID == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}

	c.JSON(http.StatusOK, *roleID)
}

// GetUserID handles GET /users/getID/:user_name
func (h *UserHandler) GetUserID(c *gin.Context) {
	userID, err := h.services.User.GetUserID(c.Request.Context(), c.Param("user_name"))
	if err != nil {
		backendFailure(c, h.log, err)
		return
	}
	if userID == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": *userID})
}

// DeleteUser handles DELETE /users/remove/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.services.User.DeleteUser(c.Request.Context(), id)
	if err != nil {
		backendFailure(c, h.log, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %d deleted successfully", id)})
}

// UpdateUserName handles PUT /users/name. It has no error envelope of its
// own; failures go to c.Error and the error middleware answers 500.
func (h *UserHandler) UpdateUserName(c *gin.Context) {
	var req models.UpdateUserNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.services.User.UpdateUserName(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User name updated successfully"})
}
