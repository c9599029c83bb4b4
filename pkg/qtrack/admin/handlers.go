// Package admin manages user accounts and roles. The set of users with role
// Admin or Quality Manager is the recipient set for critical-NC escalation
// emails, so role assignment lives behind the admin guard.
package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qtrack/qtrack/pkg/qtrack/auth"
	"github.com/qtrack/qtrack/pkg/qtrack/models"
	"gorm.io/gorm"
)

// Handler handles admin requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new admin handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// UserResponse represents user data in admin responses
type UserResponse struct {
	ID            uint   `json:"id"`
	Email         string `json:"email"`
	Username      string `json:"username"`
	Role          string `json:"role"`
	CreatedAt     string `json:"created_at"`
	DeclaredCount int64  `json:"declared_count"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Role     *string `json:"role" binding:"omitempty,oneof=User Admin 'Quality Manager'"`
}

func (h *Handler) userToResponse(user models.User) UserResponse {
	var declaredCount int64
	h.db.Model(&models.NonConformity{}).Where("declared_by_id = ?", user.ID).Count(&declaredCount)

	return UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Username:      user.Username,
		Role:          string(user.Role),
		CreatedAt:     user.CreatedAt.Format("2006-01-02T15:04:05Z"),
		DeclaredCount: declaredCount,
	}
}

// ListUsers returns all users (admin only)
// @Summary List users
// @Description Get all users, optionally filtered by role or search term
// @Tags admin
// @Produce json
// @Param q query string false "Search by email or username"
// @Param role query string false "Filter by role"
// @Success 200 {array} UserResponse
// @Failure 403 {object} map[string]string "Admin access required"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	var users []models.User

	query := h.db.Order("created_at DESC")

	// Optional search by email or username
	if search := c.Query("q"); search != "" {
		query = query.Where("email LIKE ? OR username LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	// Optional filter by role
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	if err := query.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = h.userToResponse(user)
	}

	c.JSON(http.StatusOK, responses)
}

// GetUser returns a single user by ID (admin only)
// @Summary Get a user
// @Description Get a single user by ID
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /admin/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, h.userToResponse(user))
}

// UpdateUser updates a user's username or role (admin only)
// @Summary Update a user
// @Description Change a user's username or role. Quality Manager and Admin roles receive escalation emails.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /admin/users/{id} [patch]
func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Admins cannot demote themselves
	if req.Role != nil && *req.Role != string(models.RoleAdmin) {
		if actingID, ok := auth.GetUserID(c); ok && actingID == user.ID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot change your own admin role"})
			return
		}
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}

	if len(updates) > 0 {
		if err := h.db.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
	}

	c.JSON(http.StatusOK, h.userToResponse(user))
}

// RegisterRoutes registers admin routes on the given router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.ListUsers)
	rg.GET("/users/:id", h.GetUser)
	rg.PATCH("/users/:id", h.UpdateUser)
}
