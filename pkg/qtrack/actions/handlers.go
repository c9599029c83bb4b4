// Package actions manages corrective actions bound to an NC: creation with
// assignment email, status updates by the responsible party, and derived
// lateness on every read.
package actions

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qtrack/qtrack/pkg/qtrack/models"
	"github.com/qtrack/qtrack/pkg/qtrack/notify"
	"gorm.io/gorm"
)

// Handler handles corrective-action requests
type Handler struct {
	db       *gorm.DB
	notifier notify.Notifier
}

// NewHandler creates a new actions handler
func NewHandler(db *gorm.DB, notifier notify.Notifier) *Handler {
	return &Handler{db: db, notifier: notifier}
}

// CreateActionRequest represents the request to create a corrective action
type CreateActionRequest struct {
	NCID         uint   `json:"nc_id" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Responsible  string `json:"responsible" binding:"required,email"`
	DeadlineDays int    `json:"deadline_days" binding:"required,gt=0"`
}

// UpdateStatusRequest represents the request to change an action's status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Ouvert EnCours Terminé"`
}

// ActionResponse represents a corrective action in API responses.
// IsLate and DaysOverdue are derived from created_at, deadline_days and
// status at read time.
type ActionResponse struct {
	ID           uint   `json:"id"`
	NCID         uint   `json:"nc_id"`
	Description  string `json:"description"`
	Responsible  string `json:"responsible"`
	DeadlineDays int    `json:"deadline_days"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	IsLate       bool   `json:"is_late"`
	DaysOverdue  int    `json:"days_overdue"`
}

func actionToResponse(a models.CorrectiveAction, now time.Time) ActionResponse {
	isLate, daysOverdue := Lateness(a.CreatedAt, a.DeadlineDays, a.Status, now)
	return ActionResponse{
		ID:           a.ID,
		NCID:         a.NCID,
		Description:  a.Description,
		Responsible:  a.Responsible,
		DeadlineDays: a.DeadlineDays,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt.Format("2006-01-02T15:04:05Z"),
		IsLate:       isLate,
		DaysOverdue:  daysOverdue,
	}
}

// Create persists a new corrective action and informs the responsible party
// @Summary Create a corrective action
// @Description Bind a remediation task to an NC and email the responsible party
// @Tags actions
// @Accept json
// @Produce json
// @Param request body CreateActionRequest true "Corrective action details"
// @Success 201 {object} ActionResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "NC not found"
// @Security BearerAuth
// @Router /corrective-actions [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var n models.NonConformity
	if err := h.db.First(&n, req.NCID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "NC introuvable"})
		return
	}

	a := models.CorrectiveAction{
		NCID:         n.ID,
		Description:  req.Description,
		Responsible:  req.Responsible,
		DeadlineDays: req.DeadlineDays,
		Status:       models.ActionStatusOuvert,
	}

	if err := h.db.Create(&a).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create corrective action"})
		return
	}

	// Inform the responsible party. Same policy as the critical-NC
	// escalation: delivery failure is logged and swallowed.
	msg := notify.ActionAssignedMessage(a.Responsible, a.NCID, a.Description, a.DeadlineDays)
	if _, err := h.notifier.Send(c.Request.Context(), msg); err != nil {
		log.Printf("assignment email not sent for action #%d: %v", a.ID, err)
	}

	c.JSON(http.StatusCreated, actionToResponse(a, time.Now()))
}

// List returns all corrective actions with computed lateness
// @Summary List corrective actions
// @Description Get all corrective actions, newest first, each with is_late and days_overdue
// @Tags actions
// @Produce json
// @Param nc_id query int false "Filter by NC ID"
// @Success 200 {array} ActionResponse
// @Failure 401 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /corrective-actions [get]
func (h *Handler) List(c *gin.Context) {
	query := h.db.Order("created_at DESC")

	if ncID := c.Query("nc_id"); ncID != "" {
		query = query.Where("nc_id = ?", ncID)
	}

	var actionList []models.CorrectiveAction
	if err := query.Find(&actionList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch corrective actions"})
		return
	}

	now := time.Now()
	responses := make([]ActionResponse, len(actionList))
	for i, a := range actionList {
		responses[i] = actionToResponse(a, now)
	}

	c.JSON(http.StatusOK, responses)
}

// UpdateStatus changes the status of a corrective action
// @Summary Update corrective action status
// @Description Move an action between Ouvert, EnCours and Terminé
// @Tags actions
// @Accept json
// @Produce json
// @Param id path int true "Action ID"
// @Param request body UpdateStatusRequest true "Target status"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Action not found"
// @Security BearerAuth
// @Router /corrective-actions/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action ID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var a models.CorrectiveAction
	if err := h.db.First(&a, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Action introuvable"})
		return
	}

	// Only the status column changes; nc_id, created_at and deadline_days
	// are immutable.
	if err := h.db.Model(&a).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	a.Status = models.ActionStatus(req.Status)

	c.JSON(http.StatusOK, actionToResponse(a, time.Now()))
}

// RegisterRoutes registers corrective-action routes on the given router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/corrective-actions", h.Create)
	rg.GET("/corrective-actions", h.List)
	rg.PATCH("/corrective-actions/:id/status", h.UpdateStatus)
}
