// Package nc owns the non-conformity lifecycle: declaration, listing and
// status transitions, including the escalation email on critical declarations
// and the closure guard over bound corrective actions.
package nc

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qtrack/qtrack/pkg/qtrack/auth"
	"github.com/qtrack/qtrack/pkg/qtrack/identity"
	"github.com/qtrack/qtrack/pkg/qtrack/models"
	"github.com/qtrack/qtrack/pkg/qtrack/notify"
	"gorm.io/gorm"
)

// Handler handles non-conformity requests
type Handler struct {
	db       *gorm.DB
	notifier notify.Notifier
}

// NewHandler creates a new NC handler
func NewHandler(db *gorm.DB, notifier notify.Notifier) *Handler {
	return &Handler{db: db, notifier: notifier}
}

// DeclareRequest represents the request to declare a non-conformity
type DeclareRequest struct {
	DefectType  string `json:"defect_type" binding:"required"`
	Workstation string `json:"workstation" binding:"required"`
	Severity    string `json:"severity" binding:"required,oneof=Mineure Majeure Critique"`
	Description string `json:"description"`
}

// TransitionRequest represents the request to change an NC's status
type TransitionRequest struct {
	Status string `json:"status" binding:"required,oneof=Ouvert EnCours Clos"`
}

// NCResponse represents a non-conformity in API responses
type NCResponse struct {
	ID            uint   `json:"id"`
	DefectType    string `json:"defect_type"`
	Workstation   string `json:"workstation"`
	Severity      string `json:"severity"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	DeclaredBy    uint   `json:"declared_by"`
	DeclarantName string `json:"declarant_name,omitempty"`
	DateNC        string `json:"date_nc"`
}

func ncToResponse(n models.NonConformity) NCResponse {
	return NCResponse{
		ID:          n.ID,
		DefectType:  n.DefectType,
		Workstation: n.Workstation,
		Severity:    string(n.Severity),
		Description: n.Description,
		Status:      string(n.Status),
		DeclaredBy:  n.DeclaredByID,
		DateNC:      n.DateNC.Format("2006-01-02T15:04:05Z"),
	}
}

// Declare creates a new non-conformity
// @Summary Declare a non-conformity
// @Description Record a new quality incident. Critical severity triggers an escalation email to quality management.
// @Tags nc
// @Accept json
// @Produce json
// @Param request body DeclareRequest true "Non-conformity details"
// @Success 201 {object} NCResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /nc [post]
func (h *Handler) Declare(c *gin.Context) {
	var req DeclareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, ok := auth.GetEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	name, _ := auth.GetName(c)

	// Resolve the acting user, provisioning one on first contact
	user, err := identity.Resolve(h.db, email, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
		return
	}

	n := models.NonConformity{
		DefectType:   req.DefectType,
		Workstation:  req.Workstation,
		Severity:     models.Severity(req.Severity),
		Description:  req.Description,
		Status:       models.NCStatusOuvert,
		DeclaredByID: user.ID,
	}

	if err := h.db.Create(&n).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create non-conformity"})
		return
	}

	// Escalate critical NCs to quality management. Delivery failure must
	// not fail the declaration: the NC row is the source of truth, the
	// email is best-effort.
	if n.Severity == models.SeverityCritique {
		h.escalate(c, n)
	}

	c.JSON(http.StatusCreated, ncToResponse(n))
}

// escalate sends the critical-NC email to all admins and quality managers
func (h *Handler) escalate(c *gin.Context, n models.NonConformity) {
	var recipients []string
	err := h.db.Model(&models.User{}).
		Distinct("email").
		Where("role IN ? AND email IS NOT NULL AND email != ''", models.EscalationRoles).
		Pluck("email", &recipients).Error
	if err != nil {
		log.Printf("escalation recipients lookup failed for NC #%d: %v", n.ID, err)
		return
	}

	msg := notify.CriticalNCMessage(recipients, n.ID, n.DefectType, n.Workstation, n.Description, n.DateNC)
	if _, err := h.notifier.Send(c.Request.Context(), msg); err != nil {
		log.Printf("escalation email not sent for NC #%d: %v", n.ID, err)
	}
}

// List returns all non-conformities
// @Summary List non-conformities
// @Description Get all non-conformities, newest first, with declarant names
// @Tags nc
// @Produce json
// @Param status query string false "Filter by status (Ouvert, EnCours, Clos)"
// @Success 200 {array} NCResponse
// @Failure 401 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /nc [get]
func (h *Handler) List(c *gin.Context) {
	query := h.db.Model(&models.NonConformity{}).
		Select("non_conformities.*, users.username AS declarant_name").
		Joins("LEFT JOIN users ON users.id = non_conformities.declared_by_id").
		Order("non_conformities.date_nc DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("non_conformities.status = ?", status)
	}

	var rows []struct {
		models.NonConformity
		DeclarantName string
	}
	if err := query.Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch non-conformities"})
		return
	}

	responses := make([]NCResponse, len(rows))
	for i, row := range rows {
		responses[i] = ncToResponse(row.NonConformity)
		responses[i].DeclarantName = row.DeclarantName
	}

	c.JSON(http.StatusOK, responses)
}

// Transition changes the status of a non-conformity
// @Summary Transition a non-conformity
// @Description Change NC status. Closing requires all bound corrective actions to be Terminé.
// @Tags nc
// @Accept json
// @Produce json
// @Param id path int true "NC ID"
// @Param request body TransitionRequest true "Target status"
// @Success 200 {object} NCResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "NC not found"
// @Failure 409 {object} map[string]string "Open corrective actions remain"
// @Security BearerAuth
// @Router /nc/{id}/status [patch]
func (h *Handler) Transition(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid NC ID"})
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var n models.NonConformity
	if err := h.db.First(&n, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "NC introuvable"})
		return
	}

	// Closure guard: an NC cannot move to Clos while any bound corrective
	// action is unfinished.
	if models.NCStatus(req.Status) == models.NCStatusClos {
		var open int64
		err := h.db.Model(&models.CorrectiveAction{}).
			Where("nc_id = ? AND status != ?", n.ID, models.ActionStatusTermine).
			Count(&open).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check corrective actions"})
			return
		}
		if open > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Impossible de clore: des actions correctives ne sont pas terminées"})
			return
		}
	}

	// Only the status column changes; declared_by and date_nc are immutable.
	if err := h.db.Model(&n).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	n.Status = models.NCStatus(req.Status)

	c.JSON(http.StatusOK, ncToResponse(n))
}

// RegisterRoutes registers NC routes on the given router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/nc", h.Declare)
	rg.GET("/nc", h.List)
	rg.PATCH("/nc/:id/status", h.Transition)
}
