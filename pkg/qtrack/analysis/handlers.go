// Package analysis records root-cause analyses (5 Pourquoi or Ishikawa)
// against an existing NC as an append-only evidence trail.
package analysis

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qtrack/qtrack/pkg/qtrack/models"
	"gorm.io/gorm"
)

const maxWhySteps = 5

// Handler handles cause-analysis requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new analysis handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// RecordRequest represents the request to record a cause analysis.
// WhySteps is used with method "5 Pourquoi", Ishikawa with "Ishikawa".
type RecordRequest struct {
	NCID     uint           `json:"nc_id" binding:"required"`
	Method   string         `json:"method" binding:"required,oneof='5 Pourquoi' Ishikawa"`
	WhySteps []string       `json:"why_steps"`
	Ishikawa *IshikawaInput `json:"ishikawa"`
}

// AnalysisResponse represents a cause analysis in API responses
type AnalysisResponse struct {
	ID        uint   `json:"id"`
	NCID      uint   `json:"nc_id"`
	Method    string `json:"method"`
	RootCause string `json:"root_cause"`
	CreatedAt string `json:"created_at"`
}

func analysisToResponse(a models.CauseAnalysis) AnalysisResponse {
	return AnalysisResponse{
		ID:        a.ID,
		NCID:      a.NCID,
		Method:    string(a.Method),
		RootCause: a.RootCause,
		CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// Record validates and persists a cause analysis
// @Summary Record a cause analysis
// @Description Normalize and attach a 5 Pourquoi or Ishikawa analysis to an NC
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body RecordRequest true "Analysis input"
// @Success 201 {object} AnalysisResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "NC not found"
// @Security BearerAuth
// @Router /cause-analysis [post]
func (h *Handler) Record(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var n models.NonConformity
	if err := h.db.First(&n, req.NCID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "NC introuvable"})
		return
	}

	var rootCause string
	switch models.AnalysisMethod(req.Method) {
	case models.MethodFiveWhys:
		if len(req.WhySteps) > maxWhySteps {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Au maximum 5 pourquoi"})
			return
		}
		rootCause = NormalizeFiveWhys(req.WhySteps)
		if rootCause == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Remplissez au moins un pourquoi"})
			return
		}
	case models.MethodIshikawa:
		// Unlike 5 Pourquoi, an all-blank Ishikawa is accepted: the fixed
		// 5-line block is recorded as-is.
		var in IshikawaInput
		if req.Ishikawa != nil {
			in = *req.Ishikawa
		}
		rootCause = NormalizeIshikawa(in)
	}

	a := models.CauseAnalysis{
		NCID:      n.ID,
		Method:    models.AnalysisMethod(req.Method),
		RootCause: rootCause,
	}

	if err := h.db.Create(&a).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create analysis"})
		return
	}

	c.JSON(http.StatusCreated, analysisToResponse(a))
}

// List returns all cause analyses
// @Summary List cause analyses
// @Description Get all recorded analyses, newest first
// @Tags analysis
// @Produce json
// @Param nc_id query int false "Filter by NC ID"
// @Success 200 {array} AnalysisResponse
// @Failure 401 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /cause-analysis [get]
func (h *Handler) List(c *gin.Context) {
	query := h.db.Order("created_at DESC")

	if ncID := c.Query("nc_id"); ncID != "" {
		query = query.Where("nc_id = ?", ncID)
	}

	var analyses []models.CauseAnalysis
	if err := query.Find(&analyses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analyses"})
		return
	}

	responses := make([]AnalysisResponse, len(analyses))
	for i, a := range analyses {
		responses[i] = analysisToResponse(a)
	}

	c.JSON(http.StatusOK, responses)
}

// RegisterRoutes registers analysis routes on the given router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cause-analysis", h.Record)
	rg.GET("/cause-analysis", h.List)
}
