// Package dashboard serves aggregate NC statistics for the overview screen.
package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qtrack/qtrack/pkg/qtrack/models"
	"gorm.io/gorm"
)

const recentNCLimit = 5

// Handler handles dashboard requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new dashboard handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// StatsResponse represents NC counters for the dashboard
type StatsResponse struct {
	Total    int64 `json:"total"`
	Open     int64 `json:"open"`
	Critical int64 `json:"critical"`
	Closed   int64 `json:"closed"`
}

// RecentNC represents one entry of the recent-NC list
type RecentNC struct {
	ID            uint   `json:"id"`
	DefectType    string `json:"defect_type"`
	Workstation   string `json:"workstation"`
	Severity      string `json:"severity"`
	Status        string `json:"status"`
	DeclarantName string `json:"declarant_name"`
	DateNC        string `json:"date_nc"`
}

// DashboardResponse represents the dashboard payload
type DashboardResponse struct {
	Stats    StatsResponse `json:"stats"`
	RecentNC []RecentNC    `json:"recent_nc"`
}

// Get returns NC counters and the most recent declarations
// @Summary Dashboard statistics
// @Description Get NC counters and the five most recent declarations
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *Handler) Get(c *gin.Context) {
	var stats StatsResponse
	ncs := h.db.Model(&models.NonConformity{})
	if err := ncs.Count(&stats.Total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}
	h.db.Model(&models.NonConformity{}).Where("status = ?", models.NCStatusOuvert).Count(&stats.Open)
	h.db.Model(&models.NonConformity{}).Where("severity = ?", models.SeverityCritique).Count(&stats.Critical)
	h.db.Model(&models.NonConformity{}).Where("status = ?", models.NCStatusClos).Count(&stats.Closed)

	var rows []struct {
		models.NonConformity
		DeclarantName string
	}
	err := h.db.Model(&models.NonConformity{}).
		Select("non_conformities.*, users.username AS declarant_name").
		Joins("LEFT JOIN users ON users.id = non_conformities.declared_by_id").
		Order("non_conformities.date_nc DESC").
		Limit(recentNCLimit).
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent NCs"})
		return
	}

	recent := make([]RecentNC, len(rows))
	for i, row := range rows {
		recent[i] = RecentNC{
			ID:            row.ID,
			DefectType:    row.DefectType,
			Workstation:   row.Workstation,
			Severity:      string(row.Severity),
			Status:        string(row.Status),
			DeclarantName: row.DeclarantName,
			DateNC:        row.DateNC.Format("2006-01-02T15:04:05Z"),
		}
	}

	c.JSON(http.StatusOK, DashboardResponse{Stats: stats, RecentNC: recent})
}

// RegisterRoutes registers dashboard routes on the given router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Get)
}
