package models

import (
	"time"
)

// Severity classifies how serious a non-conformity is.
// Critique triggers an escalation email to quality management on declaration.
type Severity string

const (
	SeverityMineure  Severity = "Mineure"
	SeverityMajeure  Severity = "Majeure"
	SeverityCritique Severity = "Critique"
)

// NCStatus represents the lifecycle state of a non-conformity
type NCStatus string

const (
	NCStatusOuvert  NCStatus = "Ouvert"
	NCStatusEnCours NCStatus = "EnCours"
	NCStatusClos    NCStatus = "Clos"
)

// ValidNCStatus reports whether s is one of the enumerated NC states
func ValidNCStatus(s NCStatus) bool {
	return s == NCStatusOuvert || s == NCStatusEnCours || s == NCStatusClos
}

// NonConformity represents a recorded manufacturing quality incident.
// It is the aggregate root for cause analyses and corrective actions.
// NCs are never deleted, only transitioned; DeclaredByID and DateNC are
// immutable once set.
type NonConformity struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	DateNC       time.Time `gorm:"column:date_nc;autoCreateTime" json:"date_nc"`
	DefectType   string    `gorm:"not null" json:"defect_type"`
	Workstation  string    `gorm:"not null" json:"workstation"`
	Severity     Severity  `gorm:"type:varchar(10);not null" json:"severity"`
	Description  string    `json:"description"`
	Status       NCStatus  `gorm:"type:varchar(10);default:'Ouvert'" json:"status"`
	DeclaredByID uint      `gorm:"not null;index" json:"declared_by"`

	DeclaredBy User `gorm:"foreignKey:DeclaredByID" json:"-"`
}
