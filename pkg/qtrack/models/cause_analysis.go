package models

import (
	"time"
)

// AnalysisMethod is the root-cause method used for a cause analysis
type AnalysisMethod string

const (
	MethodFiveWhys AnalysisMethod = "5 Pourquoi"
	MethodIshikawa AnalysisMethod = "Ishikawa"
)

// CauseAnalysis is an append-only root-cause record attached to an NC.
// RootCause holds the normalized multi-line text produced from the raw
// 5 Pourquoi steps or Ishikawa categories. Rows are never updated or
// deleted; re-analysis of the same NC appends a new row.
type CauseAnalysis struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	NCID      uint           `gorm:"column:nc_id;not null;index" json:"nc_id"`
	Method    AnalysisMethod `gorm:"type:varchar(20);not null" json:"method"`
	RootCause string         `gorm:"not null" json:"root_cause"`

	NC NonConformity `gorm:"foreignKey:NCID" json:"-"`
}
