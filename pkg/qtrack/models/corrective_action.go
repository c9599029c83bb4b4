package models

import (
	"time"
)

// ActionStatus represents the lifecycle state of a corrective action
type ActionStatus string

const (
	ActionStatusOuvert  ActionStatus = "Ouvert"
	ActionStatusEnCours ActionStatus = "EnCours"
	ActionStatusTermine ActionStatus = "Terminé"
)

// ValidActionStatus reports whether s is one of the enumerated action states
func ValidActionStatus(s ActionStatus) bool {
	return s == ActionStatusOuvert || s == ActionStatusEnCours || s == ActionStatusTermine
}

// CorrectiveAction is a remediation task bound to an NC, owned by a
// responsible party, with a day-count deadline. Lateness is derived at read
// time from CreatedAt, DeadlineDays and Status — it is never stored.
// NCID, CreatedAt and DeadlineDays are immutable once created.
type CorrectiveAction struct {
	ID           uint         `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time    `json:"created_at"`
	NCID         uint         `gorm:"column:nc_id;not null;index" json:"nc_id"`
	Description  string       `gorm:"not null" json:"description"`
	Responsible  string       `gorm:"not null" json:"responsible"`
	DeadlineDays int          `gorm:"not null" json:"deadline_days"`
	Status       ActionStatus `gorm:"type:varchar(10);default:'Ouvert'" json:"status"`

	NC NonConformity `gorm:"foreignKey:NCID" json:"-"`
}
