package models

import (
	"time"
)

// Role represents a user's system-wide role
type Role string

const (
	RoleUser           Role = "User"
	RoleAdmin          Role = "Admin"
	RoleQualityManager Role = "Quality Manager"
)

// EscalationRoles are the roles notified when a critical NC is declared
var EscalationRoles = []Role{RoleAdmin, RoleQualityManager}

// User represents a user in the system.
// Users are created either through registration or lazily on first contact
// from an unseen authenticated principal (see identity.Resolve).
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `gorm:"not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `json:"-"` // Empty for auto-provisioned users
	Role         Role      `gorm:"type:varchar(20);default:'User'" json:"role"`
}
