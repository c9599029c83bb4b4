package models

import "gorm.io/gorm"

// AllModels returns all models for migration
// Note: User must be migrated first as the other models reference it
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&NonConformity{},
		&CauseAnalysis{},
		&CorrectiveAction{},
	}
}

// AutoMigrate runs GORM auto-migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
