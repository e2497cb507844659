package migration

import (
	"accountsforge/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model the auto-migrate strategy
// manages. New models must be added here to get a table in development.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ProfileModel{},
		&models.ExpenseModel{},
		&models.RevenueModel{},
		&models.ClaimModel{},
		&models.CommissionRecordModel{},
		&models.NotificationModel{},
	}
}
