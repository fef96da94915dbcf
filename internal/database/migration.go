package database

import (
	"fmt"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Category{},
		&models.Bill{},
		&models.CreditCard{},
		&models.AccountBalance{},
		&models.SavingsGoal{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
