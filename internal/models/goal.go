package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsGoal tracks progress toward a saving target.
type SavingsGoal struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"index;not null" json:"userId"`
	Name          string          `gorm:"size:128;not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"targetAmount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline"`
	Category      string          `gorm:"size:64" json:"category"`
	Color         string          `gorm:"size:16;not null;default:#8b5cf6" json:"color"`
	Notes         string          `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// SavingsGoalUpdate is a partial savings goal for shallow merges.
type SavingsGoalUpdate struct {
	Name          *string          `json:"name"`
	TargetAmount  *decimal.Decimal `json:"targetAmount"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time       `json:"deadline"`
	Category      *string          `json:"category"`
	Color         *string          `json:"color"`
	Notes         *string          `json:"notes"`
}
