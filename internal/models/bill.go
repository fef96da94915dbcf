package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a payable with a due date. "Upcoming" is derived, never stored:
// dueDate >= now && !paid.
type Bill struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"userId"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	DueDate     time.Time       `gorm:"index;not null" json:"dueDate"`
	Paid        bool            `gorm:"not null;default:false" json:"paid"`
	Recurring   bool            `gorm:"not null;default:false" json:"recurring"`
	Category    string          `gorm:"size:64" json:"category"`
	Notes       string          `gorm:"type:text" json:"notes"`
}

// BillUpdate is a partial bill for shallow merges.
type BillUpdate struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     *time.Time       `json:"dueDate"`
	Paid        *bool            `json:"paid"`
	Recurring   *bool            `json:"recurring"`
	Category    *string          `json:"category"`
	Notes       *string          `json:"notes"`
}
