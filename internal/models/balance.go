package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance is the per-user running snapshot maintained by the balance
// aggregator. One row per user. It is a derived cache over the transaction
// set; every transaction mutation reconciles it symmetrically so it cannot
// drift from the true signed sum.
type AccountBalance struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"uniqueIndex;not null" json:"userId"`
	TotalBalance    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalBalance"`
	MonthlyIncome   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monthlyExpenses"`
	CreditCardBills decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"creditCardBills"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
