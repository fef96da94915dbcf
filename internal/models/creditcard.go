package models

import "github.com/shopspring/decimal"

// CreditCard holds card metadata for the dashboard. DueDate and ClosingDate
// are days of the month, not calendar dates.
type CreditCard struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	UserID         uint            `gorm:"index;not null" json:"userId"`
	Name           string          `gorm:"size:64;not null" json:"name"`
	LastFourDigits string          `gorm:"size:4;not null" json:"lastFourDigits"`
	Limit          decimal.Decimal `gorm:"column:credit_limit;type:decimal(10,2);not null" json:"limit"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"currentBalance"`
	DueDate        int             `gorm:"not null" json:"dueDate"`     // day of month
	ClosingDate    int             `gorm:"not null" json:"closingDate"` // day of month
	CardType       string          `gorm:"size:32" json:"cardType"`     // visa, mastercard, etc
	Color          string          `gorm:"size:16;not null" json:"color"`
}

// CreditCardUpdate is a partial credit card for shallow merges.
type CreditCardUpdate struct {
	Name           *string          `json:"name"`
	LastFourDigits *string          `json:"lastFourDigits"`
	Limit          *decimal.Decimal `json:"limit"`
	CurrentBalance *decimal.Decimal `json:"currentBalance"`
	DueDate        *int             `json:"dueDate"`
	ClosingDate    *int             `json:"closingDate"`
	CardType       *string          `json:"cardType"`
	Color          *string          `json:"color"`
}
