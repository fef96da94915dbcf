package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types. Amounts are stored non-negative; the direction of the
// money movement is carried by Type, never by the sign of Amount.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is a single income or expense record. Amounts use decimal
// semantics end to end so currency math never touches binary floats.
type Transaction struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"index;not null" json:"userId"`
	Description   string          `gorm:"size:255;not null" json:"description"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date          time.Time       `gorm:"index;not null" json:"date"`
	Type          string          `gorm:"size:16;index;not null" json:"type"` // income / expense
	Category      string          `gorm:"size:64;not null" json:"category"`   // references Category.Name by convention
	PaymentMethod string          `gorm:"size:64" json:"paymentMethod"`
	Notes         string          `gorm:"type:text" json:"notes"`
	CreditCardID  *uint           `gorm:"index" json:"creditCardId"`
	ReceiptImage  string          `gorm:"type:text" json:"receiptImage,omitempty"` // inline data URL
	CreatedAt     time.Time       `json:"-"`
	UpdatedAt     time.Time       `json:"-"`
}

// TransactionUpdate is a partial transaction for shallow merges. Nil fields
// are left untouched.
type TransactionUpdate struct {
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	Date          *time.Time       `json:"date"`
	Type          *string          `json:"type"`
	Category      *string          `json:"category"`
	PaymentMethod *string          `json:"paymentMethod"`
	Notes         *string          `json:"notes"`
	CreditCardID  *uint            `json:"creditCardId"`
	ReceiptImage  *string          `json:"receiptImage"`
}
