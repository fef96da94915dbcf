package util

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.New(1, 7) // 10 million

// ValidateAmount checks a monetary amount: positive, below the sanity cap.
// Direction (income/expense) is carried by the transaction type, so the
// stored number itself must never be negative.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", amount)
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("amount too large, got %s", amount)
	}
	return nil
}

// ValidateDayOfMonth checks a credit card due/closing day.
func ValidateDayOfMonth(day int) error {
	if day < 1 || day > 31 {
		return fmt.Errorf("day of month out of range: %d", day)
	}
	return nil
}

// ValidateTransactionType checks the income/expense discriminator.
func ValidateTransactionType(t string) error {
	if t != "income" && t != "expense" {
		return fmt.Errorf("invalid transaction type %q", t)
	}
	return nil
}
