package store

import (
	"time"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAccountBalance returns the user's balance snapshot, or
// gorm.ErrRecordNotFound when none exists yet.
func (s *Store) GetAccountBalance(userID uint) (*models.AccountBalance, error) {
	var b models.AccountBalance
	if err := s.db.Where("user_id = ?", userID).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// AccountBalancePatch overrides individual snapshot fields (manual
// adjustment). Nil fields are left alone.
type AccountBalancePatch struct {
	TotalBalance    *decimal.Decimal
	MonthlyIncome   *decimal.Decimal
	MonthlyExpenses *decimal.Decimal
	CreditCardBills *decimal.Decimal
}

// UpdateAccountBalance patches the snapshot, creating a zeroed row first if
// the user has none.
func (s *Store) UpdateAccountBalance(userID uint, patch AccountBalancePatch) (*models.AccountBalance, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	b, err := s.ensureBalance(userID)
	if err != nil {
		return nil, err
	}
	if patch.TotalBalance != nil {
		b.TotalBalance = *patch.TotalBalance
	}
	if patch.MonthlyIncome != nil {
		b.MonthlyIncome = *patch.MonthlyIncome
	}
	if patch.MonthlyExpenses != nil {
		b.MonthlyExpenses = *patch.MonthlyExpenses
	}
	if patch.CreditCardBills != nil {
		b.CreditCardBills = *patch.CreditCardBills
	}
	b.UpdatedAt = time.Now()
	if err := s.db.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

// ensureBalance fetches the user's snapshot, creating a zeroed one when
// absent. Callers must hold the user lock.
func (s *Store) ensureBalance(userID uint) (*models.AccountBalance, error) {
	var b models.AccountBalance
	err := s.db.Where("user_id = ?", userID).First(&b).Error
	if err == nil {
		return &b, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	b = models.AccountBalance{
		UserID:          userID,
		TotalBalance:    decimal.Zero,
		MonthlyIncome:   decimal.Zero,
		MonthlyExpenses: decimal.Zero,
		CreditCardBills: decimal.Zero,
		UpdatedAt:       time.Now(),
	}
	if err := s.db.Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// applyToBalance folds one signed transaction effect into the snapshot.
// direction is +1 when the transaction is being added and -1 when an earlier
// effect is being reversed (update/delete reconciliation). Callers must hold
// the user lock.
func (s *Store) applyToBalance(t *models.Transaction, direction int64) error {
	b, err := s.ensureBalance(t.UserID)
	if err != nil {
		return err
	}

	amount := t.Amount.Mul(decimal.NewFromInt(direction))
	if t.Type == models.TypeIncome {
		b.TotalBalance = b.TotalBalance.Add(amount)
		b.MonthlyIncome = b.MonthlyIncome.Add(amount)
	} else {
		b.TotalBalance = b.TotalBalance.Sub(amount)
		b.MonthlyExpenses = b.MonthlyExpenses.Add(amount)
	}
	b.UpdatedAt = time.Now()
	return s.db.Save(b).Error
}
