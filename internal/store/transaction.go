package store

import (
	"fmt"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"
)

// CreateTransaction stores a new transaction and folds it into the user's
// balance snapshot before returning. The two writes happen under the user's
// lock so concurrent creations cannot lose snapshot updates.
func (s *Store) CreateTransaction(t *models.Transaction) error {
	lock := s.userLock(t.UserID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.db.Create(t).Error; err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	if err := s.applyToBalance(t, +1); err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	return nil
}

func (s *Store) GetTransaction(id uint) (*models.Transaction, error) {
	var t models.Transaction
	if err := s.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTransactions returns all of a user's transactions in insertion order.
func (s *Store) ListTransactions(userID uint) ([]models.Transaction, error) {
	var ts []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&ts).Error; err != nil {
		return nil, err
	}
	return ts, nil
}

// UpdateTransaction shallow-merges the non-nil fields of upd into the stored
// transaction and reconciles the balance snapshot: the old signed effect is
// reversed and the new one applied, so editing an amount or flipping the
// type never desynchronizes the totals.
func (s *Store) UpdateTransaction(id uint, upd models.TransactionUpdate) (*models.Transaction, error) {
	t, err := s.GetTransaction(id)
	if err != nil {
		return nil, err
	}

	lock := s.userLock(t.UserID)
	lock.Lock()
	defer lock.Unlock()

	old := *t
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.Amount != nil {
		t.Amount = *upd.Amount
	}
	if upd.Date != nil {
		t.Date = *upd.Date
	}
	if upd.Type != nil {
		t.Type = *upd.Type
	}
	if upd.Category != nil {
		t.Category = *upd.Category
	}
	if upd.PaymentMethod != nil {
		t.PaymentMethod = *upd.PaymentMethod
	}
	if upd.Notes != nil {
		t.Notes = *upd.Notes
	}
	if upd.CreditCardID != nil {
		t.CreditCardID = upd.CreditCardID
	}
	if upd.ReceiptImage != nil {
		t.ReceiptImage = *upd.ReceiptImage
	}

	if err := s.db.Save(t).Error; err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	if err := s.applyToBalance(&old, -1); err != nil {
		return nil, fmt.Errorf("revert balance: %w", err)
	}
	if err := s.applyToBalance(t, +1); err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}
	return t, nil
}

// DeleteTransaction removes the transaction and reverses its effect on the
// balance snapshot. Returns false when the id is unknown.
func (s *Store) DeleteTransaction(id uint) (bool, error) {
	t, err := s.GetTransaction(id)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}

	lock := s.userLock(t.UserID)
	lock.Lock()
	defer lock.Unlock()

	res := s.db.Delete(&models.Transaction{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	if err := s.applyToBalance(t, -1); err != nil {
		return true, fmt.Errorf("revert balance: %w", err)
	}
	return true, nil
}
