package store

import (
	"fmt"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"
)

func (s *Store) CreateBill(b *models.Bill) error {
	if err := s.db.Create(b).Error; err != nil {
		return fmt.Errorf("create bill: %w", err)
	}
	return nil
}

func (s *Store) GetBill(id uint) (*models.Bill, error) {
	var b models.Bill
	if err := s.db.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) ListBills(userID uint) ([]models.Bill, error) {
	var bs []models.Bill
	if err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

func (s *Store) UpdateBill(id uint, upd models.BillUpdate) (*models.Bill, error) {
	b, err := s.GetBill(id)
	if err != nil {
		return nil, err
	}
	if upd.Description != nil {
		b.Description = *upd.Description
	}
	if upd.Amount != nil {
		b.Amount = *upd.Amount
	}
	if upd.DueDate != nil {
		b.DueDate = *upd.DueDate
	}
	if upd.Paid != nil {
		b.Paid = *upd.Paid
	}
	if upd.Recurring != nil {
		b.Recurring = *upd.Recurring
	}
	if upd.Category != nil {
		b.Category = *upd.Category
	}
	if upd.Notes != nil {
		b.Notes = *upd.Notes
	}
	if err := s.db.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) DeleteBill(id uint) (bool, error) {
	res := s.db.Delete(&models.Bill{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
