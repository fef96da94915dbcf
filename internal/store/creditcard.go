package store

import (
	"fmt"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"
)

func (s *Store) CreateCreditCard(c *models.CreditCard) error {
	if err := s.db.Create(c).Error; err != nil {
		return fmt.Errorf("create credit card: %w", err)
	}
	return nil
}

func (s *Store) GetCreditCard(id uint) (*models.CreditCard, error) {
	var c models.CreditCard
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListCreditCards(userID uint) ([]models.CreditCard, error) {
	var cs []models.CreditCard
	if err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *Store) UpdateCreditCard(id uint, upd models.CreditCardUpdate) (*models.CreditCard, error) {
	c, err := s.GetCreditCard(id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.LastFourDigits != nil {
		c.LastFourDigits = *upd.LastFourDigits
	}
	if upd.Limit != nil {
		c.Limit = *upd.Limit
	}
	if upd.CurrentBalance != nil {
		c.CurrentBalance = *upd.CurrentBalance
	}
	if upd.DueDate != nil {
		c.DueDate = *upd.DueDate
	}
	if upd.ClosingDate != nil {
		c.ClosingDate = *upd.ClosingDate
	}
	if upd.CardType != nil {
		c.CardType = *upd.CardType
	}
	if upd.Color != nil {
		c.Color = *upd.Color
	}
	if err := s.db.Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) DeleteCreditCard(id uint) (bool, error) {
	res := s.db.Delete(&models.CreditCard{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
