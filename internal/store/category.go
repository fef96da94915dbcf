package store

import (
	"fmt"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"
)

func (s *Store) CreateCategory(c *models.Category) error {
	if err := s.db.Create(c).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (s *Store) GetCategory(id uint) (*models.Category, error) {
	var c models.Category
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListCategories(userID uint) ([]models.Category, error) {
	var cs []models.Category
	if err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

// UpdateCategory renames or recolors a category. Transactions reference
// categories by name, so a rename does not cascade; the old name keeps
// living inside existing transactions.
func (s *Store) UpdateCategory(id uint, name, color *string) (*models.Category, error) {
	c, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		c.Name = *name
	}
	if color != nil {
		c.Color = *color
	}
	if err := s.db.Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) DeleteCategory(id uint) (bool, error) {
	res := s.db.Delete(&models.Category{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
