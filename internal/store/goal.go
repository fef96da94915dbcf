package store

import (
	"fmt"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"
)

func (s *Store) CreateSavingsGoal(g *models.SavingsGoal) error {
	if err := s.db.Create(g).Error; err != nil {
		return fmt.Errorf("create savings goal: %w", err)
	}
	return nil
}

func (s *Store) GetSavingsGoal(id uint) (*models.SavingsGoal, error) {
	var g models.SavingsGoal
	if err := s.db.First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Store) ListSavingsGoals(userID uint) ([]models.SavingsGoal, error) {
	var gs []models.SavingsGoal
	if err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&gs).Error; err != nil {
		return nil, err
	}
	return gs, nil
}

func (s *Store) UpdateSavingsGoal(id uint, upd models.SavingsGoalUpdate) (*models.SavingsGoal, error) {
	g, err := s.GetSavingsGoal(id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		g.Name = *upd.Name
	}
	if upd.TargetAmount != nil {
		g.TargetAmount = *upd.TargetAmount
	}
	if upd.CurrentAmount != nil {
		g.CurrentAmount = *upd.CurrentAmount
	}
	if upd.Deadline != nil {
		g.Deadline = upd.Deadline
	}
	if upd.Category != nil {
		g.Category = *upd.Category
	}
	if upd.Color != nil {
		g.Color = *upd.Color
	}
	if upd.Notes != nil {
		g.Notes = *upd.Notes
	}
	if err := s.db.Save(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Store) DeleteSavingsGoal(id uint) (bool, error) {
	res := s.db.Delete(&models.SavingsGoal{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
