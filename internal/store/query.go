package store

import (
	"time"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"

	"github.com/shopspring/decimal"
)

// RecentTransactions returns the user's transactions sorted by date
// descending, capped at limit. Equal dates keep insertion order (id ASC),
// which makes the sort stable across calls.
func (s *Store) RecentTransactions(userID uint, limit int) ([]models.Transaction, error) {
	var ts []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC, id ASC").
		Limit(limit).
		Find(&ts).Error; err != nil {
		return nil, err
	}
	return ts, nil
}

// UpcomingBills returns the soonest unpaid bills due at or after now,
// ascending by due date, capped at limit.
func (s *Store) UpcomingBills(userID uint, limit int, now time.Time) ([]models.Bill, error) {
	var bs []models.Bill
	if err := s.db.Where("user_id = ? AND due_date >= ? AND paid = ?", userID, now, false).
		Order("due_date ASC, id ASC").
		Limit(limit).
		Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

// TransactionsByMonth returns the user's transactions whose date falls in
// the given calendar month (half-open range, local time).
func (s *Store) TransactionsByMonth(userID uint, year int, month time.Month) ([]models.Transaction, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	var ts []models.Transaction
	if err := s.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("id ASC").
		Find(&ts).Error; err != nil {
		return nil, err
	}
	return ts, nil
}

// CategoryExpense is one slice of the dashboard expense chart.
type CategoryExpense struct {
	Name       string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	Color      string          `json:"color"`
	Percentage int             `json:"percentage"`
}

// ExpensesByCategory groups the current month's expense transactions by
// category name, joins category colors, and computes each category's share
// of the month's total as a rounded integer percentage. Categories with a
// zero total are excluded; when the total itself is zero every percentage
// is zero.
func (s *Store) ExpensesByCategory(userID uint, now time.Time) ([]CategoryExpense, error) {
	categories, err := s.ListCategories(userID)
	if err != nil {
		return nil, err
	}
	monthly, err := s.TransactionsByMonth(userID, now.Year(), now.Month())
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for i := range monthly {
		t := &monthly[i]
		if t.Type != models.TypeExpense {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	result := make([]CategoryExpense, 0, len(categories))
	total := decimal.Zero
	for _, c := range categories {
		v := totals[c.Name]
		if v.IsZero() {
			continue
		}
		total = total.Add(v)
		result = append(result, CategoryExpense{
			Name:  c.Name,
			Value: v,
			Color: c.Color,
		})
	}

	if total.IsPositive() {
		hundred := decimal.NewFromInt(100)
		for i := range result {
			result[i].Percentage = int(result[i].Value.Mul(hundred).Div(total).Round(0).IntPart())
		}
	}
	return result, nil
}
