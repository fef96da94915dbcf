package database

import (
	"fmt"
	"time"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"
	"github.com/renancoelho1710/organizofinanceiro/internal/store"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the demo user and their starter data when the user does not
// exist yet. Transactions go through the store's creation path so the
// balance aggregator runs for each one; the snapshot is then set to the demo
// figures the dashboard expects.
func Seed(s *store.Store, demoUsername string) error {
	if _, err := s.GetUserByUsername(demoUsername); err == nil {
		return nil // already seeded
	} else if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check demo user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	user := models.User{
		Username:     demoUsername,
		PasswordHash: string(hash),
		Name:         "João Silva",
		Email:        "joao@example.com",
		Phone:        "+55 11 98765-4321",
	}
	if err := s.CreateUser(&user); err != nil {
		return err
	}

	categories := []models.Category{
		{UserID: user.ID, Name: "Moradia", Color: "#2563eb"},
		{UserID: user.ID, Name: "Alimentação", Color: "#10b981"},
		{UserID: user.ID, Name: "Transporte", Color: "#f59e0b"},
		{UserID: user.ID, Name: "Saúde", Color: "#ef4444"},
		{UserID: user.ID, Name: "Lazer", Color: "#dc2626"},
		{UserID: user.ID, Name: "Receita", Color: "#8b5cf6"},
		{UserID: user.ID, Name: "Outros", Color: "#9ca3af"},
	}
	for i := range categories {
		if err := s.CreateCategory(&categories[i]); err != nil {
			return err
		}
	}

	cards := []models.CreditCard{
		{
			UserID:         user.ID,
			Name:           "Nubank",
			LastFourDigits: "4587",
			Limit:          dec("5000"),
			CurrentBalance: dec("1240.56"),
			DueDate:        9,
			ClosingDate:    2,
			CardType:       "mastercard",
			Color:          "#9333ea",
		},
		{
			UserID:         user.ID,
			Name:           "Itaú Platinum",
			LastFourDigits: "7845",
			Limit:          dec("8000"),
			CurrentBalance: dec("599.76"),
			DueDate:        15,
			ClosingDate:    10,
			CardType:       "visa",
			Color:          "#0284c7",
		},
	}
	for i := range cards {
		if err := s.CreateCreditCard(&cards[i]); err != nil {
			return err
		}
	}

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	lastWeek := now.AddDate(0, 0, -7)
	nubankID := cards[0].ID
	itauID := cards[1].ID

	transactions := []models.Transaction{
		{UserID: user.ID, Description: "Mercado Pão de Açúcar", Amount: dec("128.47"), Date: now, Type: models.TypeExpense, Category: "Alimentação", PaymentMethod: "Cartão de Crédito", CreditCardID: &nubankID},
		{UserID: user.ID, Description: "iFood", Amount: dec("42.90"), Date: yesterday, Type: models.TypeExpense, Category: "Alimentação", PaymentMethod: "Cartão de Crédito", CreditCardID: &nubankID},
		{UserID: user.ID, Description: "Posto Shell", Amount: dec("150.00"), Date: lastWeek, Type: models.TypeExpense, Category: "Transporte", PaymentMethod: "Cartão de Crédito", CreditCardID: &itauID},
		{UserID: user.ID, Description: "Salário", Amount: dec("5250.00"), Date: lastWeek, Type: models.TypeIncome, Category: "Receita", PaymentMethod: "Transferência"},
		{UserID: user.ID, Description: "Cinema Shopping", Amount: dec("72.00"), Date: lastWeek, Type: models.TypeExpense, Category: "Lazer", PaymentMethod: "Cartão de Débito"},
	}
	for i := range transactions {
		if err := s.CreateTransaction(&transactions[i]); err != nil {
			return err
		}
	}

	bills := []models.Bill{
		{UserID: user.ID, Description: "Aluguel", Amount: dec("1800.00"), DueDate: now.AddDate(0, 0, 3), Recurring: true, Category: "Moradia"},
		{UserID: user.ID, Description: "Energia Elétrica", Amount: dec("245.78"), DueDate: now.AddDate(0, 0, 5), Recurring: true, Category: "Moradia"},
		{UserID: user.ID, Description: "Fatura Cartão Nubank", Amount: dec("1240.56"), DueDate: now.AddDate(0, 0, 7), Recurring: true, Category: "Cartão de Crédito"},
		{UserID: user.ID, Description: "Internet", Amount: dec("119.90"), DueDate: now.AddDate(0, 0, 10), Recurring: true, Category: "Moradia"},
	}
	for i := range bills {
		if err := s.CreateBill(&bills[i]); err != nil {
			return err
		}
	}

	// demo dashboard figures; overrides whatever the aggregator accumulated
	total := dec("4628.90")
	income := dec("5250.00")
	expenses := dec("3187.45")
	cardBills := dec("1840.32")
	_, err = s.UpdateAccountBalance(user.ID, store.AccountBalancePatch{
		TotalBalance:    &total,
		MonthlyIncome:   &income,
		MonthlyExpenses: &expenses,
		CreditCardBills: &cardBills,
	})
	return err
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
