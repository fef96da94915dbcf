package store

import (
	"errors"
	"testing"
	"time"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Category{},
		&models.Bill{},
		&models.CreditCard{},
		&models.AccountBalance{},
		&models.SavingsGoal{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return New(db)
}

func newTestUser(t *testing.T, s *Store) *models.User {
	t.Helper()
	u := &models.User{Username: "tester", PasswordHash: "x", Name: "Tester", Email: "tester@example.com"}
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return u
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func mustCreateTx(t *testing.T, s *Store, tx *models.Transaction) *models.Transaction {
	t.Helper()
	if err := s.CreateTransaction(tx); err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	return tx
}

func assertBalance(t *testing.T, s *Store, userID uint, total, income, expenses string) {
	t.Helper()
	b, err := s.GetAccountBalance(userID)
	if err != nil {
		t.Fatalf("GetAccountBalance error = %v", err)
	}
	if !b.TotalBalance.Equal(dec(t, total)) {
		t.Errorf("TotalBalance = %s, want %s", b.TotalBalance, total)
	}
	if !b.MonthlyIncome.Equal(dec(t, income)) {
		t.Errorf("MonthlyIncome = %s, want %s", b.MonthlyIncome, income)
	}
	if !b.MonthlyExpenses.Equal(dec(t, expenses)) {
		t.Errorf("MonthlyExpenses = %s, want %s", b.MonthlyExpenses, expenses)
	}
}

func TestCreateTransaction_UpdatesBalance(t *testing.T) {
	s := newTestStore(t)
	user := newTestUser(t, s)
	now := time.Now()

	mustCreateTx(t, s, &models.Transaction{
		UserID: user.ID, Description: "Salário", Amount: dec(t, "1000.00"),
		Date: now, Type: models.TypeIncome, Category: "Receita",
	})
	assertBalance(t, s, user.ID, "1000.00", "1000.00", "0")

	mustCreateTx(t, s, &models.Transaction{
		UserID: user.ID, Description: "Mercado", Amount: dec(t, "250.50"),
		Date: now, Type: models.TypeExpense, Category: "Alimentação",
	})
	assertBalance(t, s, user.ID, "749.50", "1000.00", "250.50")
}

func TestCreateTransaction_BalanceIsSignedSum(t *testing.T) {
	s := newTestStore(t)
	user := newTestUser(t, s)
	now := time.Now()

	// totalBalance == sum(income) - sum(expense) after every creation
	amounts := []struct {
		amount string
		typ    string
	}{
		{"100.10", models.TypeIncome},
		{"0.01", models.TypeExpense},
		{"999.99", models.TypeIncome},
		{"50.55", models.TypeExpense},
	}

	income := decimal.Zero
	expenses := decimal.Zero
	for _, a := range amounts {
		mustCreateTx(t, s, &models.Transaction{
			UserID: user.ID, Description: "t", Amount: dec(t, a.amount),
			Date: now, Type: a.typ, Category: "Outros",
		})
		if a.typ == models.TypeIncome {
			income = income.Add(dec(t, a.amount))
		} else {
			expenses = expenses.Add(dec(t, a.amount))
		}

		b, err := s.GetAccountBalance(user.ID)
		if err != nil {
			t.Fatalf("GetAccountBalance error = %v", err)
		}
		if want := income.Sub(expenses); !b.TotalBalance.Equal(want) {
			t.Fatalf("TotalBalance = %s, want %s", b.TotalBalance, want)
		}
	}
}

func TestTransaction_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	user := newTestUser(t, s)
	cardID := uint(7)

	in := &models.Transaction{
		UserID:        user.ID,
		Description:   "Mercado Pão de Açúcar",
		Amount:        dec(t, "128.47"),
		Date:          time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local),
		Type:          models.TypeExpense,
		Category:      "Alimentação",
		PaymentMethod: "Cartão de Crédito",
		Notes:         "compras da semana",
		CreditCardID:  &cardID,
	}
	mustCreateTx(t, s, in)
	if in.ID == 0 {
		t.Fatal("CreateTransaction did not assign an id")
	}

	list, err := s.ListTransactions(user.ID)
	if err != nil {
		t.Fatalf("ListTransactions error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}

	got := list[0]
	if got.ID != in.ID || got.Description != in.Description || !got.Amount.Equal(in.Amount) ||
		got.Type != in.Type || got.Category != in.Category ||
		got.PaymentMethod != in.PaymentMethod || got.Notes != in.Notes {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, in)
	}
	if got.CreditCardID == nil || *got.CreditCardID != cardID {
		t.Errorf("CreditCardID = %v, want %d", got.CreditCardID, cardID)
	}
}

func TestUpdateTransaction_ReconcilesBalance(t *testing.T) {
	s := newTestStore(t)
	user := newTestUser(t, s)
	now := time.Now()

	tx := mustCreateTx(t, s, &models.Transaction{
		UserID: user.ID, Description: "Mercado", Amount: dec(t, "100.00"),
		Date: now, Type: models.TypeExpense, Category: "Alimentação",
	})
	assertBalance(t, s, user.ID, "-100.00", "0", "100.00")

	// raise the amount: the old effect is reversed, the new one applied
	newAmount := dec(t, "150.00")
	if _, err := s.UpdateTransaction(tx.ID, models.TransactionUpdate{Amount: &newAmount}); err != nil {
		t.Fatalf("UpdateTransaction error = %v", err)
	}
	assertBalance(t, s, user.ID, "-150.00", "0", "150.00")

	// flip expense to income
	income := models.TypeIncome
	if _, err := s.UpdateTransaction(tx.ID, models.TransactionUpdate{Type: &income}); err != nil {
		t.Fatalf("UpdateTransaction error = %v", err)
	}
	assertBalance(t, s, user.ID, "150.00", "150.00", "0")
}

func TestUpdateTransaction_PartialMerge(t *testing.T) {
	s := newTestStore(t)
	user := newTestUser(t, s)

	tx := mustCreateTx(t, s, &models.Transaction{
		UserID: user.ID, Description: "Cinema", Amount: dec(t, "72.00"),
		Date: time.Now(), Type: models.TypeExpense, Category: "Lazer",
		PaymentMethod: "Cartão de Débito",
	})

	desc := "Cinema Shopping"
	got, err := s.UpdateTransaction(tx.ID, models.TransactionUpdate{Description: &desc})
	if err != nil {
		t.Fatalf("UpdateTransaction error = %v", err)
	}
	if got.Description != desc {
		t.Errorf("Description = %q, want %q", got.Description, desc)
	}
	// untouched fields survive the merge
	if got.Category != "Lazer" || got.PaymentMethod != "Cartão de Débito" || !got.Amount.Equal(dec(t, "72.00")) {
		t.Errorf("partial update clobbered unrelated fields: %+v", got)
	}
}

func TestUpdateTransaction_Unknown(t *testing.T) {
	s := newTestStore(t)
	newTestUser(t, s)

	if _, err := s.UpdateTransaction(999, models.TransactionUpdate{}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("UpdateTransaction(999) error = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestDeleteTransaction_ReconcilesBalance(t *testing.T) {
	s := newTestStore(t)
	user := newTestUser(t, s)
	now := time.Now()

	mustCreateTx(t, s, &models.Transaction{
		UserID: user.ID, Description: "Salário", Amount: dec(t, "1000.00"),
		Date: now, Type: models.TypeIncome, Category: "Receita",
	})
	tx := mustCreateTx(t, s, &models.Transaction{
		UserID: user.ID, Description: "Mercado", Amount: dec(t, "250.50"),
		Date: now, Type: models.TypeExpense, Category: "Alimentação",
	})

	deleted, err := s.DeleteTransaction(tx.ID)
	if err != nil {
		t.Fatalf("DeleteTransaction error = %v", err)
	}
	if !deleted {
		t.Fatal("DeleteTransaction = false, want true")
	}
	assertBalance(t, s, user.ID, "1000.00", "1000.00", "0")

	deleted, err = s.DeleteTransaction(tx.ID)
	if err != nil {
		t.Fatalf("DeleteTransaction error = %v", err)
	}
	if deleted {
		t.Error("deleting twice reported success")
	}
}

func TestUpdateAccountBalance_CreatesWhenAbsent(t *testing.T) {
	s := newTestStore(t)
	user := newTestUser(t, s)

	total := dec(t, "4628.90")
	b, err := s.UpdateAccountBalance(user.ID, AccountBalancePatch{TotalBalance: &total})
	if err != nil {
		t.Fatalf("UpdateAccountBalance error = %v", err)
	}
	if !b.TotalBalance.Equal(total) {
		t.Errorf("TotalBalance = %s, want %s", b.TotalBalance, total)
	}
	if !b.MonthlyIncome.IsZero() {
		t.Errorf("MonthlyIncome = %s, want 0", b.MonthlyIncome)
	}
}
