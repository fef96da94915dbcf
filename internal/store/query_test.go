package store

import (
	"testing"
	"time"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t.Fatalf("bad date literal %q: %v", s, err)
	}
	return d
}

func TestRecentTransactions_OrderAndLimit(t *testing.T) {
	s := newTestStore(t)
	user := newTestUser(t, s)

	// inserted out of date order on purpose; two rows share a date
	rows := []struct {
		desc string
		date string
	}{
		{"meio", "2024-03-10"},
		{"antigo", "2024-03-01"},
		{"empate-a", "2024-03-15"},
		{"empate-b", "2024-03-15"},
		{"recente", "2024-03-20"},
	}
	for _, r := range rows {
		mustCreateTx(t, s, &models.Transaction{
			UserID: user.ID, Description: r.desc, Amount: dec(t, "10.00"),
			Date: day(t, r.date), Type: models.TypeExpense, Category: "Outros",
		})
	}

	got, err := s.RecentTransactions(user.ID, 3)
	if err != nil {
		t.Fatalf("RecentTransactions error = %v", err)
	}
	want := []string{"recente", "empate-a", "empate-b"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Description != w {
			t.Errorf("got[%d] = %q, want %q", i, got[i].Description, w)
		}
	}
}

func TestRecentTransactions_NegativeLimitReturnsAll(t *testing.T) {
	s := newTestStore(t)
	user := newTestUser(t, s)

	for i := 0; i < 7; i++ {
		mustCreateTx(t, s, &models.Transaction{
			UserID: user.ID, Description: "t", Amount: dec(t, "1.00"),
			Date: time.Now(), Type: models.TypeExpense, Category: "Outros",
		})
	}

	got, err := s.RecentTransactions(user.ID, -1)
	if err != nil {
		t.Fatalf("RecentTransactions error = %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
}

func TestUpcomingBills(t *testing.T) {
	s := newTestStore(t)
	user := newTestUser(t, s)
	now := day(t, "2024-03-10")

	mk := func(desc, due string, paid bool) {
		b := &models.Bill{
			UserID: user.ID, Description: desc, Amount: dec(t, "100.00"),
			DueDate: day(t, due), Paid: paid, Category: "Moradia",
		}
		if err := s.CreateBill(b); err != nil {
			t.Fatalf("create bill: %v", err)
		}
	}

	mk("vencida", "2024-03-01", false)   // past due, excluded
	mk("paga", "2024-03-12", true)       // paid, excluded
	mk("aluguel", "2024-03-15", false)
	mk("internet", "2024-03-11", false)
	mk("luz", "2024-03-20", false)
	mk("agua", "2024-03-25", false)
	mk("cartao", "2024-03-28", false) // beyond the limit of 4

	got, err := s.UpcomingBills(user.ID, 4, now)
	if err != nil {
		t.Fatalf("UpcomingBills error = %v", err)
	}
	want := []string{"internet", "aluguel", "luz", "agua"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Description != w {
			t.Errorf("got[%d] = %q, want %q", i, got[i].Description, w)
		}
	}
}

func TestTransactionsByMonth(t *testing.T) {
	s := newTestStore(t)
	user := newTestUser(t, s)

	dates := map[string]string{
		"fevereiro":    "2024-02-29",
		"primeiro-dia": "2024-03-01",
		"meio-do-mes":  "2024-03-15",
		"ultimo-dia":   "2024-03-31",
		"mes-seguinte": "2024-04-01",
	}
	for desc, d := range dates {
		mustCreateTx(t, s, &models.Transaction{
			UserID: user.ID, Description: desc, Amount: dec(t, "1.00"),
			Date: day(t, d), Type: models.TypeExpense, Category: "Outros",
		})
	}

	got, err := s.TransactionsByMonth(user.ID, 2024, time.March)
	if err != nil {
		t.Fatalf("TransactionsByMonth error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for _, tx := range got {
		if tx.Description == "fevereiro" || tx.Description == "mes-seguinte" {
			t.Errorf("transaction %q leaked outside the month range", tx.Description)
		}
	}
}

func TestExpensesByCategory(t *testing.T) {
	s := newTestStore(t)
	user := newTestUser(t, s)
	now := day(t, "2024-03-10")

	for _, c := range []struct{ name, color string }{
		{"Alimentação", "#f59e0b"},
		{"Transporte", "#10b981"},
		{"Lazer", "#8b5cf6"},
	} {
		if err := s.CreateCategory(&models.Category{UserID: user.ID, Name: c.name, Color: c.color}); err != nil {
			t.Fatalf("create category: %v", err)
		}
	}

	mk := func(cat, amount, typ, date string) {
		mustCreateTx(t, s, &models.Transaction{
			UserID: user.ID, Description: "t", Amount: dec(t, amount),
			Date: day(t, date), Type: typ, Category: cat,
		})
	}
	mk("Alimentação", "300.00", models.TypeExpense, "2024-03-05")
	mk("Transporte", "100.00", models.TypeExpense, "2024-03-06")
	mk("Alimentação", "5000.00", models.TypeIncome, "2024-03-07")  // income never counts
	mk("Transporte", "999.00", models.TypeExpense, "2024-02-15")   // previous month
	// Lazer has no expenses this month and must not appear

	got, err := s.ExpensesByCategory(user.ID, now)
	if err != nil {
		t.Fatalf("ExpensesByCategory error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(got), got)
	}

	if got[0].Name != "Alimentação" || !got[0].Value.Equal(dec(t, "300.00")) || got[0].Percentage != 75 {
		t.Errorf("got[0] = %+v, want Alimentação 300.00 75%%", got[0])
	}
	if got[1].Name != "Transporte" || !got[1].Value.Equal(dec(t, "100.00")) || got[1].Percentage != 25 {
		t.Errorf("got[1] = %+v, want Transporte 100.00 25%%", got[1])
	}
	if got[0].Color != "#f59e0b" {
		t.Errorf("Color = %q, want #f59e0b", got[0].Color)
	}
}

func TestExpensesByCategory_Empty(t *testing.T) {
	s := newTestStore(t)
	user := newTestUser(t, s)

	if err := s.CreateCategory(&models.Category{UserID: user.ID, Name: "Outros", Color: "#9ca3af"}); err != nil {
		t.Fatalf("create category: %v", err)
	}

	got, err := s.ExpensesByCategory(user.ID, time.Now())
	if err != nil {
		t.Fatalf("ExpensesByCategory error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0: %+v", len(got), got)
	}
}
