package importer

import (
	"testing"
	"time"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"
)

func TestMapHeader(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"data", "date"},
		{" Data ", "date"},
		{"descricao", "description"},
		{"Histórico", "description"},
		{"valor", "amount"},
		{"tipo", "type"},
		{"receita/despesa", "type"},
		{"forma de pagamento", "paymentMethod"},
		{"observações", "notes"},
		{"saldo", "saldo"}, // unrecognized headers pass through
	}

	for _, tt := range tests {
		if got := MapHeader(tt.raw); got != tt.want {
			t.Errorf("MapHeader(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"-1.234,56", "-1234.56", false},
		{"1.234,56", "1234.56", false},
		{"R$ 1.234,56", "1234.56", false},
		{"-128.47", "-128.47", false},
		{"5250", "5250", false},
		{"42,90", "42.9", false},
		{"0", "0", false},
		{"", "", true},
		{"abc", "", true},
		{"1,2,3", "", true},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAmount(%q) error = nil, want error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q) error = %v, want nil", tt.raw, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"receita", models.TypeIncome},
		{"entrada", models.TypeIncome},
		{"income", models.TypeIncome},
		{"revenue", models.TypeIncome},
		{"Receita", models.TypeIncome},
		{"despesa", models.TypeExpense},
		{"saída", models.TypeExpense},
		{"saida", models.TypeExpense},
		{"expense", models.TypeExpense},
		{"", models.TypeExpense},
		{"whatever", models.TypeExpense},
	}

	for _, tt := range tests {
		if got := NormalizeType(tt.raw); got != tt.want {
			t.Errorf("NormalizeType(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"ISO year first", "2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local), false},
		{"day greater than 12 means DD/MM/YYYY", "15/03/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local), false},
		// both parts <= 12: the fallback reads month first
		{"ambiguous falls back to MM/DD/YYYY", "03/05/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local), false},
		{"ambiguous 05/03 is May 3", "05/03/2024", time.Date(2024, 5, 3, 0, 0, 0, 0, time.Local), false},
		{"day first with dots", "25.12.2024", time.Date(2024, 12, 25, 0, 0, 0, 0, time.Local), false},
		{"empty resolves to now", "", now, false},
		{"two tokens", "03/2024", time.Time{}, true},
		{"non numeric", "aa/bb/cccc", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.raw, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) error = nil, want error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v, want nil", tt.raw, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDate_DayGreaterThan12(t *testing.T) {
	// "05/03/2024" must be May 3 by the fallback but "15/03/2024" must be
	// March 15: first token above 12 can only be a day.
	got, err := ParseDate("15/03/2024", time.Now())
	if err != nil {
		t.Fatalf("ParseDate error = %v", err)
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseDate(15/03/2024) = %v, want %v", got, want)
	}
}

func TestNormalizeRecord_NegativeAmountForcesExpense(t *testing.T) {
	now := time.Now()
	rec := map[string]string{
		"description": "Mercado",
		"amount":      "-1.234,56",
		"date":        "2024-01-10",
		"type":        "receita", // declared income, but the sign wins
	}

	tx, err := NormalizeRecord(rec, 1, now)
	if err != nil {
		t.Fatalf("NormalizeRecord error = %v", err)
	}
	if tx.Type != models.TypeExpense {
		t.Errorf("Type = %q, want expense", tx.Type)
	}
	if tx.Amount.String() != "1234.56" {
		t.Errorf("Amount = %s, want 1234.56", tx.Amount)
	}
}

func TestNormalizeRecord_Defaults(t *testing.T) {
	now := time.Now()
	rec := map[string]string{
		"amount": "10",
	}

	tx, err := NormalizeRecord(rec, 1, now)
	if err != nil {
		t.Fatalf("NormalizeRecord error = %v", err)
	}
	if tx.Category != "Outros" {
		t.Errorf("Category = %q, want Outros", tx.Category)
	}
	if tx.PaymentMethod != "Outros" {
		t.Errorf("PaymentMethod = %q, want Outros", tx.PaymentMethod)
	}
	if tx.Type != models.TypeExpense {
		t.Errorf("Type = %q, want expense", tx.Type)
	}
	if !tx.Date.Equal(now) {
		t.Errorf("Date = %v, want now (%v)", tx.Date, now)
	}
}

func TestNormalizeRecord_MissingAmount(t *testing.T) {
	if _, err := NormalizeRecord(map[string]string{"description": "x"}, 1, time.Now()); err == nil {
		t.Fatal("NormalizeRecord without amount: error = nil, want error")
	}
}
