// Package importer converts semi-structured spreadsheet exports (CSV, XLSX)
// into canonical transaction records and feeds them through the store's
// normal creation path, one row at a time, so the balance aggregator fires
// exactly as it does for manual entry.
package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"

	"github.com/shopspring/decimal"
)

// headerSynonyms maps known Portuguese/English column names to canonical
// field names. Unrecognized headers pass through unchanged.
var headerSynonyms = map[string]string{
	// date
	"data":               "date",
	"dt":                 "date",
	"data da transação":  "date",
	"data transação":     "date",
	"data do lançamento": "date",

	// description
	"descrição":  "description",
	"descricao":  "description",
	"histórico":  "description",
	"historico":  "description",
	"lançamento": "description",
	"lancamento": "description",

	// amount
	"valor":    "amount",
	"quantia":  "amount",
	"montante": "amount",

	// category / type
	"categoria":       "category",
	"tipo":            "type",
	"receita/despesa": "type",
	"entrada/saída":   "type",
	"entrada/saida":   "type",

	// payment method
	"método de pagamento": "paymentMethod",
	"metodo de pagamento": "paymentMethod",
	"forma de pagamento":  "paymentMethod",
	"pagamento":           "paymentMethod",

	// notes
	"observações": "notes",
	"observacoes": "notes",
	"notas":       "notes",
	"comentários": "notes",
	"comentarios": "notes",
}

// MapHeader resolves a raw header cell to its canonical field name.
func MapHeader(raw string) string {
	h := strings.TrimSpace(raw)
	if canonical, ok := headerSynonyms[strings.ToLower(h)]; ok {
		return canonical
	}
	return h
}

// ParseAmount parses a localized amount string. Currency symbols and spaces
// are discarded. When a comma is present it is the decimal separator and any
// dots are thousand separators ("-1.234,56" => -1234.56); otherwise the dot
// is the decimal separator ("-128.47" => -128.47).
func ParseAmount(raw string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '-', r == '.':
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("valor vazio")
	}
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor inválido %q", raw)
	}
	return d, nil
}

// NormalizeType maps free-text type markers to income/expense. Anything
// unrecognized (or empty) defaults to expense.
func NormalizeType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "receita", "entrada", "income", "revenue":
		return models.TypeIncome
	case "despesa", "saída", "saida", "expense":
		return models.TypeExpense
	default:
		return models.TypeExpense
	}
}

// ParseDate disambiguates the three date layouts found in bank exports:
// YYYY-MM-DD when the first token has four digits, DD/MM/YYYY when the first
// token exceeds 12, and MM/DD/YYYY as the documented fallback for ambiguous
// values. Separators may be '/', '.' or '-'. An empty value resolves to now;
// a present but unparseable value is an error so the row can be reported
// instead of silently dated today.
func ParseDate(raw string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return now, nil
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '.' || r == '-'
	})
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("data inválida %q", raw)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, fmt.Errorf("data inválida %q", raw)
		}
		nums[i] = n
	}

	var year, month, day int
	switch {
	case len(parts[0]) == 4:
		year, month, day = nums[0], nums[1], nums[2]
	case nums[0] > 12:
		day, month, year = nums[0], nums[1], nums[2]
	default:
		month, day, year = nums[0], nums[1], nums[2]
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// NormalizeRecord turns one canonical-keyed row into a transaction insert.
// A negative amount forces the expense type and is stored positive; sign
// direction lives in Type only.
func NormalizeRecord(rec map[string]string, userID uint, now time.Time) (*models.Transaction, error) {
	amount, err := ParseAmount(rec["amount"])
	if err != nil {
		return nil, err
	}

	txType := NormalizeType(rec["type"])
	if amount.IsNegative() {
		txType = models.TypeExpense
		amount = amount.Abs()
	}

	date, err := ParseDate(rec["date"], now)
	if err != nil {
		return nil, err
	}

	category := strings.TrimSpace(rec["category"])
	if category == "" {
		category = "Outros"
	}
	paymentMethod := strings.TrimSpace(rec["paymentMethod"])
	if paymentMethod == "" {
		paymentMethod = "Outros"
	}

	return &models.Transaction{
		UserID:        userID,
		Description:   strings.TrimSpace(rec["description"]),
		Amount:        amount,
		Date:          date,
		Type:          txType,
		Category:      category,
		PaymentMethod: paymentMethod,
		Notes:         strings.TrimSpace(rec["notes"]),
	}, nil
}
