package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"
	"github.com/renancoelho1710/organizofinanceiro/internal/store"

	"github.com/xuri/excelize/v2"
)

const delimiter = ","

// RowError describes one rejected spreadsheet row. Line is 1-based and
// counts the header.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Result reports an import: rows that became transactions and rows that
// were rejected. Partial success is normal.
type Result struct {
	Count   int                  `json:"count"`
	Created []models.Transaction `json:"created"`
	Errors  []RowError           `json:"errors"`
}

// Importer feeds normalized spreadsheet rows through the store.
type Importer struct {
	store *store.Store
}

func New(s *store.Store) *Importer {
	return &Importer{store: s}
}

// Import parses the named spreadsheet and creates one transaction per valid
// row, in row order, for userID. CSV is split line by line on the comma
// delimiter; .xlsx/.xls go through excelize but share the same column-level
// pipeline.
func (imp *Importer) Import(userID uint, filename string, r io.Reader) (*Result, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		rows, err = readCSV(r)
	case ".xlsx", ".xls":
		rows, err = readExcel(r)
	default:
		return nil, fmt.Errorf("formato de arquivo não suportado: %s", filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}

	return imp.importRows(userID, rows)
}

func (imp *Importer) importRows(userID uint, rows [][]string) (*Result, error) {
	result := &Result{Created: []models.Transaction{}, Errors: []RowError{}}
	if len(rows) == 0 {
		return result, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = MapHeader(h)
	}

	now := time.Now()
	for i, fields := range rows[1:] {
		line := i + 2
		if len(fields) != len(headers) {
			result.Errors = append(result.Errors, RowError{
				Line:   line,
				Reason: fmt.Sprintf("número de colunas (%d) difere do cabeçalho (%d)", len(fields), len(headers)),
			})
			continue
		}

		rec := make(map[string]string, len(headers))
		for j, h := range headers {
			rec[h] = strings.TrimSpace(fields[j])
		}

		t, err := NormalizeRecord(rec, userID, now)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Line: line, Reason: err.Error()})
			continue
		}
		if err := imp.store.CreateTransaction(t); err != nil {
			return nil, fmt.Errorf("linha %d: %w", line, err)
		}
		result.Created = append(result.Created, *t)
	}

	result.Count = len(result.Created)
	return result, nil
}

// readCSV splits the input into lines on CRLF/LF, drops blank lines, and
// splits each line on the delimiter. No quoting rules: the source exports
// never quote fields.
func readCSV(r io.Reader) ([][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ler arquivo: %w", err)
	}

	content := strings.ReplaceAll(string(raw), "\r\n", "\n")
	var rows [][]string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, delimiter))
	}
	return rows, nil
}

// readExcel loads the first sheet. Rows shorter than the header are not
// column-count failures in a spreadsheet, only unfilled trailing cells, so
// they are padded instead of rejected.
func readExcel(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir planilha: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("planilha sem abas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ler planilha: %w", err)
	}
	if len(rows) == 0 {
		return rows, nil
	}

	width := len(rows[0])
	for i := range rows {
		for len(rows[i]) < width {
			rows[i] = append(rows[i], "")
		}
	}
	return rows, nil
}
