package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/renancoelho1710/organizofinanceiro/internal/middleware"
	"github.com/renancoelho1710/organizofinanceiro/internal/models"
	"github.com/renancoelho1710/organizofinanceiro/internal/store"
	"github.com/renancoelho1710/organizofinanceiro/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler serves GET /api/export/{csv,xlsx}. Column headers use the
// same names the import synonym table recognizes, so an exported file can be
// re-imported unchanged.
type ExportHandler struct {
	Store *store.Store
}

func NewExportHandler(s *store.Store) *ExportHandler {
	return &ExportHandler{Store: s}
}

var exportHeaders = []string{"Data", "Descrição", "Valor", "Tipo", "Categoria", "Forma de Pagamento", "Observações"}

func exportRow(t *models.Transaction) []string {
	typeText := "despesa"
	if t.Type == models.TypeIncome {
		typeText = "receita"
	}
	return []string{
		t.Date.Format("2006-01-02"),
		t.Description,
		t.Amount.StringFixed(2),
		typeText,
		t.Category,
		t.PaymentMethod,
		t.Notes,
	}
}

func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}

	transactions, err := h.Store.RecentTransactions(user.ID, -1)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao consultar transações")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transacoes_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so Excel renders accented characters
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range transactions {
		writer.Write(exportRow(&transactions[i]))
	}
}

func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}

	transactions, err := h.Store.RecentTransactions(user.ID, -1)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao consultar transações")
		return
	}

	f := excelize.NewFile()
	sheetName := "Transações"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao criar planilha")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}
	for rowIdx := range transactions {
		for colIdx, value := range exportRow(&transactions[rowIdx]) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}
	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "G", 15)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transacoes_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao exportar planilha")
	}
}
