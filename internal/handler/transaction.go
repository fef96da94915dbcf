package handler

import (
	"net/http"
	"time"

	"github.com/renancoelho1710/organizofinanceiro/internal/middleware"
	"github.com/renancoelho1710/organizofinanceiro/internal/models"
	"github.com/renancoelho1710/organizofinanceiro/internal/store"
	"github.com/renancoelho1710/organizofinanceiro/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionHandler serves /api/transactions.
type TransactionHandler struct {
	Store *store.Store
}

func NewTransactionHandler(s *store.Store) *TransactionHandler {
	return &TransactionHandler{Store: s}
}

// ---------- request structs ----------

type createTransactionReq struct {
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	Type          string          `json:"type" binding:"required,oneof=income expense"`
	Category      string          `json:"category" binding:"required"`
	PaymentMethod string          `json:"paymentMethod"`
	Notes         string          `json:"notes"`
	CreditCardID  *uint           `json:"creditCardId"`
	ReceiptImage  string          `json:"receiptImage"`
}

type updateTransactionReq struct {
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	Date          *string          `json:"date"`
	Type          *string          `json:"type"`
	Category      *string          `json:"category"`
	PaymentMethod *string          `json:"paymentMethod"`
	Notes         *string          `json:"notes"`
	CreditCardID  *uint            `json:"creditCardId"`
	ReceiptImage  *string          `json:"receiptImage"`
}

// parseDate accepts the date formats the frontend and spreadsheet flows
// produce.
func parseDate(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// ---------- handlers ----------

func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}

	transactions, err := h.Store.ListTransactions(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao consultar transações")
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, "Valor inválido")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Data inválida")
		return
	}

	t := models.Transaction{
		UserID:        user.ID,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          date,
		Type:          req.Type,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		CreditCardID:  req.CreditCardID,
		ReceiptImage:  req.ReceiptImage,
	}
	if err := h.Store.CreateTransaction(&t); err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao salvar transação")
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}
	id, ok := util.ParamID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var req updateTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}
	if req.Amount != nil {
		if err := util.ValidateAmount(*req.Amount); err != nil {
			util.Error(c, http.StatusBadRequest, "Valor inválido")
			return
		}
	}
	if req.Type != nil {
		if err := util.ValidateTransactionType(*req.Type); err != nil {
			util.Error(c, http.StatusBadRequest, "Tipo inválido")
			return
		}
	}

	upd := models.TransactionUpdate{
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          req.Type,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		CreditCardID:  req.CreditCardID,
		ReceiptImage:  req.ReceiptImage,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "Data inválida")
			return
		}
		upd.Date = &date
	}

	t, err := h.Store.UpdateTransaction(id, upd)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Transação não encontrada")
		} else {
			util.Error(c, http.StatusInternalServerError, "Erro ao atualizar transação")
		}
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}
	id, ok := util.ParamID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	deleted, err := h.Store.DeleteTransaction(id)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao excluir transação")
		return
	}
	if !deleted {
		util.Error(c, http.StatusNotFound, "Transação não encontrada")
		return
	}
	c.Status(http.StatusNoContent)
}
