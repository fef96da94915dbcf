package handler

import (
	"net/http"

	"github.com/renancoelho1710/organizofinanceiro/internal/middleware"
	"github.com/renancoelho1710/organizofinanceiro/internal/models"
	"github.com/renancoelho1710/organizofinanceiro/internal/store"
	"github.com/renancoelho1710/organizofinanceiro/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillHandler serves /api/bills.
type BillHandler struct {
	Store *store.Store
}

func NewBillHandler(s *store.Store) *BillHandler {
	return &BillHandler{Store: s}
}

type createBillReq struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	DueDate     string          `json:"dueDate" binding:"required"`
	Paid        bool            `json:"paid"`
	Recurring   bool            `json:"recurring"`
	Category    string          `json:"category"`
	Notes       string          `json:"notes"`
}

type updateBillReq struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     *string          `json:"dueDate"`
	Paid        *bool            `json:"paid"`
	Recurring   *bool            `json:"recurring"`
	Category    *string          `json:"category"`
	Notes       *string          `json:"notes"`
}

func (h *BillHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}

	bills, err := h.Store.ListBills(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao consultar contas")
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (h *BillHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}

	var req createBillReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, "Valor inválido")
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Data de vencimento inválida")
		return
	}

	bill := models.Bill{
		UserID:      user.ID,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     dueDate,
		Paid:        req.Paid,
		Recurring:   req.Recurring,
		Category:    req.Category,
		Notes:       req.Notes,
	}
	if err := h.Store.CreateBill(&bill); err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao salvar conta")
		return
	}
	c.JSON(http.StatusCreated, bill)
}

func (h *BillHandler) Update(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}
	id, ok := util.ParamID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var req updateBillReq
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

	upd := models.BillUpdate{
		Description: req.Description,
		Amount:      req.Amount,
		Paid:        req.Paid,
		Recurring:   req.Recurring,
		Category:    req.Category,
		Notes:       req.Notes,
	}
	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "Data de vencimento inválida")
			return
		}
		upd.DueDate = &dueDate
	}

	bill, err := h.Store.UpdateBill(id, upd)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Conta não encontrada")
		} else {
			util.Error(c, http.StatusInternalServerError, "Erro ao atualizar conta")
		}
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (h *BillHandler) Delete(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}
	id, ok := util.ParamID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	deleted, err := h.Store.DeleteBill(id)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao excluir conta")
		return
	}
	if !deleted {
		util.Error(c, http.StatusNotFound, "Conta não encontrada")
		return
	}
	c.Status(http.StatusNoContent)
}
