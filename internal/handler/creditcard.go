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

// CreditCardHandler serves /api/credit-cards.
type CreditCardHandler struct {
	Store *store.Store
}

func NewCreditCardHandler(s *store.Store) *CreditCardHandler {
	return &CreditCardHandler{Store: s}
}

type createCreditCardReq struct {
	Name           string           `json:"name" binding:"required"`
	LastFourDigits string           `json:"lastFourDigits" binding:"required,len=4,numeric"`
	Limit          decimal.Decimal  `json:"limit" binding:"required"`
	CurrentBalance *decimal.Decimal `json:"currentBalance"`
	DueDate        int              `json:"dueDate" binding:"required"`
	ClosingDate    int              `json:"closingDate" binding:"required"`
	CardType       string           `json:"cardType"`
	Color          string           `json:"color" binding:"required"`
}

func (h *CreditCardHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}

	cards, err := h.Store.ListCreditCards(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao consultar cartões")
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *CreditCardHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}

	var req createCreditCardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}
	if err := util.ValidateDayOfMonth(req.DueDate); err != nil {
		util.Error(c, http.StatusBadRequest, "Dia de vencimento inválido")
		return
	}
	if err := util.ValidateDayOfMonth(req.ClosingDate); err != nil {
		util.Error(c, http.StatusBadRequest, "Dia de fechamento inválido")
		return
	}

	card := models.CreditCard{
		UserID:         user.ID,
		Name:           req.Name,
		LastFourDigits: req.LastFourDigits,
		Limit:          req.Limit,
		CurrentBalance: decimal.Zero,
		DueDate:        req.DueDate,
		ClosingDate:    req.ClosingDate,
		CardType:       req.CardType,
		Color:          req.Color,
	}
	if req.CurrentBalance != nil {
		card.CurrentBalance = *req.CurrentBalance
	}
	if err := h.Store.CreateCreditCard(&card); err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao salvar cartão")
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *CreditCardHandler) Update(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}
	id, ok := util.ParamID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var upd models.CreditCardUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		util.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}
	if upd.DueDate != nil {
		if err := util.ValidateDayOfMonth(*upd.DueDate); err != nil {
			util.Error(c, http.StatusBadRequest, "Dia de vencimento inválido")
			return
		}
	}
	if upd.ClosingDate != nil {
		if err := util.ValidateDayOfMonth(*upd.ClosingDate); err != nil {
			util.Error(c, http.StatusBadRequest, "Dia de fechamento inválido")
			return
		}
	}

	card, err := h.Store.UpdateCreditCard(id, upd)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Cartão não encontrado")
		} else {
			util.Error(c, http.StatusInternalServerError, "Erro ao atualizar cartão")
		}
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *CreditCardHandler) Delete(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}
	id, ok := util.ParamID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	deleted, err := h.Store.DeleteCreditCard(id)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao excluir cartão")
		return
	}
	if !deleted {
		util.Error(c, http.StatusNotFound, "Cartão não encontrado")
		return
	}
	c.Status(http.StatusNoContent)
}
