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

// SavingsGoalHandler serves /api/savings-goals.
type SavingsGoalHandler struct {
	Store *store.Store
}

func NewSavingsGoalHandler(s *store.Store) *SavingsGoalHandler {
	return &SavingsGoalHandler{Store: s}
}

type createGoalReq struct {
	Name          string           `json:"name" binding:"required"`
	TargetAmount  decimal.Decimal  `json:"targetAmount" binding:"required"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	Deadline      *string          `json:"deadline"`
	Category      string           `json:"category"`
	Color         string           `json:"color"`
	Notes         string           `json:"notes"`
}

func (h *SavingsGoalHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}

	goals, err := h.Store.ListSavingsGoals(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao consultar metas")
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (h *SavingsGoalHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}

	var req createGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}
	if err := util.ValidateAmount(req.TargetAmount); err != nil {
		util.Error(c, http.StatusBadRequest, "Valor da meta inválido")
		return
	}

	goal := models.SavingsGoal{
		UserID:        user.ID,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Category:      req.Category,
		Color:         req.Color,
		Notes:         req.Notes,
	}
	if goal.Color == "" {
		goal.Color = "#8b5cf6"
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.Deadline != nil && *req.Deadline != "" {
		deadline, err := parseDate(*req.Deadline)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "Prazo inválido")
			return
		}
		goal.Deadline = &deadline
	}

	if err := h.Store.CreateSavingsGoal(&goal); err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao salvar meta")
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (h *SavingsGoalHandler) Update(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}
	id, ok := util.ParamID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var upd models.SavingsGoalUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		util.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	goal, err := h.Store.UpdateSavingsGoal(id, upd)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Meta não encontrada")
		} else {
			util.Error(c, http.StatusInternalServerError, "Erro ao atualizar meta")
		}
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *SavingsGoalHandler) Delete(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}
	id, ok := util.ParamID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	deleted, err := h.Store.DeleteSavingsGoal(id)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao excluir meta")
		return
	}
	if !deleted {
		util.Error(c, http.StatusNotFound, "Meta não encontrada")
		return
	}
	c.Status(http.StatusNoContent)
}
