package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/renancoelho1710/organizofinanceiro/internal/middleware"
	"github.com/renancoelho1710/organizofinanceiro/internal/store"
	"github.com/renancoelho1710/organizofinanceiro/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardHandler aggregates the landing-page view in one call.
type DashboardHandler struct {
	Store         *store.Store
	RecentLimit   int
	UpcomingLimit int
}

func NewDashboardHandler(s *store.Store, recentLimit, upcomingLimit int) *DashboardHandler {
	if recentLimit <= 0 {
		recentLimit = 5
	}
	if upcomingLimit <= 0 {
		upcomingLimit = 4
	}
	return &DashboardHandler{Store: s, RecentLimit: recentLimit, UpcomingLimit: upcomingLimit}
}

var monthNamesPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// monthLabel renders the pt-BR long month label, e.g. "agosto de 2026".
func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s de %d", monthNamesPtBR[t.Month()-1], t.Year())
}

func (h *DashboardHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}

	balance, err := h.Store.GetAccountBalance(user.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Balanço não encontrado")
		} else {
			util.Error(c, http.StatusInternalServerError, "Erro ao consultar balanço")
		}
		return
	}

	now := time.Now()

	recent, err := h.Store.RecentTransactions(user.ID, h.RecentLimit)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao consultar transações")
		return
	}
	upcoming, err := h.Store.UpcomingBills(user.ID, h.UpcomingLimit, now)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao consultar contas")
		return
	}
	cards, err := h.Store.ListCreditCards(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao consultar cartões")
		return
	}
	expenses, err := h.Store.ExpensesByCategory(user.ID, now)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao calcular despesas por categoria")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"balance":            balance,
		"recentTransactions": recent,
		"upcomingBills":      upcoming,
		"creditCards":        cards,
		"expensesByCategory": expenses,
		"currentMonth":       monthLabel(now),
	})
}
