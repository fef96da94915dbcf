package handler

import (
	"net/http"

	"github.com/renancoelho1710/organizofinanceiro/internal/middleware"
	"github.com/renancoelho1710/organizofinanceiro/internal/util"

	"github.com/gin-gonic/gin"
)

// GetUser returns the current principal's profile, password excluded.
func GetUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusNotFound, "Usuário não encontrado")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"name":     user.Name,
		"email":    user.Email,
		"phone":    user.Phone,
		"notificationPreferences": gin.H{
			"whatsapp": true,
			"sms":      false,
		},
	})
}
