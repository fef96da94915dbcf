package middleware

import (
	"net/http"
	"strings"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"
	"github.com/renancoelho1710/organizofinanceiro/internal/store"
	"github.com/renancoelho1710/organizofinanceiro/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const principalKey = "currentUser"

// Principal resolves the current user for the request and stores it in the
// gin context. A valid Bearer token selects its user; without one the
// configured demo user is the principal, standing in for real
// authentication. Business handlers only ever see the resolved user, so
// swapping the demo fallback for real multi-tenant auth touches nothing
// below this middleware.
func Principal(jwtSecret, demoUsername string, s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user *models.User

		if tokenStr := bearerToken(c); tokenStr != "" {
			claims, err := util.ParseToken(jwtSecret, tokenStr)
			if err != nil {
				util.Error(c, http.StatusUnauthorized, "Sessão inválida ou expirada")
				c.Abort()
				return
			}
			u, err := s.GetUser(claims.UserID)
			if err != nil {
				util.Error(c, http.StatusUnauthorized, "Usuário não encontrado")
				c.Abort()
				return
			}
			user = u
		} else {
			u, err := s.GetUserByUsername(demoUsername)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					util.Error(c, http.StatusNotFound, "Usuário não encontrado")
				} else {
					util.Error(c, http.StatusInternalServerError, "Erro ao consultar usuário")
				}
				c.Abort()
				return
			}
			user = u
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// CurrentUser returns the principal resolved by Principal.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
