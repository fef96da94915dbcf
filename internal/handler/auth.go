package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/renancoelho1710/organizofinanceiro/internal/store"
	"github.com/renancoelho1710/organizofinanceiro/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler issues access tokens. The API works without one (the demo
// principal is assumed); tokens exist so a real login flow can take over
// without touching the handlers below the principal middleware.
type AuthHandler struct {
	Store     *store.Store
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

func NewAuthHandler(s *store.Store, jwtSecret, issuer string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		Store:     s,
		JWTSecret: jwtSecret,
		Issuer:    issuer,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Dados inválidos")
		return
	}

	user, err := h.Store.GetUserByUsername(strings.TrimSpace(req.Username))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusUnauthorized, "Usuário ou senha incorretos")
		} else {
			util.Error(c, http.StatusInternalServerError, "Erro ao consultar usuário")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		util.Error(c, http.StatusUnauthorized, "Usuário ou senha incorretos")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.Issuer, user.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao gerar token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"name":     user.Name,
		},
	})
}
