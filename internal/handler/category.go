package handler

import (
	"net/http"

	"github.com/renancoelho1710/organizofinanceiro/internal/middleware"
	"github.com/renancoelho1710/organizofinanceiro/internal/models"
	"github.com/renancoelho1710/organizofinanceiro/internal/store"
	"github.com/renancoelho1710/organizofinanceiro/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler serves /api/categories.
type CategoryHandler struct {
	Store *store.Store
}

func NewCategoryHandler(s *store.Store) *CategoryHandler {
	return &CategoryHandler{Store: s}
}

type categoryReq struct {
	Name  string `json:"name" binding:"required,max=64"`
	Color string `json:"color" binding:"required,max=16"`
}

type updateCategoryReq struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}

	categories, err := h.Store.ListCategories(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao consultar categorias")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	category := models.Category{UserID: user.ID, Name: req.Name, Color: req.Color}
	if err := h.Store.CreateCategory(&category); err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao salvar categoria")
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}
	id, ok := util.ParamID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var req updateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	category, err := h.Store.UpdateCategory(id, req.Name, req.Color)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Categoria não encontrada")
		} else {
			util.Error(c, http.StatusInternalServerError, "Erro ao atualizar categoria")
		}
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}
	id, ok := util.ParamID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "ID inválido")
		return
	}

	deleted, err := h.Store.DeleteCategory(id)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Erro ao excluir categoria")
		return
	}
	if !deleted {
		util.Error(c, http.StatusNotFound, "Categoria não encontrada")
		return
	}
	c.Status(http.StatusNoContent)
}
