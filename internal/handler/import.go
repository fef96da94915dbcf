package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/renancoelho1710/organizofinanceiro/internal/importer"
	"github.com/renancoelho1710/organizofinanceiro/internal/middleware"
	"github.com/renancoelho1710/organizofinanceiro/internal/util"

	"github.com/gin-gonic/gin"
)

// ImportHandler serves POST /api/import: multipart spreadsheet upload in
// field "file".
type ImportHandler struct {
	Importer *importer.Importer
	MaxBytes int64
}

func NewImportHandler(imp *importer.Importer, maxBytes int64) *ImportHandler {
	if maxBytes <= 0 {
		maxBytes = 5 * 1024 * 1024
	}
	return &ImportHandler{Importer: imp, MaxBytes: maxBytes}
}

var allowedExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

func (h *ImportHandler) Import(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Não autenticado")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Nenhum arquivo enviado")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		util.Error(c, http.StatusBadRequest, "Apenas arquivos de planilha são permitidos")
		return
	}
	if fileHeader.Size > h.MaxBytes {
		util.Error(c, http.StatusRequestEntityTooLarge, "Arquivo excede o limite de 5MB")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Erro ao ler o arquivo enviado")
		return
	}
	defer f.Close()

	result, err := h.Importer.Import(user.ID, fileHeader.Filename, f)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Erro ao importar arquivo: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%d transações importadas com sucesso", result.Count),
		"count":   result.Count,
		"errors":  result.Errors,
	})
}
