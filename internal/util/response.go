package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Error writes the uniform error body used by every endpoint: {"message": …}.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// ParamID parses the :id route parameter as a positive integer.
func ParamID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
