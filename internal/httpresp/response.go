package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Result is the envelope every booking call answers with.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Result{
		Success: true,
		Message: message,
	})
}
