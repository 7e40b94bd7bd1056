package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-relay/internal/httpresp"
)

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, httpresp.Result{
		Success: false,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func BadGateway(c *gin.Context, message string) {
	Write(c, http.StatusBadGateway, message)
}

// Abort writes the failure and stops the handler chain.
func Abort(c *gin.Context, status int, message string) {
	Write(c, status, message)
	c.Abort()
}
