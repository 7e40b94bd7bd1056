package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-relay/internal/httperr"
	"github.com/BruksfildServices01/appointment-relay/internal/locale"
)

// Recovery turns a panic anywhere down the chain into the generic booking
// failure, so the caller always gets the {success, message} envelope.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("unhandled panic",
					zap.Any("error", rec),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(RequestIDKey)),
					zap.Stack("stack"),
				)
				httperr.Abort(c, http.StatusInternalServerError, locale.BookingFailed)
			}
		}()
		c.Next()
	}
}
