package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-pack-service/internal/domain/dto"
	"github.com/guttosm/cargo-pack-service/internal/i18n"
	"github.com/guttosm/cargo-pack-service/internal/logger"
)

// ErrorHandler returns a middleware that handles gin context errors.
// Errors attached by handlers are logged; if nothing was written yet a 500
// response is sent.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		event := log.Error()
		if status := c.Writer.Status(); c.Writer.Written() && status < http.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Str("request_id", requestID).
			Str("error", err.Error()).
			Int("errors", len(c.Errors)).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
