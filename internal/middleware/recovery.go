package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-pack-service/internal/domain/dto"
	"github.com/guttosm/cargo-pack-service/internal/i18n"
	"github.com/guttosm/cargo-pack-service/internal/logger"
	"github.com/guttosm/cargo-pack-service/internal/metrics"
)

// Recovery turns a handler panic into a translated 500 ErrorResponse. A
// response that already started, such as an open progress stream, is only
// aborted.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			route := c.FullPath()
			if route == "" {
				route = c.Request.URL.Path
			}
			requestID := GetRequestID(c)
			metrics.RecordPanic(route)
			log := logger.Logger()
			log.Error().
				Str("request_id", requestID).
				Str("route", route).
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("Handler panicked")

			if c.Writer.Written() {
				c.Abort()
				return
			}
			msg := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewError(dto.ErrCodeInternal, msg).WithRequestID(requestID))
		}()
		c.Next()
	}
}
