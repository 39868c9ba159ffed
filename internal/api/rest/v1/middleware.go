package v1

import (
	"time"

	"github.com/MGTheTrain/card-wallet/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs method, path, status and latency of every request
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		latency := time.Since(start)
		msg := []interface{}{ctx.Request.Method, " ", ctx.Request.URL.Path, " ", status, " ", latency}

		switch {
		case status >= 500:
			log.Error(msg...)
		case status >= 400:
			log.Warn(msg...)
		default:
			log.Info(msg...)
		}
	}
}
