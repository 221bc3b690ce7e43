package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xiebiao/libraryapi/pkg/tracing"
)

const slowRequestThreshold = 3 * time.Second

// Logger 请求日志，每个请求一行结构化日志
// 5xx记为error，4xx记为warn，慢请求记为warn
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		var e *zerolog.Event
		switch {
		case status >= 500:
			e = log.Error()
		case status >= 400, latency > slowRequestThreshold:
			e = log.Warn()
		default:
			e = log.Info()
		}

		if len(c.Errors) > 0 {
			e = e.Str("errors", c.Errors.String())
		}

		e.Str("request_id", c.GetString(ctxRequestID)).
			Str("trace_id", tracing.ExtractTraceID(c.Request.Context())).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Msg("http request")
	}
}
