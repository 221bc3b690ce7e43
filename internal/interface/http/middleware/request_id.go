package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求ID头，客户端传入时沿用
const RequestIDHeader = "X-Request-ID"

const ctxRequestID = "request_id"

// RequestID 为每个请求分配ID，写入Context和响应头
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(ctxRequestID, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
