package middlewares

import (
	"github.com/gin-gonic/gin"

	logger "github.com/Gopher0727/ChatArchive/middleware/log"
)

// TraceHeader 是透传 trace_id 的请求头
const TraceHeader = "X-Trace-ID"

// TraceMiddleware 为每个请求注入 trace_id
// 客户端带了 X-Trace-ID 就沿用，否则生成一个新的，并回写到响应头
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceHeader)
		if traceID == "" {
			traceID = logger.NewTraceID()
		}

		ctx := logger.WithTraceID(c.Request.Context(), traceID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceHeader, traceID)

		c.Next()
	}
}
