package routers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/ChatArchive/config"
	"github.com/Gopher0727/ChatArchive/internal/handlers"
	"github.com/Gopher0727/ChatArchive/pkg/middlewares"
)

// SetupRoutes 设置所有路由
func SetupRoutes(r *gin.Engine, cfg *config.Config, callbackHandler *handlers.CallbackHandler) {
	// 请求级 trace_id，方便把一条消息的日志串起来
	r.Use(middlewares.TraceMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"Status": "OK",
		})
	})

	// 全局限流中间件 (防止客户端消息风暴打挂磁盘)
	if cfg.RateLimit.QPS > 0 {
		r.Use(middlewares.RateLimitMiddleware(2 * time.Second))
	}
	if cfg.RateLimit.MaxConcurrency > 0 {
		r.Use(middlewares.MaxConcurrencyMiddleware(cfg.RateLimit.MaxConcurrency))
	}

	// 消息回调
	r.POST("/callback", callbackHandler.Receive)
}
