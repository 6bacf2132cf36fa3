package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/ChatArchive/config"
	"github.com/Gopher0727/ChatArchive/internal/archive"
	"github.com/Gopher0727/ChatArchive/internal/handlers"
	"github.com/Gopher0727/ChatArchive/internal/routers"
	logger "github.com/Gopher0727/ChatArchive/middleware/log"
	"github.com/Gopher0727/ChatArchive/pkg/middlewares"
)

func main() {
	cfg, err := config.LoadConfig("./config.toml")
	if err != nil {
		log.Fatalf("配置初始化失败: %v", err)
	}

	zlog, err := logger.NewLogger(&cfg.Logging)
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer zlog.Close()

	// 初始化全局限流器
	if cfg.RateLimit.QPS > 0 {
		middlewares.InitGlobalLimiter(cfg.RateLimit.Burst, cfg.RateLimit.QPS)
	}

	// 初始化归档流水线
	pipeline := archive.NewPipeline(cfg, zlog)

	// 初始化处理器
	callbackHandler := handlers.NewCallbackHandler(pipeline)

	// 配置并创建 Gin 引擎
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// 设置路由
	routers.SetupRoutes(r, cfg, callbackHandler)

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("正在启动服务器，监听 %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务器失败: %v", err)
	}
}
