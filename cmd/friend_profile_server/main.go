package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"friend_profile_server/internal/config"
	dao "friend_profile_server/internal/dao/mysql"
	myredis "friend_profile_server/internal/dao/redis"
	"friend_profile_server/internal/handler"
	"friend_profile_server/internal/https_server"
	"friend_profile_server/internal/infrastructure/logger"
	"friend_profile_server/internal/infrastructure/middleware"
	"friend_profile_server/internal/service"
	"friend_profile_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置（找不到文件时使用零值配置，解析失败直接退出）
	if err := config.LoadConfig(); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		log.Fatalf("load config failed: %v", err)
	}
	conf := config.GetConfig()

	// 2. 初始化日志
	mode := conf.MainConfig.Mode
	if mode == "" {
		mode = "dev"
	}
	if mode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := logger.Init(&conf.LogConfig, mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	// 3. 参数校验翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	// 4. 初始化数据库
	repos, err := dao.Init(&conf.MysqlConfig)
	if err != nil {
		zap.L().Fatal("init mysql failed", zap.Error(err))
	}

	// 5. 初始化 Redis
	cache, err := myredis.Init(&conf.RedisConfig)
	if err != nil {
		zap.L().Fatal("init redis failed", zap.Error(err))
	}
	defer func() { _ = cache.Close() }()

	// 6. 初始化 JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)

	// 7. 依赖注入：Repository -> Service -> Handler
	svc := service.NewServices(repos, cache)
	handlers := handler.NewHandlers(svc)
	engine := https_server.Init(conf, handlers, middleware.JWTAuth(svc.Auth))

	// 8. 启动服务
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}
	go func() {
		zap.L().Info("server listening", zap.String("addr", srv.Addr), zap.Bool("tls", conf.MainConfig.TLS))
		if err := https_server.Serve(srv, &conf.MainConfig); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server shutdown error", zap.Error(err))
	}
	zap.L().Info("服务器已关闭")
}
