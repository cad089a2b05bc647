// Package https_server 负责创建 Gin 引擎并配置中间件和路由
package https_server

import (
	"errors"
	"net/http"

	"friend_profile_server/internal/config"
	"friend_profile_server/internal/handler"
	"friend_profile_server/internal/infrastructure/logger"
	"friend_profile_server/internal/infrastructure/middleware"
	"friend_profile_server/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init 创建 Gin 引擎并返回
// 中间件顺序：请求ID -> 日志 -> 恢复 -> CORS -> (HTTPS 重定向) -> 业务路由
func Init(conf *config.Config, handlers *handler.Handlers, auth gin.HandlerFunc) *gin.Engine {
	// 不使用 gin.Default()，以便完全控制中间件
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	if len(conf.CorsConfig.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = conf.CorsConfig.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	engine.Use(cors.New(corsConfig))

	if conf.MainConfig.TLS {
		engine.Use(middleware.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port))
	}

	router.NewRouter(handlers, auth).RegisterRoutes(engine)
	return engine
}

// ErrMissingCert 开启 TLS 但未配置证书或私钥
var ErrMissingCert = errors.New("tls enabled but certFile or keyFile is empty")

// Serve 启动监听，阻塞直到服务关闭
// tls = true 时使用配置的证书直接提供 HTTPS
func Serve(srv *http.Server, conf *config.MainConfig) error {
	if !conf.TLS {
		return srv.ListenAndServe()
	}
	if conf.CertFile == "" || conf.KeyFile == "" {
		return ErrMissingCert
	}
	return srv.ListenAndServeTLS(conf.CertFile, conf.KeyFile)
}
