// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"friend_profile_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router 路由管理器
type Router struct {
	handlers *handler.Handlers
	auth     gin.HandlerFunc // 认证中间件
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers, auth gin.HandlerFunc) *Router {
	return &Router{handlers: handlers, auth: auth}
}

// RegisterRoutes 注册所有路由
// 公共路由无需认证，其余路由挂在认证分组下
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", rt.handlers.Health.Healthz)
	rt.RegisterAuthRoutes(r.Group(""))

	authed := r.Group("")
	authed.Use(rt.auth)
	rt.RegisterFriendRoutes(authed)
}

// RegisterAuthRoutes 注册认证路由（Token 刷新）
func (rt *Router) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/refresh", rt.handlers.Auth.RefreshToken)
}
