package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterFriendRoutes 注册好友相关路由（需要认证）
func (rt *Router) RegisterFriendRoutes(rg *gin.RouterGroup) {
	friendGroup := rg.Group("/friend")
	{
		// 同时支持查询参数与 JSON 请求体
		friendGroup.GET("/profile", rt.handlers.Friend.GetFriendProfile)
		friendGroup.POST("/profile", rt.handlers.Friend.GetFriendProfile)
	}
}
