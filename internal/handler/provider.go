package handler

import (
	"friend_profile_server/internal/service"
)

// Handlers 聚合所有 Handler 实例
// 作为依赖注入的入口，Router 层通过此结构访问各个 Handler
type Handlers struct {
	Friend *FriendHandler
	Auth   *AuthHandler
	Health *HealthHandler
}

// NewHandlers 创建并注入所有 Handler 实例
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Friend: NewFriendHandler(svc.Friend),
		Auth:   NewAuthHandler(svc.Auth),
		Health: NewHealthHandler(svc.Health),
	}
}
