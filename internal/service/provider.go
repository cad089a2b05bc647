// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"friend_profile_server/internal/dao/mysql/repository"
	myredis "friend_profile_server/internal/dao/redis"
	"friend_profile_server/internal/service/auth"
	"friend_profile_server/internal/service/friend"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过此结构访问各个 Service
type Services struct {
	Friend FriendService
	Auth   AuthService
	// Health 依次检查的依赖（数据库、缓存）
	Health []HealthChecker
}

// NewServices 创建并注入所有 Service 实例
func NewServices(repos *repository.Repositories, cache myredis.CacheService) *Services {
	return &Services{
		Friend: friend.NewFriendService(repos),
		Auth:   auth.NewAuthService(cache),
		Health: []HealthChecker{repos, cache},
	}
}
