// Package service 定义业务层接口
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"context"

	"friend_profile_server/internal/dto/respond"
)

// FriendService 好友业务接口
type FriendService interface {
	// GetFriendProfile 获取已接受好友的资料、好友总数和共同好友数
	GetFriendProfile(ctx context.Context, userId, friendUserId int64) (*respond.GetFriendProfileRespond, error)
}

// AuthService 认证业务接口
type AuthService interface {
	// ValidateTokenID 校验 Token ID 是否为当前有效会话
	ValidateTokenID(ctx context.Context, userID int64, tokenID string) (bool, error)
	// RefreshAccessToken 使用 Refresh Token 换取新的 Access Token
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
}

// HealthChecker 依赖健康检查接口
type HealthChecker interface {
	// Ping 检查依赖是否可用
	Ping(ctx context.Context) error
}
