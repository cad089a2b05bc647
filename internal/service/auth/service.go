// Package auth 提供认证相关的业务逻辑
// 处理 Token 会话校验、刷新等功能
package auth

import (
	"context"

	myredis "friend_profile_server/internal/dao/redis"
	"friend_profile_server/pkg/errorx"
	"friend_profile_server/pkg/util/jwt"

	"go.uber.org/zap"
)

// Service 认证服务实现
type Service struct {
	cache myredis.CacheService // 缓存服务（依赖倒置）
}

// NewAuthService 创建认证服务实例
func NewAuthService(cache myredis.CacheService) *Service {
	return &Service{
		cache: cache,
	}
}

// ValidateTokenID 验证 Token ID 是否为用户当前的登录会话
// 用户在其他设备登录后旧 Token ID 失效（单点互踢）
func (s *Service) ValidateTokenID(ctx context.Context, userID int64, tokenID string) (bool, error) {
	validTokenID, err := s.cache.Get(ctx, myredis.UserTokenKey(userID))
	if err != nil {
		return false, err
	}
	if validTokenID == "" {
		return false, nil
	}
	return tokenID == validTokenID, nil
}

// RefreshAccessToken 用 Refresh Token 换取新的 Access Token
func (s *Service) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil {
		return "", errorx.Wrap(err, errorx.CodeUnauthorized, "Refresh Token 已过期或无效，请重新登录")
	}
	if claims.Subject != jwt.SubjectRefresh {
		return "", errorx.New(errorx.CodeUnauthorized, "请使用 Refresh Token")
	}

	ok, err := s.ValidateTokenID(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errorx.New(errorx.CodeUnauthorized, "登录状态已失效，请重新登录")
	}

	accessToken, err := jwt.GenerateAccessToken(claims.UserID, claims.TokenID)
	if err != nil {
		zap.L().Error("generate access token error", zap.Int64("user_id", claims.UserID), zap.Error(err))
		return "", errorx.Wrap(err, errorx.CodeServerBusy, "生成 Access Token 失败")
	}
	return accessToken, nil
}
