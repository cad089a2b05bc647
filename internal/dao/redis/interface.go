// Package redis 定义缓存服务接口及其 Redis 实现
// 遵循依赖倒置原则，Service 层依赖此接口而非具体 Redis 实现
package redis

import (
	"context"
	"strconv"
)

// CacheService 缓存服务接口
type CacheService interface {
	// Get 获取键对应的值（键不存在返回空字符串和 nil）
	Get(ctx context.Context, key string) (string, error)
	// Ping 检查缓存是否可用
	Ping(ctx context.Context) error
}

// UserTokenKey 用户当前有效登录会话的 TokenID 所在键
// 由登录服务写入，重新登录会覆盖旧值（单点互踢）
func UserTokenKey(userID int64) string {
	return "user_token:" + strconv.FormatInt(userID, 10)
}
