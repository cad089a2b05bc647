package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"friend_profile_server/internal/config"
	"friend_profile_server/pkg/errorx"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCache CacheService 的 Redis 实现
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache 创建 Redis 缓存实例
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Init 按配置创建 Redis 客户端并检查连通性
func Init(conf *config.RedisConfig) (*RedisCache, error) {
	poolSize := conf.PoolSize
	if poolSize <= 0 {
		poolSize = 20
	}
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Host + ":" + strconv.Itoa(conf.Port),
		Password: conf.Password,
		DB:       conf.Db,
		PoolSize: poolSize,
	})

	rc := NewRedisCache(client)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	zap.L().Info("redis connected", zap.String("addr", client.Options().Addr), zap.Int("db", conf.Db))
	return rc, nil
}

// Get 获取键对应的值（键不存在返回空字符串和 nil）
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}

// Ping 检查 Redis 连通性
func (r *RedisCache) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errorx.Wrap(err, errorx.CodeCacheError, "redis ping")
	}
	return nil
}

// Close 关闭客户端连接池
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// 确保 RedisCache 实现了 CacheService 接口
var _ CacheService = (*RedisCache)(nil)
