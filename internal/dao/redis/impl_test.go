package redis

import (
	"context"
	"strconv"
	"testing"

	"friend_profile_server/internal/config"
	"friend_profile_server/pkg/errorx"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniCache(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc := NewRedisCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = rc.Close() })
	return mr, rc
}

func TestRedisCache_Get(t *testing.T) {
	mr, rc := newMiniCache(t)
	require.NoError(t, mr.Set(UserTokenKey(7), "tok-1"))

	v, err := rc.Get(context.Background(), UserTokenKey(7))
	require.NoError(t, err)
	assert.Equal(t, "tok-1", v)

	// 键不存在不算错误
	v, err = rc.Get(context.Background(), UserTokenKey(8))
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestRedisCache_Unavailable(t *testing.T) {
	mr, rc := newMiniCache(t)
	mr.Close()

	_, err := rc.Get(context.Background(), UserTokenKey(7))
	require.Error(t, err)
	assert.Equal(t, errorx.CodeCacheError, errorx.GetCode(err))
	assert.Equal(t, errorx.CodeCacheError, errorx.GetCode(rc.Ping(context.Background())))
}

func TestInit(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	rc, err := Init(&config.RedisConfig{Host: mr.Host(), Port: port})
	require.NoError(t, err)
	defer rc.Close()
	assert.NoError(t, rc.Ping(context.Background()))
}

func TestUserTokenKey(t *testing.T) {
	assert.Equal(t, "user_token:42", UserTokenKey(42))
}
