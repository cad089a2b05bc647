// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
package repository

import (
	"context"

	"friend_profile_server/internal/model"

	"gorm.io/gorm"
)

// FriendshipRepository 好友关系数据访问接口
// 只读：本服务不创建也不修复好友关系边
type FriendshipRepository interface {
	// CountMutualFriends 统计 userId 与 friendUserId 共同的已接受好友数量
	CountMutualFriends(ctx context.Context, userId, friendUserId int64) (int64, error)
	// FindAcceptedFriendProfile 查找 userId -> friendUserId 的已接受关系，并返回对方资料与好友总数
	// 关系或资料不存在时返回 CodeNotFound
	FindAcceptedFriendProfile(ctx context.Context, userId, friendUserId int64) (*model.FriendProfileRow, error)
}

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db         *gorm.DB
	Friendship FriendshipRepository
}

// NewRepositories 创建所有 Repository 实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:         db,
		Friendship: NewFriendshipRepository(db),
	}
}

// Ping 检查数据库连接是否可用
func (r *Repositories) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return wrapDBError(err, "获取数据库连接")
	}
	return wrapDBError(sqlDB.PingContext(ctx), "数据库 ping")
}
