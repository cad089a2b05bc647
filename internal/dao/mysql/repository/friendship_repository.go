package repository

import (
	"context"

	"friend_profile_server/internal/model"

	"gorm.io/gorm"
)

type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository 创建好友关系 Repository
func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

// totalFriendCountQuery 每个用户的已接受好友总数（出度）
// 只构建不执行，作为派生表参与联结
func (r *friendshipRepository) totalFriendCountQuery() *gorm.DB {
	return r.db.Model(&model.Friendship{}).
		Select("user_id, COUNT(friend_user_id) AS total_friend_count").
		Where("status = ?", model.FriendshipStatusAccepted).
		Group("user_id")
}

// CountMutualFriends 自联结 friendships，统计双方都指向的第三方数量
// 没有交集时结果为 0，不视为错误
func (r *friendshipRepository) CountMutualFriends(ctx context.Context, userId, friendUserId int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("friendships AS f1").
		Select("COUNT(DISTINCT f1.friend_user_id)").
		Joins("INNER JOIN friendships AS f2 ON f1.friend_user_id = f2.friend_user_id").
		Where("f1.user_id = ? AND f2.user_id = ?", userId, friendUserId).
		Where("f1.status = ? AND f2.status = ?", model.FriendshipStatusAccepted, model.FriendshipStatusAccepted).
		Scan(&count).Error
	if err != nil {
		return 0, wrapDBErrorf(err, "统计共同好友 user_id=%d friend_user_id=%d", userId, friendUserId)
	}
	return count, nil
}

// FindAcceptedFriendProfile 查找已接受的好友关系并联结对方资料与好友总数
// 对方没有任何已接受的好友时，LEFT JOIN 后用 COALESCE 得到 0
func (r *friendshipRepository) FindAcceptedFriendProfile(ctx context.Context, userId, friendUserId int64) (*model.FriendProfileRow, error) {
	var row model.FriendProfileRow
	err := r.db.WithContext(ctx).
		Table("users AS friends").
		Select("friends.id, friends.full_name, friends.phone_number, COALESCE(tfc.total_friend_count, 0) AS total_friend_count").
		Joins("INNER JOIN friendships ON friendships.friend_user_id = friends.id").
		Joins("LEFT JOIN (?) AS tfc ON tfc.user_id = friends.id", r.totalFriendCountQuery()).
		Where("friendships.user_id = ?", userId).
		Where("friendships.friend_user_id = ?", friendUserId).
		Where("friendships.status = ?", model.FriendshipStatusAccepted).
		Take(&row).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询好友资料 user_id=%d friend_user_id=%d", userId, friendUserId)
	}
	return &row, nil
}
