package model

import "time"

// 好友关系状态
const (
	FriendshipStatusPending  = "pending"  // 待处理
	FriendshipStatusAccepted = "accepted" // 已接受
	FriendshipStatusDeclined = "declined" // 已拒绝
)

// Friendship 有向好友关系边 (user_id -> friend_user_id)
// 双方互为好友时存在两条镜像的 accepted 记录
type Friendship struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID       int64     `gorm:"column:user_id;not null;uniqueIndex:idx_friendship_pair,priority:1;comment:发起方用户id"`
	FriendUserID int64     `gorm:"column:friend_user_id;not null;uniqueIndex:idx_friendship_pair,priority:2;index;comment:好友用户id"`
	Status       string    `gorm:"column:status;type:varchar(16);not null;index;comment:状态 pending/accepted/declined"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

// TableName 指定表名
func (Friendship) TableName() string {
	return "friendships"
}

// FriendProfileRow 好友资料主查询的结果行
// 不对应任何表，由 users、friendships 以及好友总数派生表联结而成
type FriendProfileRow struct {
	ID               int64  `gorm:"column:id"`
	FullName         string `gorm:"column:full_name"`
	PhoneNumber      string `gorm:"column:phone_number"`
	TotalFriendCount int64  `gorm:"column:total_friend_count"`
}
