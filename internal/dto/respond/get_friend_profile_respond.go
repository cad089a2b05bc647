// Package respond 定义 HTTP 响应数据结构
package respond

// GetFriendProfileRespond 好友资料响应
// 使用位置:
//   - internal/service/friend/service.go: GetFriendProfile
//
// validate 标签描述输出结构约束，由 Service 在返回前校验
type GetFriendProfileRespond struct {
	Id                int64  `json:"id" validate:"gt=0"`
	FullName          string `json:"fullName" validate:"required"`
	PhoneNumber       string `json:"phoneNumber" validate:"required"`
	TotalFriendCount  int64  `json:"totalFriendCount" validate:"gte=0"`
	MutualFriendCount int64  `json:"mutualFriendCount" validate:"gte=0"`
}
