// Package request 定义 HTTP 请求参数结构
package request

// GetFriendProfileRequest 获取好友资料请求
// 使用位置:
//   - handler/friend_handler.go: GetFriendProfile
//
// 请求方用户ID来自 JWT 中间件，不在请求体中传递
type GetFriendProfileRequest struct {
	// FriendUserId 目标好友用户ID
	FriendUserId int64 `json:"friendUserId" form:"friendUserId" binding:"required,gt=0"`
}
