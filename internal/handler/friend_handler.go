package handler

import (
	"friend_profile_server/internal/dto/request"
	"friend_profile_server/internal/infrastructure/middleware"
	"friend_profile_server/internal/service"
	"friend_profile_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// FriendHandler 好友相关请求处理器
type FriendHandler struct {
	svc service.FriendService
}

// NewFriendHandler 创建好友处理器
func NewFriendHandler(svc service.FriendService) *FriendHandler {
	return &FriendHandler{svc: svc}
}

// GetFriendProfile 获取好友资料
// GET  /friend/profile?friendUserId=xxx
// POST /friend/profile  请求体: request.GetFriendProfileRequest
// 响应: respond.GetFriendProfileRespond
//
// 请求方用户ID由 JWTAuth 中间件写入上下文
func (h *FriendHandler) GetFriendProfile(c *gin.Context) {
	var req request.GetFriendProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	userId := c.GetInt64(middleware.ContextUserIDKey)
	if userId <= 0 {
		HandleError(c, errorx.ErrUnauthorized)
		return
	}

	data, err := h.svc.GetFriendProfile(c.Request.Context(), userId, req.FriendUserId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
