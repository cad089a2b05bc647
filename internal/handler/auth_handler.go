// Package handler 提供 HTTP 请求处理器
package handler

import (
	"friend_profile_server/internal/dto/request"
	"friend_profile_server/internal/dto/respond"
	"friend_profile_server/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证相关请求处理器
type AuthHandler struct {
	svc service.AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// RefreshToken 刷新 Access Token
// POST /auth/refresh
// 请求体: request.RefreshTokenRequest
// 响应: respond.RefreshTokenRespond
//
// Refresh Token 的 Token ID 必须与 Redis 中记录的当前会话一致，
// 用户在其他设备登录后旧的 Refresh Token 无法再换取 Access Token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	accessToken, err := h.svc.RefreshAccessToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.RefreshTokenRespond{AccessToken: accessToken})
}
