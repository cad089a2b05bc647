package middleware

import (
	"context"
	"net/http"
	"strings"

	"friend_profile_server/pkg/errorx"
	"friend_profile_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextUserIDKey 认证通过后请求方用户ID在 gin.Context 中的键
const ContextUserIDKey = "user_id"

// TokenValidator 校验 Token ID 是否为当前有效会话
type TokenValidator interface {
	ValidateTokenID(ctx context.Context, userID int64, tokenID string) (bool, error)
}

// JWTAuth JWT 认证中间件
// 验证 Access Token 与登录会话，并将用户ID存入上下文
func JWTAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "请先登录")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Token 格式错误，请使用 Bearer Token")
			return
		}

		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "Token 已过期或无效，请重新登录")
			return
		}
		if claims.Subject != jwt.SubjectAccess {
			abortUnauthorized(c, "请使用 Access Token 访问此接口")
			return
		}
		if claims.UserID <= 0 {
			abortUnauthorized(c, "Token 缺少用户信息")
			return
		}

		ok, err := validator.ValidateTokenID(c.Request.Context(), claims.UserID, claims.TokenID)
		if err != nil {
			zap.L().Error("validate token id error", zap.Int64("user_id", claims.UserID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusOK, gin.H{
				"code": errorx.ErrServerBusy.Code,
				"msg":  errorx.ErrServerBusy.Msg,
				"data": nil,
			})
			return
		}
		if !ok {
			abortUnauthorized(c, "您的账号已在其他设备登录，请重新登录")
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code": errorx.CodeUnauthorized,
		"msg":  msg,
	})
}
