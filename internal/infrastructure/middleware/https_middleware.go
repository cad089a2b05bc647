// Package middleware 提供 gin 中间件：认证、请求ID、HTTPS 重定向
package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// TlsHandler 将非 HTTPS 请求重定向到 HTTPS
// 直连 TLS 或前置代理带 X-Forwarded-Proto: https 的请求直接放行
func TlsHandler(host string, port int) gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		SSLRedirect:     true,
		SSLHost:         host + ":" + strconv.Itoa(port),
		SSLProxyHeaders: map[string]string{"X-Forwarded-Proto": "https"},
	})

	return func(c *gin.Context) {
		// 重定向时 Process 已写出响应并返回错误
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			zap.L().Warn("TLS redirection", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.Abort()
			return
		}
		c.Next()
	}
}
