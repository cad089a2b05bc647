package handler

import (
	"context"
	"net/http"
	"time"

	"friend_profile_server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	checkers []service.HealthChecker
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(checkers []service.HealthChecker) *HealthHandler {
	return &HealthHandler{checkers: checkers}
}

// Healthz 依次检查依赖，任一失败返回 503
// GET /healthz
func (h *HealthHandler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	for _, checker := range h.checkers {
		if err := checker.Ping(ctx); err != nil {
			zap.L().Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
