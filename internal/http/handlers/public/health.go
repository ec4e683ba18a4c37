package public

import (
	"context"
	"time"

	"github.com/sportshop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 3 * time.Second

// Health 存储与缓存连通性检查
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := gin.H{"store": "ok", "cache": "disabled"}
	if err := h.Store.Ping(ctx); err != nil {
		respondError(c, response.CodeUnavailable, "error.service_unavailable", err)
		return
	}
	if h.Cache.Enabled() {
		status["cache"] = "ok"
		if err := h.Cache.Ping(ctx); err != nil {
			status["cache"] = "down"
		}
	}
	response.Success(c, status)
}
