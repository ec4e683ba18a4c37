package public

import (
	"github.com/sportshop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetProfile 当前用户信息
func (h *Handler) GetProfile(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	response.Success(c, identity)
}

// ListPurchases 当前用户购买摘要
func (h *Handler) ListPurchases(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	records, err := h.PurchaseService.ListByUser(c.Request.Context(), identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, records)
}
