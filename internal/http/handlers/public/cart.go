package public

import (
	handlershared "github.com/sportshop-next/internal/http/handlers/shared"
	"github.com/sportshop-next/internal/http/response"
	"github.com/sportshop-next/internal/i18n"
	"github.com/sportshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// UpdateCartItemRequest 修改数量请求，数量宽松解析
type UpdateCartItemRequest struct {
	Quantity service.RequestedQuantity `json:"quantity"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	cart, err := h.CartService.GetCart(c.Request.Context(), identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, cart)
}

// AddCartItem 加购
func (h *Handler) AddCartItem(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	cart, err := h.CartService.AddItem(c.Request.Context(), service.AddCartItemInput{
		UserID:    identity.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, cart)
}

// UpdateCartItem 修改购物车条目数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	itemID, ok := handlershared.ParseUintParam(c, "id", "error.cart_item_id_invalid")
	if !ok {
		return
	}
	req := UpdateCartItemRequest{Quantity: 1}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
	}
	cart, err := h.CartService.UpdateItem(c.Request.Context(), identity.UserID, itemID, int(req.Quantity))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, cart)
}

// RemoveCartItem 删除购物车条目
func (h *Handler) RemoveCartItem(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	itemID, ok := handlershared.ParseUintParam(c, "id", "error.cart_item_id_invalid")
	if !ok {
		return
	}
	cart, err := h.CartService.RemoveItem(c.Request.Context(), identity.UserID, itemID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, cart)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	if err := h.CartService.ClearCart(c.Request.Context(), identity.UserID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "success.cart_cleared"), nil)
}
