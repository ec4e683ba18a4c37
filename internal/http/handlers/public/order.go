package public

import (
	handlershared "github.com/sportshop-next/internal/http/handlers/shared"
	"github.com/sportshop-next/internal/http/response"
	"github.com/sportshop-next/internal/models"
	"github.com/sportshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderItemRequest 下单明细，名称与价格由服务端按商品冻结
type OrderItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// ShippingAddressRequest 收货地址
type ShippingAddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	OrderItems      []OrderItemRequest     `json:"order_items"`
	ShippingAddress ShippingAddressRequest `json:"shipping_address"`
	PaymentMethod   string                 `json:"payment_method"`
	TaxPrice        models.Money           `json:"tax_price"`
	ShippingPrice   models.Money           `json:"shipping_price"`
}

// CheckoutRequest 购物车结算请求
type CheckoutRequest struct {
	ShippingAddress ShippingAddressRequest `json:"shipping_address"`
	PaymentMethod   string                 `json:"payment_method"`
	TaxPrice        models.Money           `json:"tax_price"`
	ShippingPrice   models.Money           `json:"shipping_price"`
}

// PaymentResultRequest 支付回执
type PaymentResultRequest struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

func (r ShippingAddressRequest) toModel() models.ShippingAddress {
	return models.ShippingAddress{
		Street:  r.Street,
		City:    r.City,
		State:   r.State,
		ZipCode: r.ZipCode,
		Country: r.Country,
	}
}

// CreateOrder 下单
func (h *Handler) CreateOrder(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	items := make([]service.OrderLineInput, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		items = append(items, service.OrderLineInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	order, err := h.OrderService.CreateOrder(c.Request.Context(), identity, service.CreateOrderInput{
		Items:           items,
		ShippingAddress: req.ShippingAddress.toModel(),
		PaymentMethod:   req.PaymentMethod,
		TaxPrice:        req.TaxPrice,
		ShippingPrice:   req.ShippingPrice,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, order)
}

// Checkout 以购物车内容下单并清空购物车
func (h *Handler) Checkout(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
	}
	order, err := h.OrderService.Checkout(c.Request.Context(), identity, service.CheckoutInput{
		ShippingAddress: req.ShippingAddress.toModel(),
		PaymentMethod:   req.PaymentMethod,
		TaxPrice:        req.TaxPrice,
		ShippingPrice:   req.ShippingPrice,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, order)
}

// ListOrders 订单列表，按创建时间倒序
func (h *Handler) ListOrders(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.ListOrders(c.Request.Context(), identity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, orders)
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseUintParam(c, "id", "error.order_id_invalid")
	if !ok {
		return
	}
	order, err := h.OrderService.GetOrder(c.Request.Context(), identity, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// MarkOrderPaid 标记订单已支付
func (h *Handler) MarkOrderPaid(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseUintParam(c, "id", "error.order_id_invalid")
	if !ok {
		return
	}
	var req PaymentResultRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
	}
	order, err := h.OrderService.MarkPaid(c.Request.Context(), identity, id, models.PaymentResult{
		ID:           req.ID,
		Status:       req.Status,
		UpdateTime:   req.UpdateTime,
		EmailAddress: req.EmailAddress,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// MarkOrderDelivered 管理员标记订单已送达
func (h *Handler) MarkOrderDelivered(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseUintParam(c, "id", "error.order_id_invalid")
	if !ok {
		return
	}
	order, err := h.OrderService.MarkDelivered(c.Request.Context(), identity, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, order)
}
