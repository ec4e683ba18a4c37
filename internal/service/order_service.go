package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sportshop-next/internal/constants"
	"github.com/sportshop-next/internal/events"
	"github.com/sportshop-next/internal/logger"
	"github.com/sportshop-next/internal/models"
	"github.com/sportshop-next/internal/repository"
)

// OrderLineInput 下单明细，名称与单价以下单时的商品数据为准
type OrderLineInput struct {
	ProductID uint
	Quantity  int
}

// CreateOrderInput 下单输入
type CreateOrderInput struct {
	Items           []OrderLineInput
	ShippingAddress models.ShippingAddress
	PaymentMethod   string
	TaxPrice        models.Money
	ShippingPrice   models.Money
}

// CheckoutInput 购物车结算输入，明细取自当前购物车
type CheckoutInput struct {
	ShippingAddress models.ShippingAddress
	PaymentMethod   string
	TaxPrice        models.Money
	ShippingPrice   models.Money
}

// PurchaseSummaryDispatcher 下单后写入购买摘要，可异步
type PurchaseSummaryDispatcher interface {
	DispatchPurchaseSummary(ctx context.Context, orderID, userID uint) error
}

// OrderService 订单服务
type OrderService struct {
	store                repository.Store
	publisher            events.Publisher
	summaries            PurchaseSummaryDispatcher
	defaultPaymentMethod string
	now                  func() time.Time
}

// NewOrderService 创建订单服务
func NewOrderService(store repository.Store, publisher events.Publisher, summaries PurchaseSummaryDispatcher, defaultPaymentMethod string) *OrderService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if strings.TrimSpace(defaultPaymentMethod) == "" {
		defaultPaymentMethod = constants.DefaultPaymentMethod
	}
	return &OrderService{
		store:                store,
		publisher:            publisher,
		summaries:            summaries,
		defaultPaymentMethod: defaultPaymentMethod,
		now:                  time.Now,
	}
}

// CreateOrder 按明细创建订单快照；不校验也不扣减库存
func (s *OrderService) CreateOrder(ctx context.Context, caller Identity, input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrOrderItemsEmpty
	}
	for _, line := range input.Items {
		if line.ProductID == 0 {
			return nil, ErrProductIDRequired
		}
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}
	if input.TaxPrice.IsNegative() || input.ShippingPrice.IsNegative() {
		return nil, ErrInvalidPrice
	}

	order, products, err := s.buildOrder(ctx, s.store, caller.UserID, input.Items, input.ShippingAddress, input.PaymentMethod, input.TaxPrice, input.ShippingPrice)
	if err != nil {
		return nil, err
	}
	if err := s.store.Orders().Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	s.afterCreate(ctx, order)
	attachProducts(order, products)
	return order, nil
}

// Checkout 在同一事务内读取购物车、生成订单并删除购物车
func (s *OrderService) Checkout(ctx context.Context, caller Identity, input CheckoutInput) (*models.Order, error) {
	if input.TaxPrice.IsNegative() || input.ShippingPrice.IsNegative() {
		return nil, ErrInvalidPrice
	}
	var (
		order    *models.Order
		products map[uint]models.Product
	)
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		cart, err := tx.Carts().GetByUser(ctx, caller.UserID)
		if err != nil {
			return fmt.Errorf("load cart: %w", err)
		}
		if cart == nil || len(cart.Items) == 0 {
			return ErrOrderItemsEmpty
		}
		lines := make([]OrderLineInput, 0, len(cart.Items))
		for _, item := range cart.Items {
			lines = append(lines, OrderLineInput{ProductID: item.ProductID, Quantity: item.Quantity})
		}
		order, products, err = s.buildOrder(ctx, tx, caller.UserID, lines, input.ShippingAddress, input.PaymentMethod, input.TaxPrice, input.ShippingPrice)
		if err != nil {
			return err
		}
		if err := tx.Orders().Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err := tx.Carts().DeleteByUser(ctx, caller.UserID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.afterCreate(ctx, order)
	attachProducts(order, products)
	return order, nil
}

// ListOrders 普通用户仅见本人订单，管理员可见全部；按创建时间倒序
func (s *OrderService) ListOrders(ctx context.Context, caller Identity) ([]models.Order, error) {
	filter := repository.OrderListFilter{UserID: caller.UserID}
	if caller.IsAdmin() {
		filter.UserID = 0
	}
	orders, err := s.store.Orders().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	if err := s.resolveProducts(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder 获取订单，仅本人或管理员可见
func (s *OrderService) GetOrder(ctx context.Context, caller Identity, orderID uint) (*models.Order, error) {
	order, err := s.loadAccessible(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}
	return s.reloadWithProducts(ctx, order)
}

// MarkPaid 标记已支付；重复调用保持首次支付时间
func (s *OrderService) MarkPaid(ctx context.Context, caller Identity, orderID uint, result models.PaymentResult) (*models.Order, error) {
	order, err := s.loadAccessible(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsPaid {
		return s.reloadWithProducts(ctx, order)
	}
	changed, err := s.store.Orders().MarkPaid(ctx, orderID, s.now(), result)
	if err != nil {
		return nil, fmt.Errorf("mark order paid: %w", err)
	}
	order, err = s.reload(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if changed {
		s.publish(ctx, constants.OrderEventPaid, order)
	}
	return s.reloadWithProducts(ctx, order)
}

// MarkDelivered 管理员标记已送达；重复调用保持首次送达时间
func (s *OrderService) MarkDelivered(ctx context.Context, caller Identity, orderID uint) (*models.Order, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminRequired
	}
	order, err := s.reload(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsDelivered {
		return s.reloadWithProducts(ctx, order)
	}
	changed, err := s.store.Orders().MarkDelivered(ctx, orderID, s.now())
	if err != nil {
		return nil, fmt.Errorf("mark order delivered: %w", err)
	}
	order, err = s.reload(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if changed {
		s.publish(ctx, constants.OrderEventDelivered, order)
	}
	return s.reloadWithProducts(ctx, order)
}

// buildOrder 解析商品并冻结名称、单价与图片，计算合计
func (s *OrderService) buildOrder(
	ctx context.Context,
	store repository.Store,
	userID uint,
	lines []OrderLineInput,
	address models.ShippingAddress,
	paymentMethod string,
	taxPrice, shippingPrice models.Money,
) (*models.Order, map[uint]models.Product, error) {
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	found, err := store.Products().ListByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve order products: %w", err)
	}
	products := make(map[uint]models.Product, len(found))
	for _, p := range found {
		products[p.ID] = p
	}

	order := &models.Order{
		UserID:          userID,
		ShippingAddress: normalizeAddress(address),
		PaymentMethod:   strings.TrimSpace(paymentMethod),
		TaxPrice:        taxPrice,
		ShippingPrice:   shippingPrice,
		Items:           make([]models.OrderItem, 0, len(lines)),
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = s.defaultPaymentMethod
	}
	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, nil, &MissingProductError{ProductID: line.ProductID}
		}
		item := models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
			Image:     product.Image,
		}
		order.Items = append(order.Items, item)
		order.ItemsPrice = order.ItemsPrice.Add(item.Subtotal())
		order.TotalQuantity += item.Quantity
	}
	order.TotalPrice = order.ItemsPrice.Add(taxPrice).Add(shippingPrice)
	return order, products, nil
}

func (s *OrderService) afterCreate(ctx context.Context, order *models.Order) {
	logger.Infow("order_created",
		"order_id", order.ID,
		"user_id", order.UserID,
		"total_price", order.TotalPrice.String(),
		"total_quantity", order.TotalQuantity,
	)
	s.publish(ctx, constants.OrderEventCreated, order)
	if s.summaries == nil {
		return
	}
	if err := s.summaries.DispatchPurchaseSummary(ctx, order.ID, order.UserID); err != nil {
		logger.Warnw("purchase_summary_dispatch_failed", "order_id", order.ID, "error", err)
	}
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *models.Order) {
	if err := s.publisher.PublishOrderEvent(ctx, events.NewOrderEvent(eventType, order)); err != nil {
		logger.Warnw("order_event_publish_failed", "type", eventType, "order_id", order.ID, "error", err)
	}
}

func (s *OrderService) loadAccessible(ctx context.Context, caller Identity, orderID uint) (*models.Order, error) {
	order, err := s.reload(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(order.UserID) {
		return nil, ErrNotOrderOwner
	}
	return order, nil
}

func (s *OrderService) reload(ctx context.Context, orderID uint) (*models.Order, error) {
	order, err := s.store.Orders().GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) reloadWithProducts(ctx context.Context, order *models.Order) (*models.Order, error) {
	orders := []models.Order{*order}
	if err := s.resolveProducts(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// resolveProducts 为明细挂上当前商品用于展示，已删除的商品保持为空
func (s *OrderService) resolveProducts(ctx context.Context, orders []models.Order) error {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0)
	for _, order := range orders {
		for _, item := range order.Items {
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	found, err := s.store.Products().ListByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve order products: %w", err)
	}
	products := make(map[uint]models.Product, len(found))
	for _, p := range found {
		products[p.ID] = p
	}
	for i := range orders {
		attachProducts(&orders[i], products)
	}
	return nil
}

func attachProducts(order *models.Order, products map[uint]models.Product) {
	for i := range order.Items {
		if p, ok := products[order.Items[i].ProductID]; ok {
			product := p
			order.Items[i].Product = &product
		}
	}
}

func normalizeAddress(a models.ShippingAddress) models.ShippingAddress {
	return models.ShippingAddress{
		Street:  strings.TrimSpace(a.Street),
		City:    strings.TrimSpace(a.City),
		State:   strings.TrimSpace(a.State),
		ZipCode: strings.TrimSpace(a.ZipCode),
		Country: strings.TrimSpace(a.Country),
	}
}
