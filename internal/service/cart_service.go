package service

import (
	"context"
	"fmt"

	"github.com/sportshop-next/internal/constants"
	"github.com/sportshop-next/internal/logger"
	"github.com/sportshop-next/internal/models"
	"github.com/sportshop-next/internal/repository"
)

// CartItemView 购物车项展示结构（已解析商品信息）
type CartItemView struct {
	ID        uint         `json:"id"`
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`
	Brand     string       `json:"brand"`
	Category  string       `json:"category"`
	Image     string       `json:"image"`
	Price     models.Money `json:"price"`
	Quantity  int          `json:"quantity"`
	Subtotal  models.Money `json:"subtotal"`
}

// CartView 购物车展示结构，无购物车时 Items 为空数组
type CartView struct {
	ID            uint           `json:"id,omitempty"`
	UserID        uint           `json:"user_id"`
	Items         []CartItemView `json:"items"`
	TotalQuantity int            `json:"total_quantity"`
	Subtotal      models.Money   `json:"subtotal"`
}

// AddCartItemInput 加购输入
type AddCartItemInput struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// CartService 购物车服务
type CartService struct {
	store  repository.Store
	bounds QuantityBounds
}

// NewCartService 创建购物车服务
func NewCartService(store repository.Store, bounds QuantityBounds) *CartService {
	if bounds.Min < 1 {
		bounds.Min = constants.CartMinQuantity
	}
	if bounds.Max < bounds.Min {
		bounds.Max = constants.CartMaxQuantity
	}
	return &CartService{store: store, bounds: bounds}
}

// Bounds 当前数量区间
func (s *CartService) Bounds() QuantityBounds {
	return s.bounds
}

// GetCart 获取购物车，不存在时返回空购物车
func (s *CartService) GetCart(ctx context.Context, userID uint) (*CartView, error) {
	cart, err := s.store.Carts().GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return s.view(ctx, userID, cart)
}

// AddItem 加购，已存在的商品合并数量，结果截断到上限
func (s *CartService) AddItem(ctx context.Context, input AddCartItemInput) (*CartView, error) {
	if input.ProductID == 0 {
		return nil, ErrProductIDRequired
	}
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.store.Products().GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, ErrProductInvalid
	}

	cart, err := s.store.Carts().GetByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if cart == nil {
		cart = &models.Cart{UserID: input.UserID}
	}

	requested := s.bounds.Clamp(input.Quantity)
	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == input.ProductID {
			cart.Items[i].Quantity = s.bounds.Clamp(cart.Items[i].Quantity + requested)
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{ProductID: input.ProductID, Quantity: requested})
	}

	if err := s.store.Carts().Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return s.view(ctx, input.UserID, cart)
}

// UpdateItem 修改条目数量，请求值截断到区间内
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID uint, requested int) (*CartView, error) {
	cart, err := s.store.Carts().GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCartItemNotFound
	}
	cart.Items[idx].Quantity = s.bounds.Clamp(requested)

	if err := s.store.Carts().Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return s.view(ctx, userID, cart)
}

// RemoveItem 删除条目，条目不存在时不报错
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) (*CartView, error) {
	cart, err := s.store.Carts().GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(cart.Items) {
		return s.view(ctx, userID, cart)
	}
	cart.Items = kept
	if err := s.store.Carts().Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return s.view(ctx, userID, cart)
}

// ClearCart 删除整个购物车，可重复调用
func (s *CartService) ClearCart(ctx context.Context, userID uint) error {
	if err := s.store.Carts().DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *CartService) view(ctx context.Context, userID uint, cart *models.Cart) (*CartView, error) {
	view := &CartView{UserID: userID, Items: []CartItemView{}}
	if cart == nil || len(cart.Items) == 0 {
		if cart != nil {
			view.ID = cart.ID
		}
		return view, nil
	}
	view.ID = cart.ID

	ids := make([]uint, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.store.Products().ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve cart products: %w", err)
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, item := range cart.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			logger.Debugw("cart_item_product_missing", "user_id", userID, "product_id", item.ProductID)
			continue
		}
		subtotal := product.Price.MulInt(item.Quantity)
		view.Items = append(view.Items, CartItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      product.Name,
			Brand:     product.Brand,
			Category:  product.Category,
			Image:     product.Image,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Subtotal:  subtotal,
		})
		view.TotalQuantity += item.Quantity
		view.Subtotal = view.Subtotal.Add(subtotal)
	}
	return view, nil
}
