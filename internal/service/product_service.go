package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sportshop-next/internal/constants"
	"github.com/sportshop-next/internal/logger"
	"github.com/sportshop-next/internal/models"
	"github.com/sportshop-next/internal/repository"
)

// ProductListInput 商品列表查询
type ProductListInput struct {
	Page     int
	Limit    int
	Search   string
	Category string
}

// ProductPage 商品分页结果
type ProductPage struct {
	Products []models.Product `json:"products"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
	Total    int64            `json:"total"`
	Pages    int              `json:"pages"`
}

// CreateProductInput 查找或创建商品的输入
type CreateProductInput struct {
	Name        string
	Category    string
	Brand       string
	Description string
	Image       string
	Price       models.Money
	Stock       *int
}

// UpdateProductInput 商品部分更新，nil 字段保持不变
type UpdateProductInput struct {
	Name        *string
	Category    *string
	Brand       *string
	Description *string
	Image       *string
	Price       *models.Money
	Stock       *int
}

// ProductService 商品服务
type ProductService struct {
	products repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// List 分页列出商品
func (s *ProductService) List(ctx context.Context, input ProductListInput) (*ProductPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = constants.ProductDefaultPageSize
	}
	if limit > constants.ProductMaxPageSize {
		limit = constants.ProductMaxPageSize
	}

	products, total, err := s.products.List(ctx, repository.ProductListFilter{
		Page:     page,
		PageSize: limit,
		Search:   input.Search,
		Category: input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return &ProductPage{
		Products: products,
		Page:     page,
		Limit:    limit,
		Total:    total,
		Pages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// Get 获取商品详情
func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// FindOrCreate 按 (名称, 分类) 查找商品，不存在时创建；查询与写入之间不加锁，
// 并发的相同请求可能产生重复记录
func (s *ProductService) FindOrCreate(ctx context.Context, input CreateProductInput) (*models.Product, bool, error) {
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	if name == "" || category == "" {
		return nil, false, ErrProductFieldsMissing
	}
	if input.Price.IsNegative() {
		return nil, false, ErrInvalidPrice
	}

	existing, err := s.products.FindByNameAndCategory(ctx, name, category)
	if err != nil {
		return nil, false, fmt.Errorf("lookup product: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	product := &models.Product{
		Name:        name,
		Category:    category,
		Brand:       strings.TrimSpace(input.Brand),
		Description: input.Description,
		Image:       strings.TrimSpace(input.Image),
		Price:       input.Price,
		Stock:       input.Stock,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, false, fmt.Errorf("create product: %w", err)
	}
	logger.Infow("product_created", "product_id", product.ID, "name", product.Name, "category", product.Category)
	return product, true, nil
}

// Update 管理员更新商品
func (s *ProductService) Update(ctx context.Context, caller Identity, id uint, input UpdateProductInput) (*models.Product, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminRequired
	}
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		if v := strings.TrimSpace(*input.Name); v != "" {
			product.Name = v
		}
	}
	if input.Category != nil {
		if v := strings.TrimSpace(*input.Category); v != "" {
			product.Category = v
		}
	}
	if input.Brand != nil {
		product.Brand = strings.TrimSpace(*input.Brand)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Image != nil {
		product.Image = strings.TrimSpace(*input.Image)
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, ErrInvalidPrice
		}
		product.Price = *input.Price
	}
	if input.Stock != nil {
		stock := *input.Stock
		product.Stock = &stock
	}
	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

// Delete 管理员删除商品（软删除，已下单的订单快照不受影响）
func (s *ProductService) Delete(ctx context.Context, caller Identity, id uint) error {
	if !caller.IsAdmin() {
		return ErrAdminRequired
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	logger.Infow("product_deleted", "product_id", id, "admin_id", caller.UserID)
	return nil
}
