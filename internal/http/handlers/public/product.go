package public

import (
	"strings"

	handlershared "github.com/sportshop-next/internal/http/handlers/shared"
	"github.com/sportshop-next/internal/http/response"
	"github.com/sportshop-next/internal/models"
	"github.com/sportshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateProductRequest 按名称与分类查找或创建商品
type CreateProductRequest struct {
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Brand       string       `json:"brand"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Price       models.Money `json:"price"`
	Stock       *int         `json:"stock"`
}

// UpdateProductRequest 管理员更新商品，未提供的字段保持不变
type UpdateProductRequest struct {
	Name        *string       `json:"name"`
	Category    *string       `json:"category"`
	Brand       *string       `json:"brand"`
	Description *string       `json:"description"`
	Image       *string       `json:"image"`
	Price       *models.Money `json:"price"`
	Stock       *int          `json:"stock"`
}

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	page, limit := handlershared.ParsePagination(c)
	result, err := h.ProductService.List(c.Request.Context(), service.ProductListInput{
		Page:     page,
		Limit:    limit,
		Search:   strings.TrimSpace(c.Query("search")),
		Category: strings.TrimSpace(c.Query("category")),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, result)
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}
	product, err := h.ProductService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// CreateProduct 查找或创建商品，已存在返回 200，新建返回 201
func (h *Handler) CreateProduct(c *gin.Context) {
	if _, ok := getIdentity(c); !ok {
		return
	}
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	product, created, err := h.ProductService.FindOrCreate(c.Request.Context(), service.CreateProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Brand:       req.Brand,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if created {
		response.Created(c, product)
		return
	}
	response.Success(c, product)
}

// UpdateProduct 管理员更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseUintParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	product, err := h.ProductService.Update(c.Request.Context(), identity, id, service.UpdateProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Brand:       req.Brand,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct 管理员删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseUintParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(c.Request.Context(), identity, id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}
