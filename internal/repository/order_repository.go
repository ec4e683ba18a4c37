package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sportshop-next/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	List(ctx context.Context, filter OrderListFilter) ([]models.Order, error)
	// MarkPaid 仅在未支付时写入，返回是否发生变更
	MarkPaid(ctx context.Context, id uint, paidAt time.Time, result models.PaymentResult) (bool, error)
	// MarkDelivered 仅在未送达时写入，返回是否发生变更
	MarkDelivered(ctx context.Context, id uint, deliveredAt time.Time) (bool, error)
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func withItems(query *gorm.DB) *gorm.DB {
	return query.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") })
}

// Create 创建订单与订单项
func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// GetByID 获取订单，不存在返回 nil
func (r *GormOrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := withItems(r.db.WithContext(ctx)).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// List 订单列表，固定按创建时间倒序
func (r *GormOrderRepository) List(ctx context.Context, filter OrderListFilter) ([]models.Order, error) {
	query := withItems(r.db.WithContext(ctx).Model(&models.Order{}))
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	var orders []models.Order
	if err := query.Order("created_at desc, id desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// MarkPaid 标记已支付
func (r *GormOrderRepository) MarkPaid(ctx context.Context, id uint, paidAt time.Time, result models.PaymentResult) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND is_paid = ?", id, false).
		Updates(map[string]interface{}{
			"is_paid":               true,
			"paid_at":               paidAt,
			"payment_id":            result.ID,
			"payment_status":        result.Status,
			"payment_update_time":   result.UpdateTime,
			"payment_email_address": result.EmailAddress,
			"updated_at":            paidAt,
		})
	return res.RowsAffected > 0, res.Error
}

// MarkDelivered 标记已送达
func (r *GormOrderRepository) MarkDelivered(ctx context.Context, id uint, deliveredAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND is_delivered = ?", id, false).
		Updates(map[string]interface{}{
			"is_delivered": true,
			"delivered_at": deliveredAt,
			"updated_at":   deliveredAt,
		})
	return res.RowsAffected > 0, res.Error
}
