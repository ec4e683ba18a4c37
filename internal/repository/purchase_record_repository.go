package repository

import (
	"context"

	"github.com/sportshop-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PurchaseRecordRepository 购买摘要数据访问接口
type PurchaseRecordRepository interface {
	// Create 写入摘要，同一订单重复写入时忽略
	Create(ctx context.Context, record *models.PurchaseRecord) error
	ListByUser(ctx context.Context, userID uint) ([]models.PurchaseRecord, error)
}

// GormPurchaseRecordRepository GORM 实现
type GormPurchaseRecordRepository struct {
	db *gorm.DB
}

// NewPurchaseRecordRepository 创建购买摘要仓库
func NewPurchaseRecordRepository(db *gorm.DB) *GormPurchaseRecordRepository {
	return &GormPurchaseRecordRepository{db: db}
}

// Create 写入购买摘要
func (r *GormPurchaseRecordRepository) Create(ctx context.Context, record *models.PurchaseRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "order_id"}}, DoNothing: true}).
		Create(record).Error
}

// ListByUser 用户购买摘要，按时间倒序
func (r *GormPurchaseRecordRepository) ListByUser(ctx context.Context, userID uint) ([]models.PurchaseRecord, error) {
	var records []models.PurchaseRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
