package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sportshop-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口，整车读写，后写覆盖
type CartRepository interface {
	GetByUser(ctx context.Context, userID uint) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	DeleteByUser(ctx context.Context, userID uint) error
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetByUser 获取用户购物车及其条目，不存在返回 nil
func (r *GormCartRepository) GetByUser(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Save 持久化整个购物车：新建车头、删除已移除条目、写入新增或变更条目
func (r *GormCartRepository) Save(ctx context.Context, cart *models.Cart) error {
	if cart == nil {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if cart.ID == 0 {
			if err := tx.Omit(clause.Associations).Create(cart).Error; err != nil {
				return err
			}
		} else if err := tx.Model(&models.Cart{}).Where("id = ?", cart.ID).Update("updated_at", now).Error; err != nil {
			return err
		}

		keep := make([]uint, 0, len(cart.Items))
		for _, item := range cart.Items {
			if item.ID != 0 {
				keep = append(keep, item.ID)
			}
		}
		stale := tx.Where("cart_id = ?", cart.ID)
		if len(keep) > 0 {
			stale = stale.Where("id NOT IN ?", keep)
		}
		if err := stale.Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		for i := range cart.Items {
			item := &cart.Items[i]
			item.CartID = cart.ID
			if item.ID == 0 {
				if err := tx.Omit(clause.Associations).Create(item).Error; err != nil {
					return err
				}
				continue
			}
			item.UpdatedAt = now
			if err := tx.Model(&models.CartItem{}).
				Where("id = ? AND cart_id = ?", item.ID, cart.ID).
				Updates(map[string]interface{}{"quantity": item.Quantity, "updated_at": now}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteByUser 删除用户购物车（车头与条目），不存在时静默成功
func (r *GormCartRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cartIDs []uint
		if err := tx.Model(&models.Cart{}).Where("user_id = ?", userID).Pluck("id", &cartIDs).Error; err != nil {
			return err
		}
		if len(cartIDs) == 0 {
			return nil
		}
		if err := tx.Where("cart_id IN ?", cartIDs).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", cartIDs).Delete(&models.Cart{}).Error
	})
}
