package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                                                  // 主键
	Name        string         `gorm:"type:varchar(255);not null;index:idx_product_name_category,priority:1" json:"name"`     // 名称
	Category    string         `gorm:"type:varchar(100);not null;index:idx_product_name_category,priority:2" json:"category"` // 分类
	Brand       string         `gorm:"type:varchar(100);not null;default:''" json:"brand"`                                    // 品牌
	Description string         `gorm:"type:text" json:"description"`                                                          // 描述
	Image       string         `gorm:"type:varchar(500)" json:"image"`                                                        // 图片地址
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`                                    // 单价
	Stock       *int           `json:"stock,omitempty"`                                                                       // 库存（仅展示，不参与下单校验）
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                                               // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`                                                               // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                                                        // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
