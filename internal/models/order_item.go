package models

import "time"

// OrderItem 订单项，名称/单价/图片为下单时的快照
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                               // 主键
	OrderID   uint      `gorm:"index;not null" json:"order_id"`                     // 订单ID
	ProductID uint      `gorm:"index;not null" json:"product_id"`                   // 商品ID
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`             // 商品名称快照
	Price     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价快照
	Quantity  int       `gorm:"not null" json:"quantity"`                           // 数量
	Image     string    `gorm:"type:varchar(500)" json:"image"`                     // 图片快照
	CreatedAt time.Time `json:"created_at"`                                         // 创建时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 当前商品（展示用，可能已变更）
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// Subtotal 行小计
func (i OrderItem) Subtotal() Money {
	return i.Price.MulInt(i.Quantity)
}
