package models

import "time"

// PurchaseRecord 用户购买摘要，异步写入，仅用于展示
type PurchaseRecord struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                      // 主键
	UserID      uint      `gorm:"index;not null" json:"user_id"`                             // 用户ID
	OrderID     uint      `gorm:"uniqueIndex;not null" json:"order_id"`                      // 订单ID
	Products    string    `gorm:"type:text;not null" json:"products"`                        // 商品名称拼接
	TotalAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 订单总额
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                   // 记录时间
}

// TableName 指定表名
func (PurchaseRecord) TableName() string {
	return "purchase_records"
}
