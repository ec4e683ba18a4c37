package models

import "time"

// ShippingAddress 收货地址
type ShippingAddress struct {
	Street  string `gorm:"type:varchar(255)" json:"street"`  // 街道
	City    string `gorm:"type:varchar(100)" json:"city"`    // 城市
	State   string `gorm:"type:varchar(100)" json:"state"`   // 省/州
	ZipCode string `gorm:"type:varchar(20)" json:"zip_code"` // 邮编
	Country string `gorm:"type:varchar(100)" json:"country"` // 国家
}

// PaymentResult 支付回执
type PaymentResult struct {
	ID           string `gorm:"type:varchar(128)" json:"id"`            // 外部支付单号
	Status       string `gorm:"type:varchar(64)" json:"status"`         // 支付状态
	UpdateTime   string `gorm:"type:varchar(64)" json:"update_time"`    // 回执时间
	EmailAddress string `gorm:"type:varchar(255)" json:"email_address"` // 付款人邮箱
}

// Order 订单表，创建后金额与明细不可变
type Order struct {
	ID              uint            `gorm:"primarykey" json:"id"`                                        // 主键
	UserID          uint            `gorm:"index;not null" json:"user_id"`                               // 用户ID
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`   // 收货地址
	PaymentMethod   string          `gorm:"type:varchar(32);not null" json:"payment_method"`             // 支付方式
	PaymentResult   PaymentResult   `gorm:"embedded;embeddedPrefix:payment_" json:"payment_result"`      // 支付回执
	ItemsPrice      Money           `gorm:"type:decimal(20,2);not null;default:0" json:"items_price"`    // 商品小计
	TaxPrice        Money           `gorm:"type:decimal(20,2);not null;default:0" json:"tax_price"`      // 税费
	ShippingPrice   Money           `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_price"` // 运费
	TotalPrice      Money           `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`    // 总价
	TotalQuantity   int             `gorm:"not null;default:0" json:"total_quantity"`                    // 总件数
	IsPaid          bool            `gorm:"not null;default:false" json:"is_paid"`                       // 是否已支付
	PaidAt          *time.Time      `json:"paid_at"`                                                     // 支付时间
	IsDelivered     bool            `gorm:"not null;default:false" json:"is_delivered"`                  // 是否已送达
	DeliveredAt     *time.Time      `json:"delivered_at"`                                                // 送达时间
	CreatedAt       time.Time       `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt       time.Time       `json:"updated_at"`                                                  // 更新时间

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
