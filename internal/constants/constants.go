package constants

// 用户角色
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// 用户状态
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 购物车数量区间，超出即截断
const (
	CartMinQuantity = 1
	CartMaxQuantity = 10
)

// 默认支付方式（货到付款）
const DefaultPaymentMethod = "COD"

// 商品分页
const (
	ProductDefaultPageSize = 12
	ProductMaxPageSize     = 100
)

// 订单事件类型
const (
	OrderEventCreated   = "order.created"
	OrderEventPaid      = "order.paid"
	OrderEventDelivered = "order.delivered"
)

// 数据库驱动
const (
	DatabaseDriverSQLite   = "sqlite"
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverMongo    = "mongo"
)

// 异步任务
const (
	QueueDefault        = "default"
	TaskPurchaseSummary = "purchase:summary"
)
