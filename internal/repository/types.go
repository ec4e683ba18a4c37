package repository

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page     int
	PageSize int
	Category string
	Search   string
}

// OrderListFilter 查询订单列表的过滤条件，UserID 为 0 表示全部用户
type OrderListFilter struct {
	UserID uint
}
