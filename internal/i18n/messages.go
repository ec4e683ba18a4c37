package i18n

var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":              "Invalid request parameters",
		"error.unauthorized":             "Not authorized",
		"error.forbidden":                "Permission denied",
		"error.not_found":                "Resource not found",
		"error.too_many_requests":        "Too many requests, please try again later",
		"error.internal":                 "Internal server error",
		"error.auth_header_missing":      "Not authorized, no token",
		"error.auth_header_invalid":      "Not authorized, malformed token",
		"error.token_invalid":            "Not authorized, token failed",
		"error.token_expired":            "Not authorized, token expired",
		"error.token_revoked":            "Not authorized, token revoked",
		"error.user_not_found":           "Not authorized, user not found",
		"error.user_disabled":            "Not authorized, account disabled",
		"error.admin_required":           "Not authorized as an admin",
		"error.order_forbidden":          "Not authorized to access this order",
		"error.product_id_required":      "Product ID is required",
		"error.product_id_invalid":       "Invalid product ID",
		"error.product_invalid":          "Invalid product",
		"error.product_fields_missing":   "Product name and category are required",
		"error.product_not_found":        "Product not found",
		"error.order_product_missing":    "Product %d not found",
		"error.price_invalid":            "Price must not be negative",
		"error.quantity_invalid":         "Quantity must be at least 1",
		"error.cart_not_found":           "Cart not found",
		"error.cart_item_not_found":      "Item not found in cart",
		"error.cart_item_id_invalid":     "Invalid cart item ID",
		"error.order_items_empty":        "No order items",
		"error.order_not_found":          "Order not found",
		"error.order_id_invalid":         "Invalid order ID",
		"error.export_failed":            "Export failed",
		"error.service_unavailable":      "Service unavailable",
		"error.rate_limited":             "Too many requests, please retry in %d seconds",
		"error.rate_limit_unavailable":   "Rate limiter unavailable, please try again later",
		"success.cart_cleared":           "Cart cleared",
		"success.product_deleted":        "Product removed",
		"success.product_already_exists": "Product already exists",
	},
	LocaleZhCN: {
		"error.bad_request":              "请求参数错误",
		"error.unauthorized":             "未登录或登录已失效",
		"error.forbidden":                "无权限访问",
		"error.not_found":                "资源不存在",
		"error.too_many_requests":        "请求过于频繁，请稍后再试",
		"error.internal":                 "服务器内部错误",
		"error.auth_header_missing":      "未提供登录凭证",
		"error.auth_header_invalid":      "登录凭证格式错误",
		"error.token_invalid":            "登录凭证无效",
		"error.token_expired":            "登录已过期",
		"error.token_revoked":            "登录凭证已失效",
		"error.user_not_found":           "用户不存在",
		"error.user_disabled":            "账号已被禁用",
		"error.admin_required":           "需要管理员权限",
		"error.order_forbidden":          "无权访问该订单",
		"error.product_id_required":      "缺少商品ID",
		"error.product_id_invalid":       "商品ID无效",
		"error.product_invalid":          "商品无效",
		"error.product_fields_missing":   "商品名称和分类不能为空",
		"error.product_not_found":        "商品不存在",
		"error.order_product_missing":    "商品 %d 不存在",
		"error.price_invalid":            "价格不能为负数",
		"error.quantity_invalid":         "数量至少为 1",
		"error.cart_not_found":           "购物车不存在",
		"error.cart_item_not_found":      "购物车中没有该商品",
		"error.cart_item_id_invalid":     "购物车条目ID无效",
		"error.order_items_empty":        "订单明细为空",
		"error.order_not_found":          "订单不存在",
		"error.order_id_invalid":         "订单ID无效",
		"error.export_failed":            "导出失败",
		"error.service_unavailable":      "服务不可用",
		"error.rate_limited":             "请求过于频繁，请在 %d 秒后重试",
		"error.rate_limit_unavailable":   "限流服务不可用，请稍后再试",
		"success.cart_cleared":           "购物车已清空",
		"success.product_deleted":        "商品已删除",
		"success.product_already_exists": "商品已存在",
	},
}
