package router

import (
	"github.com/sportshop-next/internal/config"
	adminhandlers "github.com/sportshop-next/internal/http/handlers/admin"
	publichandlers "github.com/sportshop-next/internal/http/handlers/public"
	"github.com/sportshop-next/internal/logger"
	"github.com/sportshop-next/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	// 请求体出现未声明字段时直接 400
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisClient := c.Cache.Client()
	writeRule := RateLimitRule{}
	if cfg.RateLimit.Enabled {
		writeRule = RateLimitRule{
			Prefix:        c.Cache.Key("rate:write"),
			WindowSeconds: cfg.RateLimit.WindowSeconds,
			MaxRequests:   cfg.RateLimit.MaxRequests,
		}
	}
	writeLimit := RateLimitMiddleware(redisClient, writeRule, KeyByUser)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(logger.L()))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", publicHandler.Health)

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/health", publicHandler.Health)

		// 公开接口
		apiV1.GET("/products", publicHandler.ListProducts)
		apiV1.GET("/products/:id", publicHandler.GetProduct)

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(AuthMiddleware(c.AuthService))
		{
			user.POST("/products", writeLimit, publicHandler.CreateProduct)

			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart", publicHandler.AddCartItem)
			user.PUT("/cart/:id", publicHandler.UpdateCartItem)
			user.DELETE("/cart/item/:id", publicHandler.RemoveCartItem)
			user.DELETE("/cart", publicHandler.ClearCart)

			user.POST("/orders", writeLimit, publicHandler.CreateOrder)
			user.POST("/orders/checkout", writeLimit, publicHandler.Checkout)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
			user.PUT("/orders/:id/pay", publicHandler.MarkOrderPaid)

			user.GET("/users/me", publicHandler.GetProfile)
			user.GET("/users/me/purchases", publicHandler.ListPurchases)
		}

		// 管理员接口
		authorized := apiV1.Group("")
		authorized.Use(AuthMiddleware(c.AuthService), RequireAdmin())
		{
			// 商品管理
			authorized.PUT("/products/:id", publicHandler.UpdateProduct)
			authorized.DELETE("/products/:id", publicHandler.DeleteProduct)

			// 订单管理
			authorized.PUT("/orders/:id/deliver", publicHandler.MarkOrderDelivered)

			// 导出
			authorized.GET("/admin/products/export", adminHandler.ExportProducts)
			authorized.GET("/admin/orders/export", adminHandler.ExportOrders)
		}
	}

	return r
}
