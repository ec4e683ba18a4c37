package provider

import (
	"context"

	"github.com/sportshop-next/internal/cache"
	"github.com/sportshop-next/internal/config"
	"github.com/sportshop-next/internal/events"
	"github.com/sportshop-next/internal/logger"
	"github.com/sportshop-next/internal/queue"
	"github.com/sportshop-next/internal/repository"
	"github.com/sportshop-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	Store       repository.Store
	Cache       *cache.Cache
	Publisher   events.Publisher
	QueueClient *queue.Client

	// Services
	AuthService     *service.AuthService
	ProductService  *service.ProductService
	CartService     *service.CartService
	OrderService    *service.OrderService
	PurchaseService *service.PurchaseService
	ExportService   *service.ExportService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config, store repository.Store) *Container {
	// 初始化缓存
	redisCache := cache.New(&cfg.Redis)
	if redisCache.Enabled() {
		if err := redisCache.Ping(context.Background()); err != nil {
			logger.Warnw("provider_init_redis_failed", "error", err)
		}
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		Store:       store,
		Cache:       redisCache,
		Publisher:   events.New(cfg.Kafka),
		QueueClient: queueClient,
	}
	c.initServices()
	return c
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config.JWT, c.Store.Users(), c.Cache)
	c.ProductService = service.NewProductService(c.Store.Products())
	c.CartService = service.NewCartService(c.Store, service.QuantityBounds{
		Min: c.Config.Cart.MinQuantity,
		Max: c.Config.Cart.MaxQuantity,
	})
	c.PurchaseService = service.NewPurchaseService(c.Store)
	c.ExportService = service.NewExportService(c.Store)

	// 未启用队列时摘要在请求内同步写入
	var summaries service.PurchaseSummaryDispatcher = c.PurchaseService
	if c.QueueClient.Enabled() {
		summaries = c.QueueClient
	}
	c.OrderService = service.NewOrderService(c.Store, c.Publisher, summaries, c.Config.Order.DefaultPaymentMethod)
}

// Close 释放外部连接
func (c *Container) Close(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.QueueClient.Close(); err != nil {
		logger.Warnw("provider_close_queue_failed", "error", err)
	}
	if c.Publisher != nil {
		if err := c.Publisher.Close(); err != nil {
			logger.Warnw("provider_close_publisher_failed", "error", err)
		}
	}
	if err := c.Cache.Close(); err != nil {
		logger.Warnw("provider_close_cache_failed", "error", err)
	}
	if c.Store != nil {
		if err := c.Store.Close(ctx); err != nil {
			logger.Warnw("provider_close_store_failed", "error", err)
		}
	}
}
