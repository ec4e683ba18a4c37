package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store 聚合各仓库并提供事务入口，关系库与文档库各有一份实现
type Store interface {
	Products() ProductRepository
	Carts() CartRepository
	Orders() OrderRepository
	Users() UserRepository
	Purchases() PurchaseRecordRepository
	// Transaction 在同一事务内执行 fn，fn 内必须使用传入的 tx
	Transaction(ctx context.Context, fn func(tx Store) error) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// GormStore GORM 实现
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建关系库存储
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DB 返回底层连接
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) Products() ProductRepository { return NewProductRepository(s.db) }

func (s *GormStore) Carts() CartRepository { return NewCartRepository(s.db) }

func (s *GormStore) Orders() OrderRepository { return NewOrderRepository(s.db) }

func (s *GormStore) Users() UserRepository { return NewUserRepository(s.db) }

func (s *GormStore) Purchases() PurchaseRecordRepository { return NewPurchaseRecordRepository(s.db) }

// Transaction 执行事务
func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	if fn == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}

// Ping 检查连接
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close 关闭连接
func (s *GormStore) Close(_ context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
