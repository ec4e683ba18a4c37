// Package mongostore 基于 MongoDB 的仓库实现，购物车与订单以整文档存储
package mongostore

import (
	"context"
	"fmt"

	"github.com/sportshop-next/internal/logger"
	"github.com/sportshop-next/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collProducts  = "products"
	collCarts     = "carts"
	collOrders    = "orders"
	collUsers     = "users"
	collPurchases = "purchase_records"
	collCounters  = "counters"
)

// Options 连接参数
type Options struct {
	URI      string
	Database string
	// Transactions 需副本集支持，关闭时 Transaction 退化为顺序执行
	Transactions bool
}

// Store MongoDB 存储
type Store struct {
	client       *mongo.Client
	db           *mongo.Database
	transactions bool
	sess         mongo.Session
}

// Connect 连接并校验 MongoDB
func Connect(ctx context.Context, opts Options) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	s := &Store{
		client:       client,
		db:           client.Database(opts.Database),
		transactions: opts.Transactions,
	}
	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	logger.Infow("mongo_connected", "database", opts.Database, "transactions", opts.Transactions)
	return s, nil
}

// EnsureIndexes 创建唯一约束与查询索引
func (s *Store) EnsureIndexes(ctx context.Context) error {
	specs := map[string][]mongo.IndexModel{
		collProducts: {
			{Keys: bson.D{{Key: "name", Value: 1}, {Key: "category", Value: 1}}},
		},
		collCarts: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collOrders: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		collUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collPurchases: {
			{Keys: bson.D{{Key: "order_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}
	for name, models := range specs {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo create indexes on %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) Products() repository.ProductRepository { return &productRepository{s: s} }

func (s *Store) Carts() repository.CartRepository { return &cartRepository{s: s} }

func (s *Store) Orders() repository.OrderRepository { return &orderRepository{s: s} }

func (s *Store) Users() repository.UserRepository { return &userRepository{s: s} }

func (s *Store) Purchases() repository.PurchaseRecordRepository { return &purchaseRepository{s: s} }

// Transaction 在会话事务内执行 fn
func (s *Store) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	if fn == nil {
		return nil
	}
	if !s.transactions || s.sess != nil {
		return fn(s)
	}
	sess, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("mongo start session: %w", err)
	}
	defer sess.EndSession(context.Background())

	_, err = sess.WithTransaction(ctx, func(_ mongo.SessionContext) (interface{}, error) {
		return nil, fn(&Store{client: s.client, db: s.db, transactions: true, sess: sess})
	})
	return err
}

// Ping 检查连接
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close 断开连接
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) coll(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// bind 在事务作用域内把会话挂到 ctx 上
func (s *Store) bind(ctx context.Context) context.Context {
	if s.sess == nil {
		return ctx
	}
	return mongo.NewSessionContext(ctx, s.sess)
}

// nextID 基于 counters 集合生成自增数值 ID，与关系库保持相同的 ID 形态
func (s *Store) nextID(ctx context.Context, name string) (uint, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.coll(collCounters).FindOneAndUpdate(
		s.bind(ctx),
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("mongo next id for %s: %w", name, err)
	}
	return uint(counter.Seq), nil
}

var _ repository.Store = (*Store)(nil)
