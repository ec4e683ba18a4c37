package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/sportshop-next/internal/config"
	"github.com/sportshop-next/internal/constants"
	"github.com/sportshop-next/internal/logger"
	"github.com/sportshop-next/internal/models"
	"github.com/sportshop-next/internal/repository"
	"github.com/sportshop-next/internal/repository/mongostore"
)

// DefaultAdminEmail 启动时自动创建的管理员邮箱
const DefaultAdminEmail = "admin@sportshop.local"

// OpenStore 按 database.driver 打开存储并完成迁移与默认管理员初始化
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	if driver == constants.DatabaseDriverMongo {
		return openMongoStore(ctx, cfg)
	}

	db, err := models.OpenDB(driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
	}, strings.EqualFold(cfg.App.Mode, "debug"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	if _, err := models.EnsureDefaultAdmin(db, DefaultAdminEmail); err != nil {
		logger.Warnw("provider_default_admin_failed", "error", err)
	}
	logger.Infow("database_ready", "driver", driver)
	return repository.NewGormStore(db), nil
}

func openMongoStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.Timeout())
	defer cancel()
	store, err := mongostore.Connect(connectCtx, mongostore.Options{
		URI:          cfg.Mongo.URI,
		Database:     cfg.Mongo.Database,
		Transactions: cfg.Mongo.Transactions,
	})
	if err != nil {
		return nil, err
	}
	if err := ensureDefaultAdmin(ctx, store); err != nil {
		logger.Warnw("provider_default_admin_failed", "error", err)
	}
	return store, nil
}

func ensureDefaultAdmin(ctx context.Context, store repository.Store) error {
	existing, err := store.Users().GetByEmail(ctx, DefaultAdminEmail)
	if err != nil || existing != nil {
		return err
	}
	admin := &models.User{
		Name:   "Administrator",
		Email:  DefaultAdminEmail,
		Role:   constants.RoleAdmin,
		Status: constants.UserStatusActive,
	}
	if err := store.Users().Create(ctx, admin); err != nil {
		return err
	}
	logger.Warnw("default_admin_created", "user_id", admin.ID, "email", admin.Email)
	return nil
}
