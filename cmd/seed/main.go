package main

import (
	"context"
	"flag"
	"time"

	"github.com/sportshop-next/internal/cache"
	"github.com/sportshop-next/internal/config"
	"github.com/sportshop-next/internal/constants"
	"github.com/sportshop-next/internal/logger"
	"github.com/sportshop-next/internal/models"
	"github.com/sportshop-next/internal/provider"
	"github.com/sportshop-next/internal/repository"
	"github.com/sportshop-next/internal/service"

	"github.com/shopspring/decimal"
)

type seedProduct struct {
	Name     string
	Brand    string
	Category string
	Price    int64
	Image    string
}

var catalog = []seedProduct{
	// 球衣
	{Name: "Nike Jersey", Brand: "NIKE", Category: "Jersey", Price: 1000, Image: "/images/jersey/j1.png"},
	{Name: "Adidas Jersey", Brand: "Adidas", Category: "Jersey", Price: 1500, Image: "/images/jersey/j2.png"},
	{Name: "Puma Jersey", Brand: "Puma", Category: "Jersey", Price: 2000, Image: "/images/jersey/j3.png"},
	{Name: "Under Armour Jersey", Brand: "Under Armour", Category: "Jersey", Price: 999, Image: "/images/jersey/j4.png"},
	{Name: "New Balance Jersey", Brand: "New Balance", Category: "Jersey", Price: 1400, Image: "/images/jersey/j5.png"},
	{Name: "Champion Jersey", Brand: "Champion", Category: "Jersey", Price: 1200, Image: "/images/jersey/j6.png"},
	// 球拍/球棒
	{Name: "Cricket Bat", Brand: "SS", Category: "Bat", Price: 2500, Image: "/images/bats/b1.png"},
	{Name: "Table Tennis Bat", Brand: "STAG", Category: "Bat", Price: 1800, Image: "/images/bats/b2.png"},
	{Name: "Badminton Racket", Brand: "AIRAVAT", Category: "Bat", Price: 1000, Image: "/images/bats/b3.png"},
	{Name: "Baseball Bat", Brand: "NIKE", Category: "Bat", Price: 4000, Image: "/images/bats/b4.png"},
	{Name: "Hockey Stick", Brand: "SNS", Category: "Bat", Price: 1850, Image: "/images/bats/b5.png"},
	{Name: "Boxing Gloves", Brand: "VINEX", Category: "Bat", Price: 2850, Image: "/images/bats/b6.png"},
	{Name: "Golf Club", Brand: "PING", Category: "Bat", Price: 2850, Image: "/images/bats/b7.png"},
	// 球
	{Name: "Foot Ball", Brand: "Nivia", Category: "Ball", Price: 1500, Image: "/images/balls/b01.png"},
	{Name: "Table Tennis Ball", Brand: "DHS", Category: "Ball", Price: 250, Image: "/images/balls/b02.png"},
	{Name: "Basket Ball", Brand: "VICTEAM", Category: "Ball", Price: 2500, Image: "/images/balls/b03.png"},
	{Name: "Cricket Ball", Brand: "TURF 20", Category: "Ball", Price: 1900, Image: "/images/balls/b04.png"},
	{Name: "Volleyball", Brand: "Spartans", Category: "Ball", Price: 1400, Image: "/images/balls/b05.png"},
	{Name: "Hockey Ball", Brand: "Slazenger", Category: "Ball", Price: 1600, Image: "/images/balls/b06.png"},
	{Name: "Special Ball", Brand: "BrandX", Category: "Ball", Price: 2000, Image: "/images/balls/b08.png"},
}

const demoUserEmail = "demo@sportshop.local"

func main() {
	var printTokens bool
	var tokenTTL time.Duration
	flag.BoolVar(&printTokens, "tokens", true, "输出管理员与演示用户的访问令牌")
	flag.DurationVar(&tokenTTL, "token-ttl", 24*time.Hour, "令牌有效期")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.App.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	ctx := context.Background()
	store, err := provider.OpenStore(ctx, cfg)
	if err != nil {
		stdLog.Fatalf("Failed to open store: %v", err)
	}
	defer func() { _ = store.Close(ctx) }()

	// 商品按 (名称, 分类) 幂等写入
	products := service.NewProductService(store.Products())
	for _, item := range catalog {
		product, created, err := products.FindOrCreate(ctx, service.CreateProductInput{
			Name:     item.Name,
			Category: item.Category,
			Brand:    item.Brand,
			Image:    item.Image,
			Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(item.Price)),
		})
		if err != nil {
			stdLog.Printf("Failed to seed product %s: %v", item.Name, err)
			continue
		}
		if created {
			stdLog.Printf("Created product: %s (#%d)", product.Name, product.ID)
		} else {
			stdLog.Printf("Product already exists: %s (#%d)", product.Name, product.ID)
		}
	}

	admin, err := ensureUser(ctx, store, provider.DefaultAdminEmail, "Administrator", constants.RoleAdmin)
	if err != nil {
		stdLog.Fatalf("Failed to seed admin: %v", err)
	}
	demo, err := ensureUser(ctx, store, demoUserEmail, "Demo Shopper", constants.RoleUser)
	if err != nil {
		stdLog.Fatalf("Failed to seed demo user: %v", err)
	}

	if !printTokens {
		return
	}
	auth := service.NewAuthService(cfg.JWT, store.Users(), cache.New(&cfg.Redis))
	for _, user := range []*models.User{admin, demo} {
		token, expiresAt, err := auth.IssueToken(user, tokenTTL)
		if err != nil {
			stdLog.Printf("Failed to issue token for %s: %v", user.Email, err)
			continue
		}
		stdLog.Printf("%s (%s) token, expires %s:\n%s", user.Email, user.Role, expiresAt.Format(time.RFC3339), token)
	}
}

func ensureUser(ctx context.Context, store repository.Store, email, name, role string) (*models.User, error) {
	existing, err := store.Users().GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	user := &models.User{Name: name, Email: email, Role: role, Status: constants.UserStatusActive}
	if err := store.Users().Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
