package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sportshop-next/internal/events"
	"github.com/sportshop-next/internal/models"
	"github.com/sportshop-next/internal/repository"
)

var serviceTestDBSeq int64

func setupServiceTestStore(t *testing.T) *repository.GormStore {
	t.Helper()
	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", atomic.AddInt64(&serviceTestDBSeq, 1))
	db, err := models.OpenDB("sqlite", dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}, false)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	store := repository.NewGormStore(db)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

func createServiceTestProduct(t *testing.T, store repository.Store, name, category string, price float64) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Category: category,
		Brand:    "Generic",
		Image:    "/images/" + name + ".jpg",
		Price:    models.NewMoneyFromFloat(price),
	}
	if err := store.Products().Create(context.Background(), product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func createServiceTestUser(t *testing.T, store repository.Store, email, role string) *models.User {
	t.Helper()
	user := &models.User{Name: email, Email: email, Role: role, Status: "active"}
	if err := store.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.OrderEvent
	err    error
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, event events.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type recordingDispatcher struct {
	orderIDs []uint
	err      error
}

func (d *recordingDispatcher) DispatchPurchaseSummary(_ context.Context, orderID, _ uint) error {
	d.orderIDs = append(d.orderIDs, orderID)
	return d.err
}
