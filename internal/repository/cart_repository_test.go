package repository

import (
	"context"
	"testing"

	"github.com/sportshop-next/internal/models"
)

func TestCartRepositorySaveReplacesItems(t *testing.T) {
	db := setupRepositoryTestDB(t)
	products := NewProductRepository(db)
	repo := NewCartRepository(db)
	ctx := context.Background()

	a := createTestProduct(t, products, "Nike Jersey", "jerseys", "Nike", 1000)
	b := createTestProduct(t, products, "Cricket Bat", "bats", "SS", 2500)

	cart := &models.Cart{UserID: 7, Items: []models.CartItem{
		{ProductID: a.ID, Quantity: 2},
		{ProductID: b.ID, Quantity: 1},
	}}
	if err := repo.Save(ctx, cart); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if cart.ID == 0 || cart.Items[0].ID == 0 || cart.Items[1].ID == 0 {
		t.Fatalf("expected ids to be assigned: %+v", cart)
	}

	cart.Items = []models.CartItem{{ID: cart.Items[0].ID, ProductID: a.ID, Quantity: 5}}
	if err := repo.Save(ctx, cart); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := repo.GetByUser(ctx, 7)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil || len(got.Items) != 1 || got.Items[0].Quantity != 5 {
		t.Fatalf("unexpected cart after save: %+v", got)
	}
}

func TestCartRepositoryDeleteByUserIsIdempotent(t *testing.T) {
	db := setupRepositoryTestDB(t)
	products := NewProductRepository(db)
	repo := NewCartRepository(db)
	ctx := context.Background()

	a := createTestProduct(t, products, "Football", "balls", "Nivia", 800)
	if err := repo.Save(ctx, &models.Cart{UserID: 3, Items: []models.CartItem{{ProductID: a.ID, Quantity: 1}}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := repo.DeleteByUser(ctx, 3); err != nil {
			t.Fatalf("delete #%d failed: %v", i, err)
		}
	}
	got, err := repo.GetByUser(ctx, 3)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected cart to be gone, got %+v", got)
	}
	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected cart items to be deleted, got %d", count)
	}
}
