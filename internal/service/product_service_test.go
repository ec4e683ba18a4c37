package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sportshop-next/internal/constants"
	"github.com/sportshop-next/internal/models"
)

func TestProductServiceFindOrCreateReturnsExisting(t *testing.T) {
	store := setupServiceTestStore(t)
	products := NewProductService(store.Products())
	ctx := context.Background()

	input := CreateProductInput{Name: "Pro Bat", Category: "bats", Brand: "SS", Price: models.NewMoneyFromFloat(2500)}
	first, created, err := products.FindOrCreate(ctx, input)
	if err != nil {
		t.Fatalf("first find or create failed: %v", err)
	}
	if !created {
		t.Fatalf("first call should create")
	}

	input.Price = models.NewMoneyFromFloat(1)
	second, created, err := products.FindOrCreate(ctx, input)
	if err != nil {
		t.Fatalf("second find or create failed: %v", err)
	}
	if created || second.ID != first.ID {
		t.Fatalf("second call should return existing id %d, got %d created=%v", first.ID, second.ID, created)
	}
	if second.Price.String() != "2500.00" {
		t.Fatalf("existing product must not be modified, price=%s", second.Price.String())
	}

	_, _, err = products.FindOrCreate(ctx, CreateProductInput{Name: "Pro Bat", Category: " "})
	if !errors.Is(err, ErrProductFieldsMissing) {
		t.Fatalf("expected fields missing, got %v", err)
	}
}

func TestProductServiceListPaginates(t *testing.T) {
	store := setupServiceTestStore(t)
	products := NewProductService(store.Products())
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		createServiceTestProduct(t, store, fmt.Sprintf("Jersey %d", i), "jerseys", 10)
	}
	createServiceTestProduct(t, store, "Tennis Ball", "balls", 3)

	page, err := products.List(ctx, ProductListInput{Page: 2, Limit: 2, Category: "jerseys"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 5 || page.Pages != 3 || len(page.Products) != 2 || page.Page != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}

	page, err = products.List(ctx, ProductListInput{Limit: 1000, Search: "tennis"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if page.Limit != constants.ProductMaxPageSize || page.Total != 1 {
		t.Fatalf("unexpected search page: %+v", page)
	}
}

func TestProductServiceAdminOperations(t *testing.T) {
	store := setupServiceTestStore(t)
	products := NewProductService(store.Products())
	ctx := context.Background()
	product := createServiceTestProduct(t, store, "Shorts", "apparel", 25)
	user := Identity{UserID: 2, Role: constants.RoleUser}
	admin := Identity{UserID: 1, Role: constants.RoleAdmin}

	name := "Training Shorts"
	if _, err := products.Update(ctx, user, product.ID, UpdateProductInput{Name: &name}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("user update should be forbidden, got %v", err)
	}
	updated, err := products.Update(ctx, admin, product.ID, UpdateProductInput{Name: &name})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.Name != name || updated.Category != "apparel" {
		t.Fatalf("unexpected updated product: %+v", updated)
	}

	if err := products.Delete(ctx, user, product.ID); !errors.Is(err, ErrAdminRequired) {
		t.Fatalf("user delete should require admin, got %v", err)
	}
	if err := products.Delete(ctx, admin, product.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if _, err := products.Get(ctx, product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("deleted product should be gone, got %v", err)
	}
}
