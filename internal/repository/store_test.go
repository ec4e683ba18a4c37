package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/sportshop-next/internal/models"
)

func TestGormStoreTransactionCommitsOrderAndCartDelete(t *testing.T) {
	db := setupRepositoryTestDB(t)
	store := NewGormStore(db)
	ctx := context.Background()

	product := createTestProduct(t, store.Products(), "Football", "balls", "Nivia", 800)
	if err := store.Carts().Save(ctx, &models.Cart{UserID: 1, Items: []models.CartItem{{ProductID: product.ID, Quantity: 2}}}); err != nil {
		t.Fatalf("save cart failed: %v", err)
	}

	err := store.Transaction(ctx, func(tx Store) error {
		if err := tx.Orders().Create(ctx, &models.Order{UserID: 1, PaymentMethod: "COD", TotalQuantity: 2}); err != nil {
			return err
		}
		return tx.Carts().DeleteByUser(ctx, 1)
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}

	cart, err := store.Carts().GetByUser(ctx, 1)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if cart != nil {
		t.Fatalf("cart should be deleted after commit")
	}
	orders, _ := store.Orders().List(ctx, OrderListFilter{UserID: 1})
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
}

func TestGormStoreTransactionRollsBackOnError(t *testing.T) {
	db := setupRepositoryTestDB(t)
	store := NewGormStore(db)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := store.Transaction(ctx, func(tx Store) error {
		if err := tx.Orders().Create(ctx, &models.Order{UserID: 2, PaymentMethod: "COD"}); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected boom, got %v", err)
	}
	orders, _ := store.Orders().List(ctx, OrderListFilter{UserID: 2})
	if len(orders) != 0 {
		t.Fatalf("order should be rolled back")
	}
}
