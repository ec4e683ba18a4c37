package service

import (
	"context"
	"testing"

	"github.com/sportshop-next/internal/constants"
)

func TestPurchaseServiceRecordsOncePerOrder(t *testing.T) {
	store := setupServiceTestStore(t)
	purchases := NewPurchaseService(store)
	orders := NewOrderService(store, nil, purchases, "")
	ctx := context.Background()
	caller := Identity{UserID: 61, Role: constants.RoleUser}

	bat := createServiceTestProduct(t, store, "Bat", "bats", 100)
	ball := createServiceTestProduct(t, store, "Ball", "balls", 10)
	order, err := orders.CreateOrder(ctx, caller, CreateOrderInput{
		Items: []OrderLineInput{{ProductID: bat.ID, Quantity: 1}, {ProductID: ball.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := purchases.RecordForOrder(ctx, order.ID); err != nil {
		t.Fatalf("repeat record failed: %v", err)
	}
	records, err := purchases.ListByUser(ctx, caller.UserID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected a single summary per order, got %d", len(records))
	}
	if records[0].Products != "Bat, Ball" || records[0].TotalAmount.String() != "120.00" {
		t.Fatalf("unexpected summary: %+v", records[0])
	}

	if err := purchases.RecordForOrder(ctx, 99999); err != nil {
		t.Fatalf("missing order should be ignored, got %v", err)
	}
	empty, err := purchases.ListByUser(ctx, 62)
	if err != nil {
		t.Fatalf("list other user failed: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", empty)
	}
}
