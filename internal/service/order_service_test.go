package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sportshop-next/internal/constants"
	"github.com/sportshop-next/internal/models"
)

func TestOrderServiceCreateOrderTotals(t *testing.T) {
	store := setupServiceTestStore(t)
	publisher := &recordingPublisher{}
	dispatcher := &recordingDispatcher{}
	orders := NewOrderService(store, publisher, dispatcher, "")
	ctx := context.Background()

	jersey := createServiceTestProduct(t, store, "Jersey", "jerseys", 49.99)
	ball := createServiceTestProduct(t, store, "Ball", "balls", 15)

	order, err := orders.CreateOrder(ctx, Identity{UserID: 11, Role: constants.RoleUser}, CreateOrderInput{
		Items: []OrderLineInput{
			{ProductID: jersey.ID, Quantity: 2},
			{ProductID: ball.ID, Quantity: 3},
		},
		ShippingAddress: models.ShippingAddress{Street: " 1 Main St ", City: "Pune", Country: "IN"},
		TaxPrice:        models.NewMoneyFromFloat(5.5),
		ShippingPrice:   models.NewMoneyFromFloat(10),
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.ID == 0 || order.UserID != 11 {
		t.Fatalf("unexpected order identity: %+v", order)
	}
	if order.ItemsPrice.String() != "144.98" {
		t.Fatalf("items price = %s, want 144.98", order.ItemsPrice.String())
	}
	if order.TotalPrice.String() != "160.48" {
		t.Fatalf("total price = %s, want 160.48", order.TotalPrice.String())
	}
	if order.TotalQuantity != 5 {
		t.Fatalf("total quantity = %d, want 5", order.TotalQuantity)
	}
	if order.PaymentMethod != constants.DefaultPaymentMethod {
		t.Fatalf("payment method = %s, want default", order.PaymentMethod)
	}
	if order.ShippingAddress.Street != "1 Main St" {
		t.Fatalf("shipping street should be trimmed, got %q", order.ShippingAddress.Street)
	}
	if order.Items[0].Name != "Jersey" || order.Items[0].Product == nil {
		t.Fatalf("order line should freeze name and attach product: %+v", order.Items[0])
	}
	if got := publisher.types(); len(got) != 1 || got[0] != constants.OrderEventCreated {
		t.Fatalf("expected one created event, got %v", got)
	}
	if len(dispatcher.orderIDs) != 1 || dispatcher.orderIDs[0] != order.ID {
		t.Fatalf("expected purchase summary dispatch for order %d, got %v", order.ID, dispatcher.orderIDs)
	}
}

func TestOrderServiceCreateOrderValidation(t *testing.T) {
	store := setupServiceTestStore(t)
	orders := NewOrderService(store, nil, nil, "COD")
	ctx := context.Background()
	caller := Identity{UserID: 1, Role: constants.RoleUser}
	product := createServiceTestProduct(t, store, "Cap", "gear", 12)

	cases := []struct {
		name  string
		input CreateOrderInput
		want  error
	}{
		{"empty", CreateOrderInput{}, ErrOrderItemsEmpty},
		{"missing product id", CreateOrderInput{Items: []OrderLineInput{{Quantity: 1}}}, ErrProductIDRequired},
		{"zero quantity", CreateOrderInput{Items: []OrderLineInput{{ProductID: product.ID}}}, ErrInvalidQuantity},
		{"negative tax", CreateOrderInput{
			Items:    []OrderLineInput{{ProductID: product.ID, Quantity: 1}},
			TaxPrice: models.NewMoneyFromFloat(-1),
		}, ErrInvalidPrice},
	}
	for _, tc := range cases {
		_, err := orders.CreateOrder(ctx, caller, tc.input)
		if !errors.Is(err, tc.want) || !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: error = %v, want %v", tc.name, err, tc.want)
		}
	}

	_, err := orders.CreateOrder(ctx, caller, CreateOrderInput{
		Items: []OrderLineInput{{ProductID: product.ID, Quantity: 1}, {ProductID: 9999, Quantity: 1}},
	})
	var missing *MissingProductError
	if !errors.As(err, &missing) || missing.ProductID != 9999 {
		t.Fatalf("expected missing product 9999, got %v", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing product should classify as not found, got %v", err)
	}

	list, err := orders.ListOrders(ctx, caller)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("rejected orders must not be persisted, got %d", len(list))
	}
}

func TestOrderServiceCheckoutClearsCart(t *testing.T) {
	store := setupServiceTestStore(t)
	publisher := &recordingPublisher{}
	dispatcher := &recordingDispatcher{}
	carts := NewCartService(store, QuantityBounds{Min: 1, Max: 10})
	orders := NewOrderService(store, publisher, dispatcher, "")
	ctx := context.Background()
	caller := Identity{UserID: 21, Role: constants.RoleUser}

	bat := createServiceTestProduct(t, store, "Bat", "bats", 100)
	if _, err := carts.AddItem(ctx, AddCartItemInput{UserID: caller.UserID, ProductID: bat.ID, Quantity: 3}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	order, err := orders.Checkout(ctx, caller, CheckoutInput{PaymentMethod: "PayPal"})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.TotalPrice.String() != "300.00" || order.PaymentMethod != "PayPal" {
		t.Fatalf("unexpected checkout order: total=%s method=%s", order.TotalPrice.String(), order.PaymentMethod)
	}
	view, err := carts.GetCart(ctx, caller.UserID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("cart should be cleared after checkout, got %d items", len(view.Items))
	}
	if len(dispatcher.orderIDs) != 1 {
		t.Fatalf("expected one summary dispatch, got %d", len(dispatcher.orderIDs))
	}
}

func TestOrderServiceCheckoutRollsBackWhenProductMissing(t *testing.T) {
	store := setupServiceTestStore(t)
	publisher := &recordingPublisher{}
	carts := NewCartService(store, QuantityBounds{Min: 1, Max: 10})
	orders := NewOrderService(store, publisher, nil, "")
	ctx := context.Background()
	caller := Identity{UserID: 22, Role: constants.RoleUser}

	ball := createServiceTestProduct(t, store, "Ball", "balls", 20)
	if _, err := carts.AddItem(ctx, AddCartItemInput{UserID: caller.UserID, ProductID: ball.ID, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := store.Products().Delete(ctx, ball.ID); err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	if _, err := orders.Checkout(ctx, caller, CheckoutInput{}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected product not found, got %v", err)
	}
	cart, err := store.Carts().GetByUser(ctx, caller.UserID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if cart == nil || len(cart.Items) != 1 {
		t.Fatalf("cart must survive a failed checkout")
	}
	if len(publisher.types()) != 0 {
		t.Fatalf("no events expected for a failed checkout")
	}
}

func TestOrderServiceListAndAccess(t *testing.T) {
	store := setupServiceTestStore(t)
	orders := NewOrderService(store, nil, nil, "")
	ctx := context.Background()
	owner := Identity{UserID: 31, Role: constants.RoleUser}
	stranger := Identity{UserID: 32, Role: constants.RoleUser}
	admin := Identity{UserID: 1, Role: constants.RoleAdmin}
	product := createServiceTestProduct(t, store, "Shoes", "footwear", 80)

	var created []uint
	for i := 0; i < 2; i++ {
		order, err := orders.CreateOrder(ctx, owner, CreateOrderInput{Items: []OrderLineInput{{ProductID: product.ID, Quantity: i + 1}}})
		if err != nil {
			t.Fatalf("create order failed: %v", err)
		}
		created = append(created, order.ID)
		time.Sleep(5 * time.Millisecond)
	}
	if _, err := orders.CreateOrder(ctx, stranger, CreateOrderInput{Items: []OrderLineInput{{ProductID: product.ID, Quantity: 1}}}); err != nil {
		t.Fatalf("create stranger order failed: %v", err)
	}

	list, err := orders.ListOrders(ctx, owner)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 || list[0].ID != created[1] || list[1].ID != created[0] {
		t.Fatalf("expected own orders newest first, got %+v", list)
	}
	all, err := orders.ListOrders(ctx, admin)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("admin should see all orders, got %d", len(all))
	}

	if _, err := orders.GetOrder(ctx, stranger, created[0]); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger should be forbidden, got %v", err)
	}
	if _, err := orders.GetOrder(ctx, owner, created[0]); err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
	if _, err := orders.GetOrder(ctx, admin, created[0]); err != nil {
		t.Fatalf("admin get failed: %v", err)
	}
	if _, err := orders.GetOrder(ctx, owner, 99999); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected order not found, got %v", err)
	}
}

func TestOrderServiceMarkPaidAndDelivered(t *testing.T) {
	store := setupServiceTestStore(t)
	publisher := &recordingPublisher{}
	orders := NewOrderService(store, publisher, nil, "")
	ctx := context.Background()
	owner := Identity{UserID: 41, Role: constants.RoleUser}
	admin := Identity{UserID: 1, Role: constants.RoleAdmin}
	product := createServiceTestProduct(t, store, "Racket", "gear", 120)

	order, err := orders.CreateOrder(ctx, owner, CreateOrderInput{Items: []OrderLineInput{{ProductID: product.ID, Quantity: 1}}})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := orders.MarkPaid(ctx, Identity{UserID: 42, Role: constants.RoleUser}, order.ID, models.PaymentResult{}); !errors.Is(err, ErrNotOrderOwner) {
		t.Fatalf("stranger pay should be forbidden, got %v", err)
	}

	paid, err := orders.MarkPaid(ctx, owner, order.ID, models.PaymentResult{ID: "PAY-1", Status: "COMPLETED", EmailAddress: "buyer@example.com"})
	if err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if !paid.IsPaid || paid.PaidAt == nil || paid.PaymentResult.ID != "PAY-1" {
		t.Fatalf("unexpected paid order: %+v", paid)
	}
	again, err := orders.MarkPaid(ctx, admin, order.ID, models.PaymentResult{ID: "PAY-2"})
	if err != nil {
		t.Fatalf("second mark paid failed: %v", err)
	}
	if again.PaymentResult.ID != "PAY-1" || again.PaidAt.Unix() != paid.PaidAt.Unix() {
		t.Fatalf("second payment must not overwrite the first: %+v", again.PaymentResult)
	}

	if _, err := orders.MarkDelivered(ctx, owner, order.ID); !errors.Is(err, ErrAdminRequired) {
		t.Fatalf("owner deliver should require admin, got %v", err)
	}
	delivered, err := orders.MarkDelivered(ctx, admin, order.ID)
	if err != nil {
		t.Fatalf("mark delivered failed: %v", err)
	}
	if !delivered.IsDelivered || delivered.DeliveredAt == nil {
		t.Fatalf("order should be delivered: %+v", delivered)
	}
	if _, err := orders.MarkDelivered(ctx, admin, order.ID); err != nil {
		t.Fatalf("repeat deliver failed: %v", err)
	}

	want := []string{constants.OrderEventCreated, constants.OrderEventPaid, constants.OrderEventDelivered}
	got := publisher.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
}

func TestOrderServiceSideEffectFailuresDoNotFailOrder(t *testing.T) {
	store := setupServiceTestStore(t)
	publisher := &recordingPublisher{err: errors.New("broker down")}
	dispatcher := &recordingDispatcher{err: errors.New("queue down")}
	orders := NewOrderService(store, publisher, dispatcher, "")
	product := createServiceTestProduct(t, store, "Net", "gear", 5)

	order, err := orders.CreateOrder(context.Background(), Identity{UserID: 51, Role: constants.RoleUser}, CreateOrderInput{
		Items: []OrderLineInput{{ProductID: product.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("order creation must not depend on side effects: %v", err)
	}
	if order.ID == 0 {
		t.Fatalf("order should be persisted")
	}
}
