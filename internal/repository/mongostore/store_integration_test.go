//go:build integration
// +build integration

package mongostore

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sportshop-next/internal/models"
	"github.com/sportshop-next/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMongoIntegrationStore(t *testing.T) *Store {
	t.Helper()
	uri := strings.TrimSpace(os.Getenv("TEST_MONGO_URI"))
	if uri == "" {
		t.Skip("skip mongo integration test: TEST_MONGO_URI is empty")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbName := fmt.Sprintf("sportshop_test_%d", time.Now().UnixNano())
	store, err := Connect(ctx, Options{URI: uri, Database: dbName})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.db.Drop(context.Background())
		_ = store.Close(context.Background())
	})
	return store
}

func TestMongoProductLookupAndSearch(t *testing.T) {
	store := setupMongoIntegrationStore(t)
	ctx := context.Background()
	repo := store.Products()

	bat := &models.Product{Name: "Cricket Bat", Category: "bats", Brand: "SS", Price: models.NewMoneyFromFloat(2500)}
	require.NoError(t, repo.Create(ctx, bat))
	require.NoError(t, repo.Create(ctx, &models.Product{Name: "Nike Jersey", Category: "jerseys", Brand: "Nike", Price: models.NewMoneyFromFloat(1000)}))

	found, err := repo.FindByNameAndCategory(ctx, "Cricket Bat", "bats")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, bat.ID, found.ID)

	rows, total, err := repo.List(ctx, repository.ProductListFilter{Search: "nike", Page: 1, PageSize: 12})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Nike", rows[0].Brand)

	require.NoError(t, repo.Delete(ctx, bat.ID))
	gone, err := repo.GetByID(ctx, bat.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestMongoCartSaveAndDelete(t *testing.T) {
	store := setupMongoIntegrationStore(t)
	ctx := context.Background()
	repo := store.Carts()

	cart := &models.Cart{UserID: 5, Items: []models.CartItem{{ProductID: 1, Quantity: 3}}}
	require.NoError(t, repo.Save(ctx, cart))
	require.NotZero(t, cart.ID)
	require.NotZero(t, cart.Items[0].ID)

	cart.Items[0].Quantity = 10
	require.NoError(t, repo.Save(ctx, cart))

	got, err := repo.GetByUser(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 10, got.Items[0].Quantity)

	require.NoError(t, repo.DeleteByUser(ctx, 5))
	require.NoError(t, repo.DeleteByUser(ctx, 5))
	got, err = repo.GetByUser(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMongoOrdersNewestFirstAndPaidOnce(t *testing.T) {
	store := setupMongoIntegrationStore(t)
	ctx := context.Background()
	repo := store.Orders()

	base := time.Now().Add(-time.Hour)
	var last *models.Order
	for i := 0; i < 3; i++ {
		order := &models.Order{UserID: 1, PaymentMethod: "COD", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Create(ctx, order))
		last = order
	}

	orders, err := repo.List(ctx, repository.OrderListFilter{UserID: 1})
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, last.ID, orders[0].ID)

	changed, err := repo.MarkPaid(ctx, last.ID, time.Now(), models.PaymentResult{ID: "p1"})
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = repo.MarkPaid(ctx, last.ID, time.Now(), models.PaymentResult{ID: "p2"})
	require.NoError(t, err)
	assert.False(t, changed)
}
