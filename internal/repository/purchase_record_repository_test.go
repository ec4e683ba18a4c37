package repository

import (
	"context"
	"testing"

	"github.com/sportshop-next/internal/models"
)

func TestPurchaseRecordCreateIgnoresDuplicateOrder(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewPurchaseRecordRepository(db)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		record := &models.PurchaseRecord{UserID: 4, OrderID: 9, Products: "Football", TotalAmount: models.NewMoneyFromFloat(800)}
		if err := repo.Create(ctx, record); err != nil {
			t.Fatalf("create #%d failed: %v", i, err)
		}
	}
	records, err := repo.ListByUser(ctx, 4)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}
