package mongostore

import (
	"context"
	"time"

	"github.com/sportshop-next/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type purchaseRepository struct {
	s *Store
}

func (r *purchaseRepository) Create(ctx context.Context, record *models.PurchaseRecord) error {
	id, err := r.s.nextID(ctx, collPurchases)
	if err != nil {
		return err
	}
	record.ID = id
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	_, err = r.s.coll(collPurchases).InsertOne(r.s.bind(ctx), purchaseDoc{
		ID:          int64(record.ID),
		UserID:      int64(record.UserID),
		OrderID:     int64(record.OrderID),
		Products:    record.Products,
		TotalAmount: toDecimal128(record.TotalAmount),
		CreatedAt:   record.CreatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}

func (r *purchaseRepository) ListByUser(ctx context.Context, userID uint) ([]models.PurchaseRecord, error) {
	ctx = r.s.bind(ctx)
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.s.coll(collPurchases).Find(ctx, bson.M{"user_id": int64(userID)}, opts)
	if err != nil {
		return nil, err
	}
	var docs []purchaseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	records := make([]models.PurchaseRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc.model())
	}
	return records, nil
}
