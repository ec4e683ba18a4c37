package mongostore

import (
	"context"
	"errors"
	"time"

	"github.com/sportshop-next/internal/models"
	"github.com/sportshop-next/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const counterOrderItems = "order_items"

type orderRepository struct {
	s *Store
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	id, err := r.s.nextID(ctx, collOrders)
	if err != nil {
		return err
	}
	now := time.Now()
	order.ID = id
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	for i := range order.Items {
		itemID, err := r.s.nextID(ctx, counterOrderItems)
		if err != nil {
			return err
		}
		order.Items[i].ID = itemID
		order.Items[i].OrderID = id
		order.Items[i].CreatedAt = order.CreatedAt
	}
	_, err = r.s.coll(collOrders).InsertOne(r.s.bind(ctx), newOrderDoc(order))
	return err
}

func (r *orderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var doc orderDoc
	err := r.s.coll(collOrders).FindOne(r.s.bind(ctx), bson.M{"_id": int64(id)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	order := doc.model()
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, filter repository.OrderListFilter) ([]models.Order, error) {
	ctx = r.s.bind(ctx)
	query := bson.M{}
	if filter.UserID != 0 {
		query["user_id"] = int64(filter.UserID)
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.s.coll(collOrders).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, doc.model())
	}
	return orders, nil
}

func (r *orderRepository) MarkPaid(ctx context.Context, id uint, paidAt time.Time, result models.PaymentResult) (bool, error) {
	res, err := r.s.coll(collOrders).UpdateOne(r.s.bind(ctx),
		bson.M{"_id": int64(id), "is_paid": false},
		bson.M{"$set": bson.M{
			"is_paid":        true,
			"paid_at":        paidAt,
			"payment_result": paymentResultDoc(result),
			"updated_at":     paidAt,
		}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *orderRepository) MarkDelivered(ctx context.Context, id uint, deliveredAt time.Time) (bool, error) {
	res, err := r.s.coll(collOrders).UpdateOne(r.s.bind(ctx),
		bson.M{"_id": int64(id), "is_delivered": false},
		bson.M{"$set": bson.M{
			"is_delivered": true,
			"delivered_at": deliveredAt,
			"updated_at":   deliveredAt,
		}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
