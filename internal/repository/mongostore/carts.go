package mongostore

import (
	"context"
	"errors"
	"time"

	"github.com/sportshop-next/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const counterCartItems = "cart_items"

type cartRepository struct {
	s *Store
}

func (r *cartRepository) GetByUser(ctx context.Context, userID uint) (*models.Cart, error) {
	var doc cartDoc
	err := r.s.coll(collCarts).FindOne(r.s.bind(ctx), bson.M{"user_id": int64(userID)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	cart := doc.model()
	return &cart, nil
}

// Save 整文档替换，不存在时按 user_id upsert
func (r *cartRepository) Save(ctx context.Context, cart *models.Cart) error {
	if cart == nil {
		return nil
	}
	now := time.Now()
	if cart.ID == 0 {
		id, err := r.s.nextID(ctx, collCarts)
		if err != nil {
			return err
		}
		cart.ID = id
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now
	for i := range cart.Items {
		item := &cart.Items[i]
		item.CartID = cart.ID
		if item.ID == 0 {
			id, err := r.s.nextID(ctx, counterCartItems)
			if err != nil {
				return err
			}
			item.ID = id
			item.CreatedAt = now
		}
		item.UpdatedAt = now
	}

	_, err := r.s.coll(collCarts).ReplaceOne(r.s.bind(ctx),
		bson.M{"user_id": int64(cart.UserID)},
		newCartDoc(cart),
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *cartRepository) DeleteByUser(ctx context.Context, userID uint) error {
	_, err := r.s.coll(collCarts).DeleteOne(r.s.bind(ctx), bson.M{"user_id": int64(userID)})
	return err
}
