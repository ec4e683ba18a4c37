package mongostore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sportshop-next/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	s *Store
}

func (r *userRepository) findOne(ctx context.Context, query bson.M) (*models.User, error) {
	var doc userDoc
	err := r.s.coll(collUsers).FindOne(r.s.bind(ctx), query).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	user := doc.model()
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": int64(id)})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	id, err := r.s.nextID(ctx, collUsers)
	if err != nil {
		return err
	}
	now := time.Now()
	user.ID = id
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt = now
	user.UpdatedAt = now
	_, err = r.s.coll(collUsers).InsertOne(r.s.bind(ctx), newUserDoc(user))
	return err
}
