package mongostore

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/sportshop-next/internal/models"
	"github.com/sportshop-next/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type productRepository struct {
	s *Store
}

func liveProduct(filter bson.M) bson.M {
	filter["deleted_at"] = nil
	return filter
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductListFilter) ([]models.Product, int64, error) {
	ctx = r.s.bind(ctx)
	query := liveProduct(bson.M{})
	if category := strings.TrimSpace(filter.Category); category != "" {
		query["category"] = category
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"brand": pattern},
			bson.M{"description": pattern},
		}
	}

	total, err := r.s.coll(collProducts).CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * filter.PageSize)).SetLimit(int64(filter.PageSize))
	}
	products, err := r.find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]models.Product, error) {
	cursor, err := r.s.coll(collProducts).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, doc.model())
	}
	return products, nil
}

func (r *productRepository) findOne(ctx context.Context, query bson.M, opts ...*options.FindOneOptions) (*models.Product, error) {
	var doc productDoc
	err := r.s.coll(collProducts).FindOne(r.s.bind(ctx), liveProduct(query), opts...).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	product := doc.model()
	return &product, nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	return r.findOne(ctx, bson.M{"_id": int64(id)})
}

func (r *productRepository) ListByIDs(ctx context.Context, ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	keys := make(bson.A, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, int64(id))
	}
	return r.find(r.s.bind(ctx), liveProduct(bson.M{"_id": bson.M{"$in": keys}}), options.Find())
}

func (r *productRepository) FindByNameAndCategory(ctx context.Context, name, category string) (*models.Product, error) {
	return r.findOne(ctx,
		bson.M{"name": name, "category": category},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	id, err := r.s.nextID(ctx, collProducts)
	if err != nil {
		return err
	}
	now := time.Now()
	product.ID = id
	product.CreatedAt = now
	product.UpdatedAt = now
	_, err = r.s.coll(collProducts).InsertOne(r.s.bind(ctx), newProductDoc(product))
	return err
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = time.Now()
	_, err := r.s.coll(collProducts).ReplaceOne(r.s.bind(ctx), bson.M{"_id": int64(product.ID)}, newProductDoc(product))
	return err
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	_, err := r.s.coll(collProducts).UpdateOne(r.s.bind(ctx),
		bson.M{"_id": int64(id)},
		bson.M{"$set": bson.M{"deleted_at": time.Now()}},
	)
	return err
}
