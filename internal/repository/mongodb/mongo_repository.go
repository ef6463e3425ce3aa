// Package mongodb stores entities as MongoDB documents, one collection per
// entity, keyed by the string id in _id.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type document[T any] interface {
	*T
	entity.Document
}

type mongoRepository[T any, PT document[T]] struct {
	coll *mongo.Collection
}

func newMongoRepository[T any, PT document[T]](db *mongo.Database, collection string) mongoRepository[T, PT] {
	return mongoRepository[T, PT]{coll: db.Collection(collection)}
}

func (r *mongoRepository[T, PT]) Create(ctx context.Context, e *T) error {
	PT(e).Stamp(time.Now())
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return translateError(err)
	}
	return nil
}

func (r *mongoRepository[T, PT]) FindAll(ctx context.Context) ([]T, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoRepository[T, PT]) FindByID(ctx context.Context, id string) (*T, error) {
	var row T
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *mongoRepository[T, PT]) Update(ctx context.Context, e *T) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": PT(e).GetID()}, e)
	return translateError(err)
}

func (r *mongoRepository[T, PT]) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// find lists documents matching filter, newest first.
func (r *mongoRepository[T, PT]) find(ctx context.Context, filter bson.M) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	rows := []T{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func translateError(err error) error {
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", domainRepo.ErrDuplicateKey, err)
	}
	return err
}
