package repository

import (
	"context"
	"fmt"
	"time"

	"flight-time-overlay/internal/domain/entity"
	"flight-time-overlay/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConversionRecordRepository implements ConversionRecordRepository
type MongoConversionRecordRepository struct {
	collection *mongo.Collection
}

// NewMongoConversionRecordRepository creates a new conversion record repository
func NewMongoConversionRecordRepository(ctx context.Context, db *mongo.Database) (repository.ConversionRecordRepository, error) {
	collection := db.Collection("conversion_records")

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "routeKey", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.M{"airportCode": 1}},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, fmt.Errorf("create conversion record indexes: %w", err)
	}

	return &MongoConversionRecordRepository{
		collection: collection,
	}, nil
}

// Save inserts a conversion record
func (r *MongoConversionRecordRepository) Save(ctx context.Context, record *entity.ConversionRecord) error {
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// FindByRouteKey returns the latest records for a route, newest first
func (r *MongoConversionRecordRepository) FindByRouteKey(ctx context.Context, routeKey string, limit int64) ([]*entity.ConversionRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"routeKey": routeKey}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*entity.ConversionRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
