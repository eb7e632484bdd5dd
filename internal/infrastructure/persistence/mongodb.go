package persistence

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoConnectTimeout = 10 * time.Second

// MongoSettings describes how to reach the audit database
type MongoSettings struct {
	URI      string
	Database string
	Username string
	Password string
	AppName  string
}

// NewMongoDatabase connects, pings the primary and returns the client and database handle
func NewMongoDatabase(ctx context.Context, s MongoSettings) (*mongo.Client, *mongo.Database, error) {
	if s.URI == "" {
		return nil, nil, fmt.Errorf("mongo uri is empty")
	}

	clientOptions := options.Client().ApplyURI(s.URI)
	if s.AppName != "" {
		clientOptions.SetAppName(s.AppName)
	}
	if s.Username != "" && s.Password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: s.Username,
			Password: s.Password,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, client.Database(s.Database), nil
}
