package database

import (
	"context"
	"fmt"
	"time"

	"hms-backend/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoConnectTimeout = 10 * time.Second

// NewMongoConnection connects the shared client and returns the configured
// database. The caller owns the client and must Disconnect it on shutdown.
func NewMongoConnection(ctx context.Context, cfg config.DBConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetRegistry(NewBSONRegistry())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logrus.Info("Successfully connected to MongoDB")

	return client, client.Database(cfg.Name), nil
}
