package helpers

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Timeout bounds every repository call on top of the caller's deadline.
var Timeout = 15 * time.Second

func MongoHelper(ctx context.Context, uri string, databaseName string, log *logrus.Logger) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.WithField("database", databaseName).Info("MongoDB connection established")

	return client.Database(databaseName), nil
}
