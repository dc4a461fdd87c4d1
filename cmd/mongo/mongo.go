package mongoclient

import (
	"context"
	"fmt"
	"time"

	"github.com/divyaalluri1312/FriendFleet/cmd/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

// New initializes the MongoDB client using provided configuration and
// verifies connectivity.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return fmt.Errorf("unable to connect mongo at %s: %w", cfg.Mongo.URI, err)
	}

	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("unable to ping mongo at %s: %w", cfg.Mongo.URI, err)
	}

	client = c
	database = c.Database(cfg.Mongo.Database)
	return nil
}

func Get() *mongo.Database {
	return database
}

// EnsureIndexes creates the unique indexes on phone and plate number. These
// indexes are what turns a concurrent duplicate registration into a
// duplicate-key error instead of a second document.
func EnsureIndexes(ctx context.Context) error {
	if database == nil {
		return fmt.Errorf("mongo not initialized")
	}

	unique := options.Index().SetUnique(true)

	_, err := database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("users phone index: %w", err)
	}

	_, err = database.Collection("vehicles").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "number", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("vehicles number index: %w", err)
	}

	return nil
}

func Close() error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
