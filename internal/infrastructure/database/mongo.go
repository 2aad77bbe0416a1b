package database

import (
	"context"
	"fmt"
	"time"

	"clinic-appointment-service/config"
	"clinic-appointment-service/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func NewMongoConnection(cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Test connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logrus.Info("Successfully connected to MongoDB")

	return client, client.Database(cfg.Database), nil
}

// EnsurePrescriptionIndexes creates the unique index that limits each
// appointment to a single prescription. A second insert for the same
// appointment id fails with a duplicate-key error instead of racing.
func EnsurePrescriptionIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(entity.PrescriptionCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "appointment_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_prescriptions_appointment_id"),
	})
	if err != nil {
		return fmt.Errorf("failed to create prescription index: %w", err)
	}
	return nil
}
