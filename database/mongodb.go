package database

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ogm710811/stem-cell-API/models"
)

// Mongo is the global database handle.
var Mongo *mongo.Database

// InitMongo connects to MongoDB, verifies the connection, and ensures the
// unique indexes that back the duplicate-key checks.
func InitMongo(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to MongoDB")
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping MongoDB")
	}

	Mongo = client.Database(dbName)

	if err := ensureIndexes(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to ensure indexes")
	}

	log.Println("MongoDB initialized successfully.")
	return Mongo, nil
}

// ensureIndexes creates the unique indexes for every key the application
// checks before insert. The indexes close the check-then-act window between
// the pre-check read and the write.
func ensureIndexes(ctx context.Context) error {
	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}

	for collection, fields := range map[string][]string{
		models.User{}.CollectionName():        {"username"},
		models.Country{}.CollectionName():     {"name"},
		models.MedicalUnit{}.CollectionName(): {"name"},
		models.Patient{}.CollectionName():     {"phoneNumber", "email"},
	} {
		for _, field := range fields {
			if _, err := Mongo.Collection(collection).Indexes().CreateOne(indexCtx, unique(field)); err != nil {
				return errors.Wrapf(err, "failed to create unique index on %s.%s", collection, field)
			}
		}
	}
	return nil
}
