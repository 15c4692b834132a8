package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ogm710811/stem-cell-API/models"
)

type CountryRepository interface {
	FindByName(ctx context.Context, name string) (*models.Country, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Country, error)
	FindAll(ctx context.Context) ([]models.Country, error)
	Create(ctx context.Context, country *models.Country) error
	Update(ctx context.Context, id primitive.ObjectID, country *models.Country) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type countryRepository struct {
	coll *mongo.Collection
}

func NewCountryRepository(db *mongo.Database) CountryRepository {
	return &countryRepository{coll: db.Collection(models.Country{}.CollectionName())}
}

// FindByName is the uniqueness pre-check for country creation. Returns nil
// without error when no country matches.
func (r *countryRepository) FindByName(ctx context.Context, name string) (*models.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var country models.Country
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&country)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find country by name: %w", err)
	}
	return &country, nil
}

func (r *countryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var country models.Country
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&country)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find country by id: %w", err)
	}
	return &country, nil
}

func (r *countryRepository) FindAll(ctx context.Context) ([]models.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	var countries []models.Country
	if err := cursor.All(ctx, &countries); err != nil {
		return nil, fmt.Errorf("failed to decode countries: %w", err)
	}
	return countries, nil
}

func (r *countryRepository) Create(ctx context.Context, country *models.Country) error {
	now := time.Now().UTC()
	country.CreatedAt = now
	country.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, country)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("country name %q: %w", country.Name, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create country: %w", err)
	}
	country.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces the country's caller-supplied fields wholesale. Succeeds
// even when no document matched.
func (r *countryRepository) Update(ctx context.Context, id primitive.ObjectID, country *models.Country) error {
	update := bson.M{"$set": bson.M{
		"code":       country.Code,
		"name":       country.Name,
		"updated_at": time.Now().UTC(),
	}}
	if _, err := r.coll.UpdateByID(ctx, id, update); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("country name %q: %w", country.Name, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to update country: %w", err)
	}
	return nil
}

// Delete removes the country by id. Succeeds even when no document matched.
func (r *countryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete country: %w", err)
	}
	return nil
}
