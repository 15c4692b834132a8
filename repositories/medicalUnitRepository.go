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

type MedicalUnitRepository interface {
	FindByName(ctx context.Context, name string) (*models.MedicalUnit, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.MedicalUnit, error)
	FindAll(ctx context.Context) ([]models.MedicalUnit, error)
	Create(ctx context.Context, unit *models.MedicalUnit) error
	Update(ctx context.Context, id primitive.ObjectID, unit *models.MedicalUnit) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type medicalUnitRepository struct {
	coll *mongo.Collection
}

func NewMedicalUnitRepository(db *mongo.Database) MedicalUnitRepository {
	return &medicalUnitRepository{coll: db.Collection(models.MedicalUnit{}.CollectionName())}
}

// FindByName is the uniqueness pre-check for unit creation. Returns nil
// without error when no unit matches.
func (r *medicalUnitRepository) FindByName(ctx context.Context, name string) (*models.MedicalUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var unit models.MedicalUnit
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&unit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find medical unit by name: %w", err)
	}
	return &unit, nil
}

func (r *medicalUnitRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.MedicalUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var unit models.MedicalUnit
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&unit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find medical unit by id: %w", err)
	}
	return &unit, nil
}

func (r *medicalUnitRepository) FindAll(ctx context.Context) ([]models.MedicalUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list medical units: %w", err)
	}
	var units []models.MedicalUnit
	if err := cursor.All(ctx, &units); err != nil {
		return nil, fmt.Errorf("failed to decode medical units: %w", err)
	}
	return units, nil
}

func (r *medicalUnitRepository) Create(ctx context.Context, unit *models.MedicalUnit) error {
	now := time.Now().UTC()
	unit.CreatedAt = now
	unit.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, unit)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("medical unit name %q: %w", unit.Name, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create medical unit: %w", err)
	}
	unit.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces the unit's caller-supplied fields wholesale. Succeeds even
// when no document matched.
func (r *medicalUnitRepository) Update(ctx context.Context, id primitive.ObjectID, unit *models.MedicalUnit) error {
	update := bson.M{"$set": bson.M{
		"countryCode": unit.CountryCode,
		"name":        unit.Name,
		"address":     unit.Address,
		"updated_at":  time.Now().UTC(),
	}}
	if _, err := r.coll.UpdateByID(ctx, id, update); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("medical unit name %q: %w", unit.Name, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to update medical unit: %w", err)
	}
	return nil
}

// Delete removes the unit by id. Succeeds even when no document matched.
func (r *medicalUnitRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete medical unit: %w", err)
	}
	return nil
}
