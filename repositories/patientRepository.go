package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ogm710811/stem-cell-API/models"
)

type PatientRepository interface {
	FindByPhone(ctx context.Context, phoneNumber string) (*models.Patient, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByCondition(ctx context.Context, condition string) ([]models.Patient, error)
	FindByProcedure(ctx context.Context, procedure string) ([]models.Patient, error)
	FindByDeliveryMethod(ctx context.Context, method string) ([]models.Patient, error)
	ListConditions(ctx context.Context) ([]bson.M, error)
	ListProcedures(ctx context.Context) ([]bson.M, error)
	ListDeliveryMethods(ctx context.Context) ([]bson.M, error)
	Create(ctx context.Context, patient *models.Patient) error
	Update(ctx context.Context, id primitive.ObjectID, patient *models.Patient) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type patientRepository struct {
	coll *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) PatientRepository {
	return &patientRepository{coll: db.Collection(models.Patient{}.CollectionName())}
}

// FindByPhone is the canonical "does this patient already exist" query; the
// phone number is the unique value patients are looked up by. Returns nil
// without error when no patient matches.
func (r *patientRepository) FindByPhone(ctx context.Context, phoneNumber string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var patient models.Patient
	err := r.coll.FindOne(ctx, bson.M{"phoneNumber": phoneNumber}).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find patient by phone: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var patient models.Patient
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find patient by id: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	return r.findSorted(ctx, bson.M{}, "")
}

func (r *patientRepository) FindByCondition(ctx context.Context, condition string) ([]models.Patient, error) {
	return r.findSorted(ctx, bson.M{"condition": condition}, "condition")
}

func (r *patientRepository) FindByProcedure(ctx context.Context, procedure string) ([]models.Patient, error) {
	return r.findSorted(ctx, bson.M{"procedure": procedure}, "procedure")
}

func (r *patientRepository) FindByDeliveryMethod(ctx context.Context, method string) ([]models.Patient, error) {
	return r.findSorted(ctx, bson.M{"deliveryMethod": method}, "deliveryMethod")
}

func (r *patientRepository) ListConditions(ctx context.Context) ([]bson.M, error) {
	return r.projectSorted(ctx, "condition")
}

func (r *patientRepository) ListProcedures(ctx context.Context) ([]bson.M, error) {
	return r.projectSorted(ctx, "procedure")
}

func (r *patientRepository) ListDeliveryMethods(ctx context.Context) ([]bson.M, error) {
	return r.projectSorted(ctx, "deliveryMethod")
}

func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	now := time.Now().UTC()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, patient)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("patient phone %q: %w", patient.PhoneNumber, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create patient: %w", err)
	}
	patient.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces the patient's caller-supplied fields wholesale. Succeeds
// even when no document matched.
func (r *patientRepository) Update(ctx context.Context, id primitive.ObjectID, patient *models.Patient) error {
	update := bson.M{"$set": bson.M{
		"pictureAddress": patient.PictureAddress,
		"firstName":      patient.FirstName,
		"lastName":       patient.LastName,
		"birthDate":      patient.BirthDate,
		"address":        patient.Address,
		"email":          patient.Email,
		"phoneNumber":    patient.PhoneNumber,
		"condition":      patient.Condition,
		"procedure":      patient.Procedure,
		"deliveryMethod": patient.DeliveryMethod,
		"followUp":       patient.FollowUp,
		"updated_at":     time.Now().UTC(),
	}}
	if _, err := r.coll.UpdateByID(ctx, id, update); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("patient phone %q: %w", patient.PhoneNumber, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return nil
}

// Delete removes the patient by id. Succeeds even when no document matched.
func (r *patientRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

// findSorted lists patients matching the filter, ascending by sortField when
// one is given.
func (r *patientRepository) findSorted(ctx context.Context, filter bson.M, sortField string) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find()
	if sortField != "" {
		opts.SetSort(bson.D{{Key: sortField, Value: 1}})
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("failed to decode patients: %w", err)
	}
	return patients, nil
}

// projectSorted returns one {_id, field} document per patient, ascending by
// the projected field. Used by the report routes.
func (r *patientRepository) projectSorted(ctx context.Context, field string) ([]bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{field: 1}).
		SetSort(bson.D{{Key: field, Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to project %s: %w", field, err)
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s projection: %w", field, err)
	}
	return docs, nil
}
