package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ogm710811/stem-cell-API/models"
	"github.com/ogm710811/stem-cell-API/repositories"
	"github.com/ogm710811/stem-cell-API/utils"
)

type PatientService interface {
	Create(ctx context.Context, in models.PatientInput) (*models.Patient, error)
	GetAll(ctx context.Context) ([]models.Patient, error)
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	Update(ctx context.Context, id string, in models.PatientInput) (*models.Patient, error)
	Delete(ctx context.Context, id string) error
	FindByPhone(ctx context.Context, phoneNumber string) (*models.Patient, error)
	FindByCondition(ctx context.Context, condition string) ([]models.Patient, error)
	FindByProcedure(ctx context.Context, procedure string) ([]models.Patient, error)
	FindByDeliveryMethod(ctx context.Context, method string) ([]models.Patient, error)
	ListConditions(ctx context.Context) ([]bson.M, error)
	ListProcedures(ctx context.Context) ([]bson.M, error)
	ListDeliveryMethods(ctx context.Context) ([]bson.M, error)
}

type patientService struct {
	repository repositories.PatientRepository
}

func NewPatientService(repository repositories.PatientRepository) PatientService {
	return &patientService{repository: repository}
}

func (s *patientService) Create(ctx context.Context, in models.PatientInput) (*models.Patient, error) {
	if err := utils.ValidatePatientInput(in); err != nil {
		return nil, err
	}

	// The phone number is the unique value patients are looked up by.
	found, err := s.repository.FindByPhone(ctx, in.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return nil, &DuplicateKeyError{Message: fmt.Sprintf("Sorry, the patient %s %s already exist", in.FirstName, in.LastName)}
	}

	patient := s.fromInput(in)
	if err := s.repository.Create(ctx, patient); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, &DuplicateKeyError{Message: fmt.Sprintf("Sorry, the patient %s %s already exist", in.FirstName, in.LastName)}
		}
		return nil, err
	}
	return patient, nil
}

func (s *patientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.repository.FindAll(ctx)
}

// GetByID returns nil without error for a well-formed id that matches
// nothing; only a malformed id is an error.
func (s *patientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repository.FindByID(ctx, oid)
}

func (s *patientService) Update(ctx context.Context, id string, in models.PatientInput) (*models.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	if err := utils.ValidatePatientInput(in); err != nil {
		return nil, err
	}

	patient := s.fromInput(in)
	patient.ID = oid
	if err := s.repository.Update(ctx, oid, patient); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, &DuplicateKeyError{Message: fmt.Sprintf("Sorry, the patient %s %s already exist", in.FirstName, in.LastName)}
		}
		return nil, err
	}
	return patient, nil
}

func (s *patientService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	return s.repository.Delete(ctx, oid)
}

func (s *patientService) FindByPhone(ctx context.Context, phoneNumber string) (*models.Patient, error) {
	return s.repository.FindByPhone(ctx, phoneNumber)
}

func (s *patientService) FindByCondition(ctx context.Context, condition string) ([]models.Patient, error) {
	return s.repository.FindByCondition(ctx, condition)
}

func (s *patientService) FindByProcedure(ctx context.Context, procedure string) ([]models.Patient, error) {
	return s.repository.FindByProcedure(ctx, procedure)
}

func (s *patientService) FindByDeliveryMethod(ctx context.Context, method string) ([]models.Patient, error) {
	return s.repository.FindByDeliveryMethod(ctx, method)
}

func (s *patientService) ListConditions(ctx context.Context) ([]bson.M, error) {
	return s.repository.ListConditions(ctx)
}

func (s *patientService) ListProcedures(ctx context.Context) ([]bson.M, error) {
	return s.repository.ListProcedures(ctx)
}

func (s *patientService) ListDeliveryMethods(ctx context.Context) ([]bson.M, error) {
	return s.repository.ListDeliveryMethods(ctx)
}

func (s *patientService) fromInput(in models.PatientInput) *models.Patient {
	return &models.Patient{
		PictureAddress: in.PictureAddress,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		BirthDate:      in.BirthDate,
		Address:        in.Address(),
		Email:          in.Email,
		PhoneNumber:    in.PhoneNumber,
		Condition:      in.Condition,
		Procedure:      in.Procedure,
		DeliveryMethod: in.DeliveryMethod,
		FollowUp:       in.FollowUp,
	}
}
