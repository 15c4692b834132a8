package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ogm710811/stem-cell-API/models"
	"github.com/ogm710811/stem-cell-API/repositories"
	"github.com/ogm710811/stem-cell-API/utils"
)

type MedicalUnitService interface {
	Create(ctx context.Context, in models.MedicalUnitInput) (*models.MedicalUnit, error)
	GetAll(ctx context.Context) ([]models.MedicalUnit, error)
	GetByID(ctx context.Context, id string) (*models.MedicalUnit, error)
	Update(ctx context.Context, id string, in models.MedicalUnitInput) (*models.MedicalUnit, error)
	Delete(ctx context.Context, id string) error
}

type medicalUnitService struct {
	repository repositories.MedicalUnitRepository
}

func NewMedicalUnitService(repository repositories.MedicalUnitRepository) MedicalUnitService {
	return &medicalUnitService{repository: repository}
}

func (s *medicalUnitService) Create(ctx context.Context, in models.MedicalUnitInput) (*models.MedicalUnit, error) {
	if err := utils.ValidateMedicalUnitInput(in); err != nil {
		return nil, err
	}

	found, err := s.repository.FindByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return nil, &DuplicateKeyError{Message: fmt.Sprintf("Sorry, the Medical Unit %s already exist", found.Name)}
	}

	unit := &models.MedicalUnit{
		CountryCode: strings.ToUpper(in.Country),
		Name:        in.Name,
		Address:     in.Address(),
	}
	if err := s.repository.Create(ctx, unit); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, &DuplicateKeyError{Message: fmt.Sprintf("Sorry, the Medical Unit %s already exist", in.Name)}
		}
		return nil, err
	}
	return unit, nil
}

func (s *medicalUnitService) GetAll(ctx context.Context) ([]models.MedicalUnit, error) {
	return s.repository.FindAll(ctx)
}

// GetByID returns nil without error for a well-formed id that matches
// nothing; only a malformed id is an error.
func (s *medicalUnitService) GetByID(ctx context.Context, id string) (*models.MedicalUnit, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repository.FindByID(ctx, oid)
}

func (s *medicalUnitService) Update(ctx context.Context, id string, in models.MedicalUnitInput) (*models.MedicalUnit, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	if err := utils.ValidateMedicalUnitInput(in); err != nil {
		return nil, err
	}

	unit := &models.MedicalUnit{
		ID:          oid,
		CountryCode: strings.ToUpper(in.Country),
		Name:        in.Name,
		Address:     in.Address(),
	}
	if err := s.repository.Update(ctx, oid, unit); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, &DuplicateKeyError{Message: fmt.Sprintf("Sorry, the Medical Unit %s already exist", in.Name)}
		}
		return nil, err
	}
	return unit, nil
}

func (s *medicalUnitService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	return s.repository.Delete(ctx, oid)
}
