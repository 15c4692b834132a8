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

type CountryService interface {
	Create(ctx context.Context, in models.CountryInput) (*models.Country, error)
	GetAll(ctx context.Context) ([]models.Country, error)
	GetByID(ctx context.Context, id string) (*models.Country, error)
	Update(ctx context.Context, id string, in models.CountryInput) (*models.Country, error)
	Delete(ctx context.Context, id string) error
}

type countryService struct {
	repository repositories.CountryRepository
}

func NewCountryService(repository repositories.CountryRepository) CountryService {
	return &countryService{repository: repository}
}

func (s *countryService) Create(ctx context.Context, in models.CountryInput) (*models.Country, error) {
	if err := utils.ValidateCountryInput(in); err != nil {
		return nil, err
	}

	found, err := s.repository.FindByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return nil, &DuplicateKeyError{Message: fmt.Sprintf("Sorry, the country %s already exist", found.Name)}
	}

	country := &models.Country{
		Code: strings.ToUpper(in.Code),
		Name: in.Name,
	}
	if err := s.repository.Create(ctx, country); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, &DuplicateKeyError{Message: fmt.Sprintf("Sorry, the country %s already exist", in.Name)}
		}
		return nil, err
	}
	return country, nil
}

func (s *countryService) GetAll(ctx context.Context) ([]models.Country, error) {
	return s.repository.FindAll(ctx)
}

// GetByID returns nil without error for a well-formed id that matches
// nothing; only a malformed id is an error.
func (s *countryService) GetByID(ctx context.Context, id string) (*models.Country, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repository.FindByID(ctx, oid)
}

func (s *countryService) Update(ctx context.Context, id string, in models.CountryInput) (*models.Country, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	if err := utils.ValidateCountryInput(in); err != nil {
		return nil, err
	}

	country := &models.Country{
		ID:   oid,
		Code: strings.ToUpper(in.Code),
		Name: in.Name,
	}
	if err := s.repository.Update(ctx, oid, country); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, &DuplicateKeyError{Message: fmt.Sprintf("Sorry, the country %s already exist", in.Name)}
		}
		return nil, err
	}
	return country, nil
}

func (s *countryService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	return s.repository.Delete(ctx, oid)
}
