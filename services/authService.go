package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ogm710811/stem-cell-API/models"
	"github.com/ogm710811/stem-cell-API/repositories"
	"github.com/ogm710811/stem-cell-API/utils"
)

type UserService interface {
	Signup(ctx context.Context, in models.SignupInput) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Signup validates the credentials, checks username uniqueness, hashes the
// password, and creates the user. New accounts always start as regular_user.
func (s *userService) Signup(ctx context.Context, in models.SignupInput) (*models.User, error) {
	if err := utils.ValidateSignupInput(in); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, &DuplicateKeyError{Message: "The username already exists"}
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:          in.Username,
		EncryptedPassword: hashed,
		FullName:          in.Fullname,
		Role:              models.RoleRegularUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, &DuplicateKeyError{Message: "The username already exists"}
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the username and password. An unknown username and a
// wrong password produce the same failure.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if user == nil || !utils.CheckPassword(user.EncryptedPassword, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUserByID resolves a session principal back to the full user record.
// Returns nil without error when the user no longer exists.
func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.userRepo.FindByID(ctx, oid)
}
