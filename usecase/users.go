package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Swapnil-DevGeek/note-taker/dto"
	"github.com/Swapnil-DevGeek/note-taker/model"
	"github.com/Swapnil-DevGeek/note-taker/services"
	"github.com/Swapnil-DevGeek/note-taker/utils"
)

var (
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrEmailNotFound      = errors.New("email not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UsersRepository is the storage surface the user service needs.
type UsersRepository interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type UserService struct {
	UsersRepo UsersRepository
}

// Register creates a new user with a hashed password. Email
// uniqueness is checked by lookup before the insert.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	existing, err := s.UsersRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:    utils.GenerateUserID(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashed,
		CreatedAt: time.Now(),
	}

	if err := s.UsersRepo.AddUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and returns the matching user.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrEmailNotFound
	}

	if !services.VerifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// FindByEmail resolves a user record from a token's email claim.
// Called on every authenticated request; identity is never cached.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.UsersRepo.FindUserByEmail(ctx, email)
}
