package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jensotto/projektor/internal/domain"
	"github.com/jensotto/projektor/internal/repository"
)

type userService struct {
	users repository.UserRepo
}

// NewUserService creates the user application service.
func NewUserService(users repository.UserRepo) UserService {
	return &userService{users: users}
}

func (s *userService) Register(ctx context.Context, u *domain.User) error {
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	_, err := s.users.GetByEmail(ctx, u.Email)
	if err == nil {
		return fmt.Errorf("registering %s: %w", u.Email, ErrEmailTaken)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("checking email %s: %w", u.Email, err)
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.CreatedAt = time.Now().UTC()
	return s.users.Create(ctx, u)
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, ErrUserNotFound)
		}
		return nil, fmt.Errorf("loading user %s: %w", id, err)
	}
	return u, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", email, ErrUserNotFound)
		}
		return nil, fmt.Errorf("loading user %s: %w", email, err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}
