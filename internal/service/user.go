package service

import (
	"context"
	"fmt"

	"hvz-backend/internal/domain"
	"hvz-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	user := &domain.User{Name: name, Email: email}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", name, err)
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
