package user

import (
	"context"
	"fmt"
)

// Service is the user management contract consumed by the auth layer.
type Service interface {
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	FindUser(ctx context.Context, id int64) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	ChangeUserPassword(ctx context.Context, id int64, passwordHash string) error
	LatestUser(ctx context.Context) (*User, error)
}

type service struct {
	repo Repository
}

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	u, err := s.repo.Create(ctx, params)
	if err != nil {
		return u, fmt.Errorf("user service: create user: %w", err)
	}
	return u, nil
}

func (s *service) FindUser(ctx context.Context, id int64) (*User, error) {
	u, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user service: find user with id %d: %w", id, err)
	}
	return u, nil
}

func (s *service) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user service: find user by email: %w", err)
	}
	return u, nil
}

func (s *service) ChangeUserPassword(ctx context.Context, id int64, passwordHash string) error {
	if err := s.repo.UpdatePassword(ctx, id, passwordHash); err != nil {
		return fmt.Errorf("user service: change password for user %d: %w", id, err)
	}
	return nil
}

func (s *service) LatestUser(ctx context.Context) (*User, error) {
	u, err := s.repo.MostRecentlyCreated(ctx)
	if err != nil {
		return nil, fmt.Errorf("user service: latest user: %w", err)
	}
	return u, nil
}
