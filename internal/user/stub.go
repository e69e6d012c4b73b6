package user

import (
	"context"
	"errors"
)

type StubService struct {
	CreateUserFunc         func(ctx context.Context, params CreateUserParams) (User, error)
	FindUserFunc           func(ctx context.Context, id int64) (*User, error)
	FindUserByEmailFunc    func(ctx context.Context, email string) (*User, error)
	ChangeUserPasswordFunc func(ctx context.Context, id int64, passwordHash string) error
	LatestUserFunc         func(ctx context.Context) (*User, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	if s.CreateUserFunc == nil {
		return User{}, errors.New("CreateUser() not implemented by stub")
	}
	return s.CreateUserFunc(ctx, params)
}

func (s *StubService) FindUser(ctx context.Context, id int64) (*User, error) {
	if s.FindUserFunc == nil {
		return nil, errors.New("FindUser() not implemented by stub")
	}
	return s.FindUserFunc(ctx, id)
}

func (s *StubService) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	if s.FindUserByEmailFunc == nil {
		return nil, errors.New("FindUserByEmail() not implemented by stub")
	}
	return s.FindUserByEmailFunc(ctx, email)
}

func (s *StubService) ChangeUserPassword(ctx context.Context, id int64, passwordHash string) error {
	if s.ChangeUserPasswordFunc == nil {
		return errors.New("ChangeUserPassword() not implemented by stub")
	}
	return s.ChangeUserPasswordFunc(ctx, id, passwordHash)
}

func (s *StubService) LatestUser(ctx context.Context) (*User, error) {
	if s.LatestUserFunc == nil {
		return nil, errors.New("LatestUser() not implemented by stub")
	}
	return s.LatestUserFunc(ctx)
}
