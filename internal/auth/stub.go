package auth

import (
	"context"
	"errors"
)

type StubService struct {
	SignUpFunc         func(ctx context.Context, creds Credentials) (string, error)
	SignInFunc         func(ctx context.Context, creds Credentials) (string, error)
	ForgotPasswordFunc func(ctx context.Context, creds Credentials) error
}

var _ AuthService = (*StubService)(nil)

func (s *StubService) SignUp(ctx context.Context, creds Credentials) (string, error) {
	if s.SignUpFunc == nil {
		return "", errors.New("SignUp() not implemented by stub")
	}
	return s.SignUpFunc(ctx, creds)
}

func (s *StubService) SignIn(ctx context.Context, creds Credentials) (string, error) {
	if s.SignInFunc == nil {
		return "", errors.New("SignIn() not implemented by stub")
	}
	return s.SignInFunc(ctx, creds)
}

func (s *StubService) ForgotPassword(ctx context.Context, creds Credentials) error {
	if s.ForgotPasswordFunc == nil {
		return errors.New("ForgotPassword() not implemented by stub")
	}
	return s.ForgotPasswordFunc(ctx, creds)
}
