package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/for-hk/linkup-auth/internal/notify"
	"github.com/for-hk/linkup-auth/internal/platform/db"
	"github.com/for-hk/linkup-auth/internal/platform/hash"
	"github.com/for-hk/linkup-auth/internal/platform/token"
	"github.com/for-hk/linkup-auth/internal/platform/validation"
	"github.com/for-hk/linkup-auth/internal/user"
)

// ErrInvalidCredentials is the single failure kind the service exposes.
// Empty fields, an unknown email, a taken email and a password mismatch all
// collapse into it so the caller cannot tell which check failed.
var ErrInvalidCredentials = errors.New("auth service: invalid credentials")

const maskChar = "*"

// Credentials is the input to every authentication operation. Password holds
// the plaintext as submitted; it never leaves this layer unhashed.
type Credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty" validate:"required"`
	Password string `json:"password,omitempty" validate:"required"`
}

func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type Service struct {
	users     user.Service
	hasher    hash.Hasher
	signer    token.Signer
	notifier  notify.Notifier
	validator validation.Validator
	txMgr     db.TxManager
}

func NewService(userSvc user.Service, provider *Provider) *Service {
	return &Service{
		users:     userSvc,
		hasher:    provider.Hasher,
		signer:    provider.Signer,
		notifier:  provider.Notifier,
		validator: provider.Validator,
		txMgr:     provider.TxMgr,
	}
}

// SignUp validates the credentials, creates the account and returns its
// session token. The welcome notification is requested on the way out and
// never blocks or fails the request.
func (s *Service) SignUp(ctx context.Context, creds Credentials) (string, error) {
	if errs := s.validator.ValidateStruct(creds); errs != nil {
		return "", fmt.Errorf("sign up: missing fields %v: %w", fieldNames(errs), ErrInvalidCredentials)
	}

	hashed, err := s.hasher.Hash(creds.Password)
	if err != nil {
		slog.Error("failed to hash password", "reason", err)
		return "", ErrInvalidCredentials
	}

	var newUser user.User
	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		created, err := s.users.CreateUser(txCtx, user.CreateUserParams{
			Name:         creds.Name,
			Email:        creds.Email,
			PasswordHash: hashed,
		})
		if err != nil {
			return err
		}
		newUser = created
		return nil
	})
	if err != nil {
		if !errors.Is(err, user.ErrDuplicateEmail) {
			slog.Error("failed to create user", "reason", err)
		}
		return "", ErrInvalidCredentials
	}

	signed, err := s.signer.Sign(newUser.ID)
	if err != nil {
		slog.Error("failed to sign token", "reason", err)
		return "", ErrInvalidCredentials
	}

	s.notifier.SendWelcome(newUser.ID)

	return signed, nil
}

// SignIn verifies the submitted password against the stored credential and
// returns the session token. It never creates or mutates a user, so the token
// is the same one sign-up issued for that account.
func (s *Service) SignIn(ctx context.Context, creds Credentials) (string, error) {
	if errs := s.validator.ValidateStruct(creds); errs != nil {
		return "", fmt.Errorf("sign in: missing fields %v: %w", fieldNames(errs), ErrInvalidCredentials)
	}

	u, err := s.users.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			slog.Error("failed to look up user", "reason", err)
		}
		return "", ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(creds.Password, u.PasswordHash)
	if err != nil {
		slog.Error("failed to verify password", "reason", err)
		return "", ErrInvalidCredentials
	}

	if !ok {
		return "", ErrInvalidCredentials
	}

	signed, err := s.signer.Sign(u.ID)
	if err != nil {
		slog.Error("failed to sign token", "reason", err)
		return "", ErrInvalidCredentials
	}

	return signed, nil
}

// ForgotPassword replaces the credential of the account registered under the
// submitted email with the hash of the submitted password, then requests the
// reset notification. The account is resolved by exact email lookup.
func (s *Service) ForgotPassword(ctx context.Context, creds Credentials) error {
	if errs := s.validator.ValidateStruct(creds); errs != nil {
		return fmt.Errorf("forgot password: missing fields %v: %w", fieldNames(errs), ErrInvalidCredentials)
	}

	hashed, err := s.hasher.Hash(creds.Password)
	if err != nil {
		slog.Error("failed to hash password", "reason", err)
		return ErrInvalidCredentials
	}

	var userID int64
	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.FindUserByEmail(txCtx, creds.Email)
		if err != nil {
			return err
		}
		userID = u.ID
		return s.users.ChangeUserPassword(txCtx, u.ID, hashed)
	})
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			slog.Error("failed to reset password", "reason", err)
		}
		return ErrInvalidCredentials
	}

	s.notifier.SendPasswordReset(userID)

	return nil
}

func fieldNames(errs map[string]string) []string {
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	return names
}
