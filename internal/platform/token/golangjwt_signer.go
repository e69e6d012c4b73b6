package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("token: invalid token")

// Claims is the full token payload: a bare user id claim.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// golangJWTSigner implements the Signer interface using the golang-jwt library.
type golangJWTSigner struct {
	method jwt.SigningMethod
	key    []byte
}

var _ Signer = (*golangJWTSigner)(nil)

// NewGolangJWTSigner creates a Signer with the process-wide signing key.
func NewGolangJWTSigner(key string) Signer {
	return &golangJWTSigner{
		method: jwt.SigningMethodHS256,
		key:    []byte(key),
	}
}

// Sign generates the signed token for the given user id.
func (s *golangJWTSigner) Sign(userID int64) (string, error) {
	claims := &Claims{UserID: userID}
	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token for user %d: %w", userID, err)
	}
	return signed, nil
}

// Verify parses and validates a token string and returns the user id it asserts.
func (s *golangJWTSigner) Verify(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return 0, fmt.Errorf("%w: unknown claims type %T", ErrInvalidToken, token.Claims)
	}

	return claims.UserID, nil
}
