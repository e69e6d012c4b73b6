package token

import "errors"

type StubSigner struct {
	SignFunc   func(userID int64) (string, error)
	VerifyFunc func(tokenString string) (int64, error)
}

var _ Signer = (*StubSigner)(nil)

func (s *StubSigner) Sign(userID int64) (string, error) {
	if s.SignFunc == nil {
		return "", errors.New("Sign() not implemented by stub")
	}
	return s.SignFunc(userID)
}

func (s *StubSigner) Verify(tokenString string) (int64, error) {
	if s.VerifyFunc == nil {
		return 0, errors.New("Verify() not implemented by stub")
	}
	return s.VerifyFunc(tokenString)
}
