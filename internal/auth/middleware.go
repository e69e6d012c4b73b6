package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/for-hk/linkup-auth/internal/pkg/web"
	"github.com/for-hk/linkup-auth/internal/platform/token"
)

var ErrInvalidToken = errors.New("invalid token")

// RequireToken rejects requests without a valid bearer token and puts the
// asserted user id into the request context.
func RequireToken(signer token.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := extractBearerToken(r)
			if err != nil {
				web.RespondInvalidCredentials(w, err)
				return
			}

			userID, err := signer.Verify(tokenString)
			if err != nil {
				web.RespondInvalidCredentials(w, err)
				return
			}

			ctx := ContextWithUser(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) (string, error) {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	tokenString, ok := strings.CutPrefix(header, prefix)
	if !ok || tokenString == "" {
		return "", ErrInvalidToken
	}
	return tokenString, nil
}
