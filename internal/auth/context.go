package auth

import (
	"context"
	"fmt"
)

type ctxKey int

const userCtxKey ctxKey = iota + 1

// ContextWithUser returns a new context containing the authenticated user's ID.
//
//nolint:ireturn // returning context.Context is intentional: it's the standard context type
func ContextWithUser(baseCtx context.Context, userID int64) context.Context {
	return context.WithValue(baseCtx, userCtxKey, userID)
}

// UserFromContext extracts the user ID from the context.
func UserFromContext(ctx context.Context) (int64, error) {
	val := ctx.Value(userCtxKey)

	if val == nil {
		return 0, fmt.Errorf("no user ID in context")
	}

	userID, ok := val.(int64)
	if !ok {
		return 0, fmt.Errorf("user ID is not an int64: %T", val)
	}

	return userID, nil
}
