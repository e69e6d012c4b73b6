package user_test

import (
	"context"
	"testing"

	"github.com/for-hk/linkup-auth/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CreateAndLookups(t *testing.T) {
	t.Parallel()
	svc := user.NewService(user.NewMemoryRepository())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, user.CreateUserParams{
		Name:         "John Doe",
		Email:        "john@doe.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	byEmail, err := svc.FindUserByEmail(ctx, "john@doe.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := svc.FindUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "john@doe.com", byID.Email)

	latest, err := svc.LatestUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, latest.ID)
}

func TestService_ErrorsKeepTheirKind(t *testing.T) {
	t.Parallel()
	svc := user.NewService(user.NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.FindUserByEmail(ctx, "nobody@doe.com")
	assert.ErrorIs(t, err, user.ErrNotFound, "wrapping must preserve the sentinel")

	_, err = svc.CreateUser(ctx, user.CreateUserParams{Email: "john@doe.com", PasswordHash: "hash"})
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, user.CreateUserParams{Email: "john@doe.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestService_ChangeUserPassword(t *testing.T) {
	t.Parallel()
	repo := user.NewMemoryRepository()
	svc := user.NewService(repo)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, user.CreateUserParams{Email: "john@doe.com", PasswordHash: "old"})
	require.NoError(t, err)

	require.NoError(t, svc.ChangeUserPassword(ctx, created.ID, "new"))

	found, err := svc.FindUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", found.PasswordHash)
}
