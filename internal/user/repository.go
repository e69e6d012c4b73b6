package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/for-hk/linkup-auth/internal/platform/db"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("user repository: user not found")
	ErrDuplicateEmail = errors.New("user repository: email already taken")
	ErrQueryFailed    = errors.New("user repository: query failed")
)

// Repository is the credential store contract. Implementations must make
// Create atomic: the email-uniqueness check and the insert are one operation.
type Repository interface {
	Create(ctx context.Context, params CreateUserParams) (User, error)
	Find(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	MostRecentlyCreated(ctx context.Context) (*User, error)
}

type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
}

type SQLRepository struct {
	db db.Executor
}

var _ Repository = (*SQLRepository)(nil)

func NewSQLRepository(dbExec db.Executor) *SQLRepository {
	return &SQLRepository{db: dbExec}
}

// executor returns the transaction bound to ctx when there is one.
func (r *SQLRepository) executor(ctx context.Context) db.Executor {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

const QueryUserCreate = `
INSERT INTO users (name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, name, email, password_hash, created_at, updated_at
`

func (r *SQLRepository) Create(ctx context.Context, params CreateUserParams) (User, error) {
	row := r.executor(ctx).QueryRowContext(ctx, QueryUserCreate, params.Name, params.Email, params.PasswordHash)
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return u, ErrDuplicateEmail
		}
		return u, fmt.Errorf("%w: create user: %v", ErrQueryFailed, err)
	}
	return u, nil
}

const QueryUserFind = `
SELECT id, name, email, password_hash, created_at, updated_at FROM users
WHERE id = $1
LIMIT 1
`

func (r *SQLRepository) Find(ctx context.Context, id int64) (*User, error) {
	row := r.executor(ctx).QueryRowContext(ctx, QueryUserFind, id)
	return scanUser(row, fmt.Sprintf("find user with id %d", id))
}

const QueryUserFindByEmail = `
SELECT id, name, email, password_hash, created_at, updated_at FROM users
WHERE email = $1
LIMIT 1
`

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.executor(ctx).QueryRowContext(ctx, QueryUserFindByEmail, email)
	return scanUser(row, "find user by email")
}

const QueryUserUpdatePassword = `
UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2
`

func (r *SQLRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	res, err := r.executor(ctx).ExecContext(ctx, QueryUserUpdatePassword, passwordHash, id)
	if err != nil {
		return fmt.Errorf("%w: update password for user %d: %v", ErrQueryFailed, id, err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if numRows == 0 {
		return ErrNotFound
	}

	return nil
}

const QueryUserMostRecent = `
SELECT id, name, email, password_hash, created_at, updated_at FROM users
ORDER BY id DESC
LIMIT 1
`

func (r *SQLRepository) MostRecentlyCreated(ctx context.Context) (*User, error) {
	row := r.executor(ctx).QueryRowContext(ctx, QueryUserMostRecent)
	return scanUser(row, "find most recently created user")
}

func scanUser(row *sql.Row, op string) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrQueryFailed, op, err)
	}
	return &u, nil
}
