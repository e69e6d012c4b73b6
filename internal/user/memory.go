package user

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is an in-memory credential store. The mutex makes the
// uniqueness check and the insert one atomic step, mirroring the unique
// index the SQL repository relies on.
type MemoryRepository struct {
	mu      sync.Mutex
	users   map[int64]User
	byEmail map[string]int64
	nextID  int64
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:   make(map[int64]User),
		byEmail: make(map[string]int64),
	}
}

func (r *MemoryRepository) Create(_ context.Context, params CreateUserParams) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[params.Email]; taken {
		return User{}, ErrDuplicateEmail
	}

	r.nextID++
	now := time.Now()
	u := User{
		ID:           r.nextID,
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}

func (r *MemoryRepository) Find(_ context.Context, id int64) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	u := r.users[id]
	return &u, nil
}

func (r *MemoryRepository) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	r.users[id] = u
	return nil
}

func (r *MemoryRepository) MostRecentlyCreated(_ context.Context) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nextID == 0 {
		return nil, ErrNotFound
	}
	u := r.users[r.nextID]
	return &u, nil
}

// Count reports the number of stored users.
func (r *MemoryRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
