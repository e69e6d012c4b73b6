package user

import "time"

// User is an account record. ID is assigned by the store, immutable, and
// monotonically ordered by creation; it is the sole claim carried by session
// tokens. PasswordHash holds the derived credential, never the plaintext.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
