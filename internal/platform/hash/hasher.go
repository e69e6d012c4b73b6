package hash

// Hasher turns a plaintext password into a stored credential and verifies a
// plaintext against one. The credential never allows recovery of the plaintext.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}
