package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyStore persists the raw master key.
//
// Read returns the decoded key bytes, [ErrKeyNotFound] when nothing has been
// stored yet, or [ErrKeyCorrupt] when the stored material cannot be decoded.
// Any other error is treated as the store being unavailable.
type KeyStore interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, key []byte) error
}

// KeyProvider hands out the active master key. [KeyManager] implements it.
type KeyProvider interface {
	Key(ctx context.Context) (MasterKey, error)
}

// Sealer encrypts and decrypts vault secrets under the active master key.
// [VaultCipher] implements it.
type Sealer interface {
	// Seal encrypts plaintext and returns the self-describing blob.
	Seal(ctx context.Context, plaintext string) ([]byte, error)
	// Open authenticates and decrypts a blob produced by Seal.
	Open(ctx context.Context, blob []byte) (string, error)
}

// PasswordHasher produces and verifies master credential hash records.
// [CredentialHasher] implements it.
type PasswordHasher interface {
	// Hash returns a fresh salted hash record for password.
	Hash(password string) string
	// Verify reports whether password matches record.
	Verify(password, record string) (bool, error)
	// NeedsRehash reports whether record should be replaced by a record
	// produced with the current parameters.
	NeedsRehash(record string) bool
}
