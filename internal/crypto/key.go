package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
)

// KeySize is the master key length in bytes. Both supported AEADs take
// 256-bit keys.
const KeySize = 32

// MasterKey is the symmetric key protecting every vault secret.
//
// The zero value holds no key and is rejected by [SecretCipher] with
// [ErrKeyCorrupt]. A MasterKey is immutable once constructed and may be
// shared between goroutines. It formats as a redacted placeholder so it
// cannot leak through logs or error messages.
type MasterKey struct {
	raw []byte
}

// NewMasterKey copies raw into a MasterKey. raw must be exactly [KeySize]
// bytes long.
func NewMasterKey(raw []byte) (MasterKey, error) {
	if len(raw) != KeySize {
		return MasterKey{}, fmt.Errorf("%w: want %d bytes, got %d", ErrKeyCorrupt, KeySize, len(raw))
	}

	return MasterKey{raw: append([]byte(nil), raw...)}, nil
}

// GenerateMasterKey returns a new random key from the OS CSPRNG.
func GenerateMasterKey() MasterKey {
	raw := make([]byte, KeySize)
	// crypto/rand.Read never returns an error.
	_, _ = rand.Read(raw)
	return MasterKey{raw: raw}
}

// IsZero reports whether k holds no key.
func (k MasterKey) IsZero() bool {
	return len(k.raw) == 0
}

// Bytes returns a copy of the raw key bytes.
func (k MasterKey) Bytes() []byte {
	return append([]byte(nil), k.raw...)
}

// Equal reports whether k and other hold the same key bytes.
func (k MasterKey) Equal(other MasterKey) bool {
	return subtle.ConstantTimeCompare(k.raw, other.raw) == 1
}

func (k MasterKey) String() string {
	return "[REDACTED]"
}

func (k MasterKey) GoString() string {
	return "crypto.MasterKey{[REDACTED]}"
}

func (k MasterKey) MarshalJSON() ([]byte, error) {
	return []byte(`"[REDACTED]"`), nil
}
