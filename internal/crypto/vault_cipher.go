package crypto

import (
	"context"
	"fmt"
)

// VaultCipher binds a [KeyProvider] to a [SecretCipher] so callers never
// handle the master key directly. It implements [Sealer].
type VaultCipher struct {
	keys   KeyProvider
	cipher *SecretCipher
}

// NewVaultCipher returns a [VaultCipher].
func NewVaultCipher(keys KeyProvider, cipher *SecretCipher) *VaultCipher {
	return &VaultCipher{
		keys:   keys,
		cipher: cipher,
	}
}

// Seal implements [Sealer].
func (v *VaultCipher) Seal(ctx context.Context, plaintext string) ([]byte, error) {
	key, err := v.keys.Key(ctx)
	if err != nil {
		return nil, fmt.Errorf("load master key: %w", err)
	}

	return v.cipher.Encrypt(key, plaintext)
}

// Open implements [Sealer].
func (v *VaultCipher) Open(ctx context.Context, blob []byte) (string, error) {
	key, err := v.keys.Key(ctx)
	if err != nil {
		return "", fmt.Errorf("load master key: %w", err)
	}

	return v.cipher.Decrypt(key, blob)
}
