package crypto

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyFunc func(ctx context.Context) (MasterKey, error)

func (f keyFunc) Key(ctx context.Context) (MasterKey, error) {
	return f(ctx)
}

func TestVaultCipher_SealOpen(t *testing.T) {
	key := testKey(t, 0x21)
	calls := 0
	v := NewVaultCipher(keyFunc(func(context.Context) (MasterKey, error) {
		calls++
		return key, nil
	}), NewSecretCipher(SuiteXChaCha20Poly1305))

	blob, err := v.Seal(context.Background(), "x7!Qz2@Lm")
	require.NoError(t, err)
	assert.Equal(t, byte(SuiteXChaCha20Poly1305), blob[0])

	got, err := v.Open(context.Background(), blob)
	require.NoError(t, err)
	assert.Equal(t, "x7!Qz2@Lm", got)
	assert.Equal(t, 2, calls)
}

func TestVaultCipher_KeyUnavailable(t *testing.T) {
	v := NewVaultCipher(keyFunc(func(context.Context) (MasterKey, error) {
		return MasterKey{}, ErrKeyStoreUnavailable
	}), NewSecretCipher(SuiteAESGCM))

	_, err := v.Seal(context.Background(), "secret")
	require.ErrorIs(t, err, ErrKeyStoreUnavailable)

	_, err = v.Open(context.Background(), []byte{byte(SuiteAESGCM)})
	require.ErrorIs(t, err, ErrKeyStoreUnavailable)
}

func TestVaultCipher_WrongKey(t *testing.T) {
	sealer := NewVaultCipher(keyFunc(func(context.Context) (MasterKey, error) {
		return testKey(t, 0x22), nil
	}), NewSecretCipher(SuiteAESGCM))
	opener := NewVaultCipher(keyFunc(func(context.Context) (MasterKey, error) {
		return testKey(t, 0x23), nil
	}), NewSecretCipher(SuiteAESGCM))

	blob, err := sealer.Seal(context.Background(), "secret")
	require.NoError(t, err)

	_, err = opener.Open(context.Background(), blob)
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}
