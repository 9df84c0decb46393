// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// KeyManager loads the master key from a [KeyStore], generating and storing
// one on first use, and caches it for the lifetime of the process.
//
// The first successful load is serialized by a mutex; afterwards the cached
// key is served without touching the store. Failed loads are not cached, so
// a later call retries the store.
type KeyManager struct {
	store  KeyStore
	logger *logger.Logger

	mu     sync.Mutex
	cached atomic.Pointer[MasterKey]
}

// NewKeyManager returns a [KeyManager] backed by store.
func NewKeyManager(store KeyStore, logger *logger.Logger) *KeyManager {
	return &KeyManager{
		store:  store,
		logger: logger,
	}
}

// Key implements [KeyProvider]. It is equivalent to [KeyManager.LoadOrCreateKey].
func (m *KeyManager) Key(ctx context.Context) (MasterKey, error) {
	return m.LoadOrCreateKey(ctx)
}

// LoadOrCreateKey returns the active master key.
//
// Errors:
//   - [ErrKeyStoreUnavailable] when the store cannot be read or a freshly
//     generated key cannot be written;
//   - [ErrKeyCorrupt] when the stored material is not a valid key.
func (m *KeyManager) LoadOrCreateKey(ctx context.Context) (MasterKey, error) {
	if key := m.cached.Load(); key != nil {
		return *key, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if key := m.cached.Load(); key != nil {
		return *key, nil
	}

	key, err := m.load(ctx)
	if err != nil {
		m.logger.Err(err).Str("func", "KeyManager.LoadOrCreateKey").Msg("master key unavailable")
		return MasterKey{}, err
	}

	m.cached.Store(&key)
	return key, nil
}

func (m *KeyManager) load(ctx context.Context) (MasterKey, error) {
	raw, err := m.store.Read(ctx)
	switch {
	case err == nil:
		return NewMasterKey(raw)
	case errors.Is(err, ErrKeyCorrupt):
		return MasterKey{}, err
	case errors.Is(err, ErrKeyNotFound):
		return m.create(ctx)
	case errors.Is(err, ErrKeyStoreUnavailable):
		return MasterKey{}, err
	default:
		return MasterKey{}, fmt.Errorf("%w: %w", ErrKeyStoreUnavailable, err)
	}
}

func (m *KeyManager) create(ctx context.Context) (MasterKey, error) {
	key := GenerateMasterKey()

	if err := m.store.Write(ctx, key.raw); err != nil {
		if errors.Is(err, ErrKeyStoreUnavailable) {
			return MasterKey{}, err
		}
		return MasterKey{}, fmt.Errorf("%w: %w", ErrKeyStoreUnavailable, err)
	}

	m.logger.Info().Str("func", "KeyManager.create").Msg("generated new master key")
	return key, nil
}
