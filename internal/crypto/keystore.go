// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileKeyStore keeps the master key base64 encoded in a single file.
//
// An absent or empty file reads as [ErrKeyNotFound]. Writes go to a
// temporary file in the same directory which is then renamed over the
// target, so a crash never leaves a half-written key behind.
type FileKeyStore struct {
	path string
}

// NewFileKeyStore returns a [FileKeyStore] backed by path.
func NewFileKeyStore(path string) *FileKeyStore {
	return &FileKeyStore{path: path}
}

// Path returns the key file location.
func (s *FileKeyStore) Path() string {
	return s.path
}

// Read implements [KeyStore].
func (s *FileKeyStore) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrKeyNotFound
	}

	return decodeKey(string(data))
}

// Write implements [KeyStore]. The file is created with mode 0600 and its
// parent directory with mode 0700.
func (s *FileKeyStore) Write(ctx context.Context, key []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create key dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".key-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp key file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp key file: %w", err)
	}
	if _, err := tmp.WriteString(base64.StdEncoding.EncodeToString(key) + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp key file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp key file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp key file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("install key file: %w", err)
	}

	return nil
}

// EnvKeyStore reads the master key from a base64 environment variable.
// It is read-only: Write always fails with [ErrKeyStoreUnavailable].
type EnvKeyStore struct {
	name string
}

// NewEnvKeyStore returns an [EnvKeyStore] reading the variable name.
func NewEnvKeyStore(name string) *EnvKeyStore {
	return &EnvKeyStore{name: name}
}

// Read implements [KeyStore]. An unset or empty variable reads as
// [ErrKeyNotFound].
func (s *EnvKeyStore) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := os.LookupEnv(s.name)
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return nil, ErrKeyNotFound
	}

	return decodeKey(value)
}

// Write implements [KeyStore].
func (s *EnvKeyStore) Write(context.Context, []byte) error {
	return fmt.Errorf("%w: environment variable %s is read-only", ErrKeyStoreUnavailable, s.name)
}

func decodeKey(encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: key is not valid base64", ErrKeyCorrupt)
	}

	return raw, nil
}
