// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the crypto package. Callers match them with
// [errors.Is]; wrapped messages never contain key bytes or passwords.
var (
	// ErrKeyNotFound is returned by a [KeyStore] when no key has been stored yet.
	ErrKeyNotFound = errors.New("master key not found")
	// ErrKeyStoreUnavailable indicates the key store could not be read or written.
	ErrKeyStoreUnavailable = errors.New("key store unavailable")
	// ErrKeyCorrupt indicates stored or supplied key material is not a valid
	// 32-byte key.
	ErrKeyCorrupt = errors.New("master key corrupt")

	// ErrAuthenticationFailed is returned when a ciphertext does not
	// authenticate under the key or names an unknown cipher suite.
	ErrAuthenticationFailed = errors.New("ciphertext authentication failed")
	// ErrMalformedCiphertext is returned for empty or truncated blobs.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
	// ErrEncoding is returned when a plaintext is not valid UTF-8.
	ErrEncoding = errors.New("plaintext is not valid UTF-8")
	// ErrUnknownSuite is returned by [ParseSuite] for unsupported suite names.
	ErrUnknownSuite = errors.New("unknown cipher suite")

	// ErrMalformedHashRecord is returned by [CredentialHasher.Verify] when the
	// stored record cannot be parsed.
	ErrMalformedHashRecord = errors.New("malformed hash record")
)
