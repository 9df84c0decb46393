// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/crypto/chacha20poly1305"
)

// Suite identifies the AEAD that produced a ciphertext. It is stored as the
// first byte of every blob and bound as additional authenticated data.
type Suite byte

const (
	// SuiteAESGCM is AES-256-GCM with a 12-byte nonce.
	SuiteAESGCM Suite = 0x01
	// SuiteXChaCha20Poly1305 is XChaCha20-Poly1305 with a 24-byte nonce.
	SuiteXChaCha20Poly1305 Suite = 0x02
)

const tagSize = 16

// ParseSuite maps a configuration name to a [Suite].
func ParseSuite(name string) (Suite, error) {
	switch name {
	case "aes-256-gcm", "":
		return SuiteAESGCM, nil
	case "xchacha20-poly1305":
		return SuiteXChaCha20Poly1305, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
	}
}

func (s Suite) String() string {
	switch s {
	case SuiteAESGCM:
		return "aes-256-gcm"
	case SuiteXChaCha20Poly1305:
		return "xchacha20-poly1305"
	default:
		return fmt.Sprintf("suite(0x%02x)", byte(s))
	}
}

// nonceSize returns the nonce length for s, or 0 for unknown suites.
func (s Suite) nonceSize() int {
	switch s {
	case SuiteAESGCM:
		return 12
	case SuiteXChaCha20Poly1305:
		return chacha20poly1305.NonceSizeX
	default:
		return 0
	}
}

func (s Suite) aead(key MasterKey) (cipher.AEAD, error) {
	if len(key.raw) != KeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrKeyCorrupt, KeySize, len(key.raw))
	}

	switch s {
	case SuiteAESGCM:
		block, err := aes.NewCipher(key.raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrKeyCorrupt, err)
		}
		return cipher.NewGCM(block)
	case SuiteXChaCha20Poly1305:
		aead, err := chacha20poly1305.NewX(key.raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrKeyCorrupt, err)
		}
		return aead, nil
	default:
		return nil, ErrAuthenticationFailed
	}
}

// SecretCipher performs authenticated encryption of vault secrets.
//
// Blob layout: suite(1) ‖ nonce ‖ ciphertext ‖ tag(16). New blobs use the
// suite the cipher was built with; decryption dispatches on the suite byte,
// so blobs written under either suite stay readable. A SecretCipher holds
// no key and is safe for concurrent use.
type SecretCipher struct {
	suite Suite
	rand  io.Reader
}

// NewSecretCipher returns a [SecretCipher] sealing new blobs with suite.
func NewSecretCipher(suite Suite) *SecretCipher {
	return &SecretCipher{
		suite: suite,
		rand:  rand.Reader,
	}
}

// Suite returns the suite used for new blobs.
func (c *SecretCipher) Suite() Suite {
	return c.suite
}

// Encrypt seals plaintext under key with a fresh random nonce.
//
// Returns [ErrEncoding] when plaintext is not valid UTF-8 and [ErrKeyCorrupt]
// when key is not a 32-byte key.
func (c *SecretCipher) Encrypt(key MasterKey, plaintext string) ([]byte, error) {
	if !utf8.ValidString(plaintext) {
		return nil, ErrEncoding
	}

	aead, err := c.suite.aead(key)
	if err != nil {
		return nil, err
	}

	nonceSize := c.suite.nonceSize()
	blob := make([]byte, 1+nonceSize, 1+nonceSize+len(plaintext)+tagSize)
	blob[0] = byte(c.suite)

	nonce := blob[1 : 1+nonceSize]
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	header := []byte{byte(c.suite)}
	return aead.Seal(blob, nonce, []byte(plaintext), header), nil
}

// Decrypt authenticates blob under key and returns the plaintext.
//
// Errors:
//   - [ErrMalformedCiphertext] for an empty blob or one too short for its suite;
//   - [ErrAuthenticationFailed] for an unknown suite byte, a wrong key or any
//     modified byte;
//   - [ErrEncoding] when the authenticated plaintext is not valid UTF-8;
//   - [ErrKeyCorrupt] when key is not a 32-byte key.
func (c *SecretCipher) Decrypt(key MasterKey, blob []byte) (string, error) {
	if len(key.raw) != KeySize {
		return "", fmt.Errorf("%w: want %d bytes, got %d", ErrKeyCorrupt, KeySize, len(key.raw))
	}
	if len(blob) == 0 {
		return "", ErrMalformedCiphertext
	}

	suite := Suite(blob[0])
	nonceSize := suite.nonceSize()
	if nonceSize == 0 {
		return "", ErrAuthenticationFailed
	}
	if len(blob) < 1+nonceSize+tagSize {
		return "", ErrMalformedCiphertext
	}

	aead, err := suite.aead(key)
	if err != nil {
		return "", err
	}

	nonce, sealed := blob[1:1+nonceSize], blob[1+nonceSize:]
	plaintext, err := aead.Open(nil, nonce, sealed, blob[:1])
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	if !utf8.Valid(plaintext) {
		return "", ErrEncoding
	}

	return string(plaintext), nil
}

// Reencrypt opens blob under oldKey and seals the plaintext under newKey
// with the cipher's current suite. It is the building block for key
// rotation; callers decide when and which blobs to rotate.
func (c *SecretCipher) Reencrypt(oldKey, newKey MasterKey, blob []byte) ([]byte, error) {
	plaintext, err := c.Decrypt(oldKey, blob)
	if err != nil {
		return nil, err
	}

	return c.Encrypt(newKey, plaintext)
}
