// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	argon2idPrefix = "$argon2id$"
	saltLen        = 16
	digestLen      = 32
)

// Ceilings on what a stored record may ask [CredentialHasher.Verify] to
// spend. Records above them are rejected as malformed.
const (
	MaxArgon2Time      = 16
	MaxArgon2MemoryKiB = 1 << 20 // 1 GiB
	maxSaltLen         = 64
	maxDigestLen       = 64
)

// Argon2Params are the Argon2id cost parameters used for new hash records.
type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// DefaultArgon2Params returns t=3, m=64 MiB, p=4.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:      3,
		MemoryKiB: 64 * 1024, // 64 MiB
		Threads:   4,
	}
}

// CredentialHasher hashes master passwords into self-describing PHC records:
//
//	$argon2id$v=19$m=<KiB>,t=<iter>,p=<threads>$<salt>$<digest>
//
// Salt and digest are raw standard base64. Verification reads the cost
// parameters from the record, so changing the configured parameters never
// invalidates existing records. bcrypt records ($2a$, $2b$, $2y$) are
// accepted by Verify for imported credentials.
type CredentialHasher struct {
	params Argon2Params
}

// NewCredentialHasher returns a [CredentialHasher] producing records with params.
func NewCredentialHasher(params Argon2Params) *CredentialHasher {
	return &CredentialHasher{params: params}
}

// Hash implements [PasswordHasher]. Every call uses a fresh 16-byte salt.
func (h *CredentialHasher) Hash(password string) string {
	salt := make([]byte, saltLen)
	// crypto/rand.Read never returns an error.
	_, _ = rand.Read(salt)

	digest := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.MemoryKiB, h.params.Threads, digestLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		h.params.MemoryKiB,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)
}

// Verify implements [PasswordHasher]. The comparison is constant time.
//
// Returns [ErrMalformedHashRecord] when record is not a parsable Argon2id or
// bcrypt record.
func (h *CredentialHasher) Verify(password, record string) (bool, error) {
	if isBcrypt(record) {
		err := bcrypt.CompareHashAndPassword([]byte(record), []byte(password))
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrPasswordTooLong):
			return false, nil
		default:
			return false, fmt.Errorf("%w: %w", ErrMalformedHashRecord, err)
		}
	}

	rec, err := parseArgon2Record(record)
	if err != nil {
		return false, err
	}

	digest := argon2.IDKey([]byte(password), rec.salt, rec.params.Time, rec.params.MemoryKiB, rec.params.Threads, uint32(len(rec.digest)))

	return subtle.ConstantTimeCompare(digest, rec.digest) == 1, nil
}

// NeedsRehash implements [PasswordHasher]. It reports true for bcrypt
// records, malformed records and Argon2id records whose cost parameters or
// sizes differ from the hasher's.
func (h *CredentialHasher) NeedsRehash(record string) bool {
	rec, err := parseArgon2Record(record)
	if err != nil {
		return true
	}

	return rec.params != h.params || len(rec.salt) != saltLen || len(rec.digest) != digestLen
}

func isBcrypt(record string) bool {
	return strings.HasPrefix(record, "$2a$") ||
		strings.HasPrefix(record, "$2b$") ||
		strings.HasPrefix(record, "$2y$")
}

type argon2Record struct {
	params Argon2Params
	salt   []byte
	digest []byte
}

func parseArgon2Record(record string) (argon2Record, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, digest
	parts := strings.Split(record, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return argon2Record{}, fmt.Errorf("%w: unknown format", ErrMalformedHashRecord)
	}

	if parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return argon2Record{}, fmt.Errorf("%w: unsupported version %q", ErrMalformedHashRecord, parts[2])
	}

	params, err := parseArgon2Params(parts[3])
	if err != nil {
		return argon2Record{}, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 || len(salt) > maxSaltLen {
		return argon2Record{}, fmt.Errorf("%w: bad salt", ErrMalformedHashRecord)
	}

	digest, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(digest) == 0 || len(digest) > maxDigestLen {
		return argon2Record{}, fmt.Errorf("%w: bad digest", ErrMalformedHashRecord)
	}

	return argon2Record{params: params, salt: salt, digest: digest}, nil
}

func parseArgon2Params(s string) (Argon2Params, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return Argon2Params{}, fmt.Errorf("%w: bad parameters", ErrMalformedHashRecord)
	}

	values := make([]uint64, 3)
	for i, name := range []string{"m", "t", "p"} {
		key, raw, ok := strings.Cut(fields[i], "=")
		if !ok || key != name {
			return Argon2Params{}, fmt.Errorf("%w: bad parameters", ErrMalformedHashRecord)
		}

		bits := 32
		if name == "p" {
			bits = 8
		}
		v, err := strconv.ParseUint(raw, 10, bits)
		if err != nil || v == 0 {
			return Argon2Params{}, fmt.Errorf("%w: bad parameter %s", ErrMalformedHashRecord, name)
		}
		values[i] = v
	}

	if values[0] > MaxArgon2MemoryKiB || values[1] > MaxArgon2Time {
		return Argon2Params{}, fmt.Errorf("%w: cost parameters above limit", ErrMalformedHashRecord)
	}

	return Argon2Params{
		MemoryKiB: uint32(values[0]),
		Time:      uint32(values[1]),
		Threads:   uint8(values[2]),
	}, nil
}
