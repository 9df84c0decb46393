package service

import "errors"

// Error categories surfaced by the vault services. Store, validator and
// cipher errors are mapped onto these before they leave the package, with
// the underlying error kept in the chain for logging.
var (
	ErrInvalidInput = errors.New("invalid data provided")
	ErrInvalidOwner = errors.New("invalid owner")

	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStorageConflict    = errors.New("storage conflict")

	// ErrVaultCorrupt is returned when a stored ciphertext fails
	// authentication or is malformed.
	ErrVaultCorrupt = errors.New("vault entry is corrupt")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid username/password")
)
