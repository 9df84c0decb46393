// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/policy"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

// mapStoreError translates a repository error into a service category. Any
// failure the store could not classify (a missing table, a constraint the
// schema should have prevented, a query that failed to build) is reported
// as [ErrStorageUnavailable]; the cause stays in the chain.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrEntryNotFound), errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrConflict):
		return fmt.Errorf("%w: %w", ErrStorageConflict, err)
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

// mapValidationError translates a validator error into [ErrInvalidOwner] or
// [ErrInvalidInput].
func mapValidationError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrInvalidOwner):
		return fmt.Errorf("%w: %w", ErrInvalidOwner, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// mapOpenError translates a decryption failure. Tampered, foreign-key and
// malformed blobs all become [ErrVaultCorrupt]; key store failures pass
// through unchanged.
func mapOpenError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, crypto.ErrAuthenticationFailed),
		errors.Is(err, crypto.ErrMalformedCiphertext),
		errors.Is(err, crypto.ErrEncoding):
		return fmt.Errorf("%w: %w", ErrVaultCorrupt, err)
	}
	return err
}

// PublicMessage returns the text that may be shown to the vault owner for
// err. A policy violation lists every failing rule; every other error is
// reduced to its category.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}

	var violation *policy.ViolationError
	if errors.As(err, &violation) {
		b := new(strings.Builder)
		b.WriteString(app.MsgPolicyViolation)
		b.WriteString(":")
		for _, d := range violation.Descriptions {
			b.WriteString("\n  - ")
			b.WriteString(d)
		}
		return b.String()
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, ErrInvalidOwner):
		return app.MsgInvalidOwner
	case errors.Is(err, ErrInvalidInput):
		return app.MsgInvalidInput + ": " + reason(err)
	case errors.Is(err, ErrNotFound):
		return app.MsgNotFound
	case errors.Is(err, ErrStorageConflict):
		return app.MsgAlreadyExists
	case errors.Is(err, ErrStorageUnavailable):
		return app.MsgStorageUnavailable
	case errors.Is(err, ErrVaultCorrupt):
		return app.MsgVaultCorrupt
	case errors.Is(err, crypto.ErrKeyCorrupt):
		return app.MsgKeyCorrupt
	case errors.Is(err, crypto.ErrKeyStoreUnavailable), errors.Is(err, crypto.ErrKeyNotFound):
		return app.MsgKeyUnavailable
	}

	return app.MsgInternalError
}

// reason returns the validator message carried by an [ErrInvalidInput] chain.
func reason(err error) string {
	for _, v := range []error{
		validators.ErrEmptyLabel,
		validators.ErrLabelTooLong,
		validators.ErrEmptySecret,
		validators.ErrInvalidEntryID,
		validators.ErrEmptyUsername,
		validators.ErrUsernameTooLong,
		validators.ErrInvalidEmail,
		validators.ErrEmptyPassword,
	} {
		if errors.Is(err, v) {
			return v.Error()
		}
	}
	return "check your input"
}
