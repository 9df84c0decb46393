// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vault services and the command line front end.
//
// All Msg* constants are human-readable message strings shown to the vault
// owner to describe the outcome of an operation. Apart from policy
// violations, which list the failing rules, every failure is reported as one
// of these opaque categories so that cryptographic and storage internals
// never reach the terminal.
package app

const (
	// MsgInvalidInput is shown when a label, secret, id, username or email
	// fails structural validation.
	MsgInvalidInput = "invalid data provided"

	// MsgInvalidOwner is shown when a vault operation is attempted without
	// an authenticated owner.
	MsgInvalidOwner = "not signed in"

	// MsgInvalidCredentials is shown when the username/password combination
	// does not match any master credential. Unknown usernames and wrong
	// passwords share this message.
	MsgInvalidCredentials = "invalid username/password"

	// MsgPolicyViolation prefixes the itemized list of master password rules
	// that were not met.
	MsgPolicyViolation = "password does not meet the requirements"

	// MsgNotFound is shown when an entry or account cannot be found for the
	// current owner.
	MsgNotFound = "not found"

	// MsgAlreadyExists is shown when a username or email is already taken.
	MsgAlreadyExists = "username or email already exists"

	// MsgVaultCorrupt is shown when a stored secret fails authentication on
	// decryption (tampered ciphertext or a different master key).
	MsgVaultCorrupt = "vault entry is unreadable"

	// MsgStorageUnavailable is shown when the database cannot be reached.
	MsgStorageUnavailable = "storage is unavailable, try again later"

	// MsgKeyUnavailable is shown when the master key cannot be read from or
	// written to its key store.
	MsgKeyUnavailable = "master key is unavailable"

	// MsgKeyCorrupt is shown when the stored master key is unreadable.
	MsgKeyCorrupt = "master key is corrupt"

	// MsgInternalError is shown for any other failure.
	MsgInternalError = "internal error"
)
