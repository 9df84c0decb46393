// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultEntry is one encrypted secret record scoped to a single owner.
// Ciphertext is an opaque blob produced by the secret cipher; the plaintext
// secret never appears in this struct.
type VaultEntry struct {
	// ID is the opaque entry identifier (UUIDv7).
	ID string `json:"id"`

	// OwnerID is the user the entry belongs to exclusively.
	OwnerID int64 `json:"-"`

	// Label is the user-visible description, e.g. "Email" or "Gmail Account".
	Label string `json:"label"`

	// Ciphertext is the authenticated-encryption blob of the secret.
	Ciphertext []byte `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the VaultEntry model.
func (e VaultEntry) TableName() string {
	return "vault_entries"
}

// EntrySummary is the listing view of a vault entry. It never carries the
// secret, encrypted or not.
type EntrySummary struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
