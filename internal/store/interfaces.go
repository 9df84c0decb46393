// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// EntryRepository persists encrypted vault entries. Every lookup and write is
// scoped by owner: a row is only visible to the user that owns it.
type EntryRepository interface {
	// CreateEntry inserts a new entry. entry.ID, entry.OwnerID and
	// entry.Ciphertext must be set by the caller.
	CreateEntry(ctx context.Context, entry models.VaultEntry) error

	// ListEntries returns summaries of every entry owned by ownerID, oldest
	// first. Ciphertexts are never selected.
	ListEntries(ctx context.Context, ownerID int64) ([]models.EntrySummary, error)

	// GetEntry returns the full entry or [ErrEntryNotFound].
	GetEntry(ctx context.Context, ownerID int64, id string) (models.VaultEntry, error)

	// UpdateCiphertext replaces the secret of an entry.
	UpdateCiphertext(ctx context.Context, ownerID int64, id string, ciphertext []byte, at time.Time) error

	// UpdateLabel replaces the label of an entry.
	UpdateLabel(ctx context.Context, ownerID int64, id, label string, at time.Time) error

	// DeleteEntry removes an entry.
	DeleteEntry(ctx context.Context, ownerID int64, id string) error
}

// UserRepository persists master credential records.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID assigned.
	// Duplicate usernames or emails yield [ErrConflict].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdatePasswordHash replaces the stored hash record of userID.
	UpdatePasswordHash(ctx context.Context, userID int64, hash string, at time.Time) error
}
