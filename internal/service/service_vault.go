// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/policy"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultService is the concrete implementation of [VaultService].
// It seals secrets with a [crypto.Sealer] before they reach the
// [store.EntryRepository] and opens them only on an explicit reveal.
//
// Secrets, ciphertexts and labels are never logged; only owner and entry ids.
type vaultService struct {
	entries   store.EntryRepository
	sealer    crypto.Sealer
	validator validators.Validator

	// advisor rates entry secrets. Its verdict is informational only.
	advisor *policy.Engine

	ids utils.IDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewVaultService constructs a [VaultService] over entries, sealing secrets
// with sealer.
func NewVaultService(entries store.EntryRepository, sealer crypto.Sealer, logger *logger.Logger) VaultService {
	return &vaultService{
		entries:   entries,
		sealer:    sealer,
		validator: validators.NewVaultValidator(),
		advisor:   policy.NewEntryPolicy(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// CreateEntry encrypts secret and stores it under a fresh UUIDv7 id.
//
// The label is trimmed and NFC-normalized before validation. Encryption
// happens before any write; if the insert fails the ciphertext is dropped.
func (v *vaultService) CreateEntry(ctx context.Context, owner models.Owner, label, secret string) (string, error) {
	log := logger.FromContextOr(ctx, v.logger)

	req := models.CreateEntryRequest{Owner: owner, Label: validators.NormalizeText(label), Secret: secret}
	if err := v.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*vaultService.CreateEntry").Msg("invalid entry provided")
		return "", mapValidationError(err)
	}

	ciphertext, err := v.sealer.Seal(ctx, req.Secret)
	if err != nil {
		log.Err(err).Str("func", "*vaultService.CreateEntry").Int64("owner_id", owner.UserID()).Msg("error encrypting secret")
		return "", fmt.Errorf("encrypt secret: %w", err)
	}

	now := v.now().UTC()
	entry := models.VaultEntry{
		ID:         v.ids.Generate(),
		OwnerID:    owner.UserID(),
		Label:      req.Label,
		Ciphertext: ciphertext,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = v.entries.CreateEntry(ctx, entry); err != nil {
		log.Err(err).Str("func", "*vaultService.CreateEntry").Int64("owner_id", owner.UserID()).Msg("error saving vault entry")
		return "", mapStoreError(err)
	}

	log.Info().Str("func", "*vaultService.CreateEntry").Int64("owner_id", owner.UserID()).Str("entry_id", entry.ID).Msg("vault entry created")
	return entry.ID, nil
}

// ListEntries returns id and label of every entry of owner, never a secret.
func (v *vaultService) ListEntries(ctx context.Context, owner models.Owner) ([]models.EntrySummary, error) {
	log := logger.FromContextOr(ctx, v.logger)

	if err := v.validator.Validate(ctx, owner); err != nil {
		return nil, mapValidationError(err)
	}

	summaries, err := v.entries.ListEntries(ctx, owner.UserID())
	if err != nil {
		log.Err(err).Str("func", "*vaultService.ListEntries").Int64("owner_id", owner.UserID()).Msg("error listing vault entries")
		return nil, mapStoreError(err)
	}

	return summaries, nil
}

// RevealSecret decrypts the secret of one entry. A ciphertext that fails
// authentication is reported as [ErrVaultCorrupt].
func (v *vaultService) RevealSecret(ctx context.Context, owner models.Owner, id string) (string, error) {
	log := logger.FromContextOr(ctx, v.logger)

	req := models.EntryRequest{Owner: owner, EntryID: id}
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", mapValidationError(err)
	}

	entry, err := v.entries.GetEntry(ctx, owner.UserID(), id)
	if err != nil {
		log.Err(err).Str("func", "*vaultService.RevealSecret").Int64("owner_id", owner.UserID()).Str("entry_id", id).Msg("error getting vault entry")
		return "", mapStoreError(err)
	}

	secret, err := v.sealer.Open(ctx, entry.Ciphertext)
	if err != nil {
		log.Err(err).Str("func", "*vaultService.RevealSecret").Int64("owner_id", owner.UserID()).Str("entry_id", id).Msg("error decrypting vault entry")
		return "", mapOpenError(err)
	}

	return secret, nil
}

// UpdateSecret re-encrypts an entry with newSecret under a fresh nonce.
func (v *vaultService) UpdateSecret(ctx context.Context, owner models.Owner, id, newSecret string) error {
	log := logger.FromContextOr(ctx, v.logger)

	req := models.UpdateSecretRequest{Owner: owner, EntryID: id, Secret: newSecret}
	if err := v.validator.Validate(ctx, req); err != nil {
		return mapValidationError(err)
	}

	ciphertext, err := v.sealer.Seal(ctx, newSecret)
	if err != nil {
		log.Err(err).Str("func", "*vaultService.UpdateSecret").Int64("owner_id", owner.UserID()).Str("entry_id", id).Msg("error encrypting secret")
		return fmt.Errorf("encrypt secret: %w", err)
	}

	if err = v.entries.UpdateCiphertext(ctx, owner.UserID(), id, ciphertext, v.now().UTC()); err != nil {
		log.Err(err).Str("func", "*vaultService.UpdateSecret").Int64("owner_id", owner.UserID()).Str("entry_id", id).Msg("error updating vault entry")
		return mapStoreError(err)
	}

	log.Info().Str("func", "*vaultService.UpdateSecret").Int64("owner_id", owner.UserID()).Str("entry_id", id).Msg("vault entry secret updated")
	return nil
}

// RenameEntry replaces the label of an entry. The secret is untouched.
func (v *vaultService) RenameEntry(ctx context.Context, owner models.Owner, id, label string) error {
	log := logger.FromContextOr(ctx, v.logger)

	req := models.RenameEntryRequest{Owner: owner, EntryID: id, Label: validators.NormalizeText(label)}
	if err := v.validator.Validate(ctx, req); err != nil {
		return mapValidationError(err)
	}

	if err := v.entries.UpdateLabel(ctx, owner.UserID(), id, req.Label, v.now().UTC()); err != nil {
		log.Err(err).Str("func", "*vaultService.RenameEntry").Int64("owner_id", owner.UserID()).Str("entry_id", id).Msg("error renaming vault entry")
		return mapStoreError(err)
	}

	return nil
}

func (v *vaultService) DeleteEntry(ctx context.Context, owner models.Owner, id string) error {
	log := logger.FromContextOr(ctx, v.logger)

	req := models.EntryRequest{Owner: owner, EntryID: id}
	if err := v.validator.Validate(ctx, req); err != nil {
		return mapValidationError(err)
	}

	if err := v.entries.DeleteEntry(ctx, owner.UserID(), id); err != nil {
		log.Err(err).Str("func", "*vaultService.DeleteEntry").Int64("owner_id", owner.UserID()).Str("entry_id", id).Msg("error deleting vault entry")
		return mapStoreError(err)
	}

	log.Info().Str("func", "*vaultService.DeleteEntry").Int64("owner_id", owner.UserID()).Str("entry_id", id).Msg("vault entry deleted")
	return nil
}

func (v *vaultService) AdviseSecret(secret string) policy.Verdict {
	return v.advisor.Evaluate(secret)
}
