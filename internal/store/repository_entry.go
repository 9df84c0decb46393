// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// entryRepository is the SQL-backed implementation of [EntryRepository]
// over the "vault_entries" table. Every statement filters on both id and
// owner_id, so an entry of another owner behaves exactly like a missing one.
//
// Ciphertexts and labels are never logged; only ids are.
type entryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by db.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating vault entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *entryRepository) CreateEntry(ctx context.Context, entry models.VaultEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEntryQuery(r.db.builder, entry)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").
			Int64("owner_id", entry.OwnerID).
			Str("entry_id", entry.ID).
			Msg("error inserting vault entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}

	return nil
}

func (r *entryRepository) ListEntries(ctx context.Context, ownerID int64) ([]models.EntrySummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(r.db.builder, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Int64("owner_id", ownerID).Msg("error listing vault entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	summaries := make([]models.EntrySummary, 0)
	for rows.Next() {
		var s models.EntrySummary
		if err = rows.Scan(&s.ID, &s.Label, &s.CreatedAt, &s.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*entryRepository.ListEntries").Int64("owner_id", ownerID).Msg("error scanning vault entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Int64("owner_id", ownerID).Msg("error iterating vault entry rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	return summaries, nil
}

func (r *entryRepository) GetEntry(ctx context.Context, ownerID int64, id string) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryQuery(r.db.builder, ownerID, id)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.GetEntry").Msg("error building select query")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var e models.VaultEntry
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&e.ID, &e.OwnerID, &e.Label, &e.Ciphertext, &e.CreatedAt, &e.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Str("func", "*entryRepository.GetEntry").Int64("owner_id", ownerID).Str("entry_id", id).Msg("vault entry not found")
		return models.VaultEntry{}, ErrEntryNotFound
	case err != nil:
		log.Err(err).Str("func", "*entryRepository.GetEntry").Int64("owner_id", ownerID).Str("entry_id", id).Msg("error getting vault entry")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	return e, nil
}

func (r *entryRepository) UpdateCiphertext(ctx context.Context, ownerID int64, id string, ciphertext []byte, at time.Time) error {
	query, args, err := buildUpdateEntryQuery(r.db.builder, ownerID, id, "ciphertext", ciphertext, at)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryRepository.UpdateCiphertext").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.execOwned(ctx, "*entryRepository.UpdateCiphertext", ownerID, id, query, args)
}

func (r *entryRepository) UpdateLabel(ctx context.Context, ownerID int64, id, label string, at time.Time) error {
	query, args, err := buildUpdateEntryQuery(r.db.builder, ownerID, id, "label", label, at)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryRepository.UpdateLabel").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.execOwned(ctx, "*entryRepository.UpdateLabel", ownerID, id, query, args)
}

func (r *entryRepository) DeleteEntry(ctx context.Context, ownerID int64, id string) error {
	query, args, err := buildDeleteEntryQuery(r.db.builder, ownerID, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryRepository.DeleteEntry").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.execOwned(ctx, "*entryRepository.DeleteEntry", ownerID, id, query, args)
}

// execOwned runs a single-row statement and reports [ErrEntryNotFound] when
// it matched nothing.
func (r *entryRepository) execOwned(ctx context.Context, funcName string, ownerID int64, id, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("owner_id", ownerID).Str("entry_id", id).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("owner_id", ownerID).Str("entry_id", id).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Debug().Str("func", funcName).Int64("owner_id", ownerID).Str("entry_id", id).Msg("vault entry not found")
		return ErrEntryNotFound
	}

	return nil
}
