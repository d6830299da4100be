// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/models"
)

type localVaultRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewLocalVaultRepository(db *DB, logger *logger.Logger) LocalVaultRepository {
	return &localVaultRepository{db: db, logger: logger}
}

func (r *localVaultRepository) SaveEntry(ctx context.Context, owner string, entry models.VaultEntry) error {
	log := logger.FromContext(ctx)

	fields, err := json.Marshal(entry.Record.Fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}
	metadata, err := json.Marshal(entry.Record.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	index, err := json.Marshal(entry.Search.SearchIndex)
	if err != nil {
		return fmt.Errorf("encode search index: %w", err)
	}

	createdAt := entry.Record.Metadata.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := entry.Record.Metadata.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	var attachment any
	if entry.Record.Attachment != nil {
		attachment = *entry.Record.Attachment
	}

	_, err = r.db.ExecContext(ctx, upsertVaultEntry,
		entry.Record.ID, owner, string(entry.Record.Type), string(fields), string(metadata),
		entry.Search.EncryptedData, string(index), entry.Search.IndexVersion, attachment, createdAt, updatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*localVaultRepository.SaveEntry").Msg("error saving vault entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *localVaultRepository) GetEntry(ctx context.Context, owner, id string) (models.VaultEntry, error) {
	entries, err := r.selectEntries(ctx, owner, id)
	if err != nil {
		return models.VaultEntry{}, err
	}
	if len(entries) == 0 {
		return models.VaultEntry{}, ErrRecordNotFound
	}
	return entries[0], nil
}

func (r *localVaultRepository) ListEntries(ctx context.Context, owner string) ([]models.VaultEntry, error) {
	return r.selectEntries(ctx, owner, "")
}

func (r *localVaultRepository) DeleteEntry(ctx context.Context, owner, id string) error {
	res, err := r.db.ExecContext(ctx, deleteVaultEntry, owner, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *localVaultRepository) SaveKeyCheck(ctx context.Context, owner string, check models.EncryptedBlob) error {
	if _, err := r.db.ExecContext(ctx, insertKeyCheck, owner, check, time.Now().UTC()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localVaultRepository.SaveKeyCheck").Msg("error saving key check")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *localVaultRepository) GetKeyCheck(ctx context.Context, owner string) (models.EncryptedBlob, error) {
	var check models.EncryptedBlob
	err := r.db.QueryRowContext(ctx, getKeyCheck, owner).Scan(&check)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EncryptedBlob{}, ErrKeyCheckAbsent
	}
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return check, nil
}

func (r *localVaultRepository) selectEntries(ctx context.Context, owner, id string) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVaultEntriesQuery(owner, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*localVaultRepository.selectEntries").Msg("error querying vault")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.VaultEntry, 0)
	for rows.Next() {
		var (
			e                       models.VaultEntry
			recordType              string
			fields, metadata, index string
			attachment              models.EncryptedBlob
		)
		if err := rows.Scan(&e.Record.ID, &recordType, &fields, &metadata,
			&e.Search.EncryptedData, &index, &e.Search.IndexVersion, &attachment); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if !attachment.IsZero() {
			e.Record.Attachment = &attachment
		}

		e.Record.Type = models.RecordType(recordType)
		e.Search.ID = e.Record.ID
		if err := json.Unmarshal([]byte(fields), &e.Record.Fields); err != nil {
			return nil, fmt.Errorf("%w: fields: %w", ErrScanningRows, err)
		}
		if err := json.Unmarshal([]byte(metadata), &e.Record.Metadata); err != nil {
			return nil, fmt.Errorf("%w: metadata: %w", ErrScanningRows, err)
		}
		if err := json.Unmarshal([]byte(index), &e.Search.SearchIndex); err != nil {
			return nil, fmt.Errorf("%w: search index: %w", ErrScanningRows, err)
		}

		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
