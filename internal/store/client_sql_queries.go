// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	upsertVaultEntry = `
		INSERT INTO vault_records (
			id, owner_email, record_type, fields, metadata,
			search_data, search_index, index_version, attachment, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			record_type   = excluded.record_type,
			fields        = excluded.fields,
			metadata      = excluded.metadata,
			search_data   = excluded.search_data,
			search_index  = excluded.search_index,
			index_version = excluded.index_version,
			attachment    = excluded.attachment,
			updated_at    = excluded.updated_at
		WHERE vault_records.owner_email = excluded.owner_email;`

	deleteVaultEntry = `DELETE FROM vault_records WHERE owner_email = ? AND id = ?;`

	upsertDeviceSecret = `
		INSERT INTO device_secrets (owner_email, secret, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (owner_email) DO UPDATE SET secret = excluded.secret, created_at = excluded.created_at;`

	getDeviceSecret    = `SELECT secret FROM device_secrets WHERE owner_email = ?;`
	deleteDeviceSecret = `DELETE FROM device_secrets WHERE owner_email = ?;`

	// the first check written for an owner stays authoritative
	insertKeyCheck = `
		INSERT INTO vault_key_checks (owner_email, check_blob, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (owner_email) DO NOTHING;`

	getKeyCheck = `SELECT check_blob FROM vault_key_checks WHERE owner_email = ?;`
)

var vaultColumns = []string{
	"id", "record_type", "fields", "metadata",
	"search_data", "search_index", "index_version", "attachment",
}

// buildSelectVaultEntriesQuery selects the owner's entries, optionally
// narrowed to one id, oldest first.
func buildSelectVaultEntriesQuery(owner string, id string) (string, []any, error) {
	where := sq.Eq{"owner_email": owner}
	if id != "" {
		where["id"] = id
	}

	query, args, err := sq.
		Select(vaultColumns...).
		From("vault_records").
		Where(where).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
