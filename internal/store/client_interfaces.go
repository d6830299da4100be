// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-legacy-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalVaultRepository keeps encrypted records on the client device. Entries
// are scoped by owner email so several accounts can share one database.
type LocalVaultRepository interface {
	// SaveEntry inserts the entry or replaces the one with the same ID.
	SaveEntry(ctx context.Context, owner string, entry models.VaultEntry) error
	GetEntry(ctx context.Context, owner, id string) (models.VaultEntry, error)
	ListEntries(ctx context.Context, owner string) ([]models.VaultEntry, error)
	DeleteEntry(ctx context.Context, owner, id string) error

	// SaveKeyCheck stores a blob sealed under the owner's master key. An
	// existing check is kept.
	SaveKeyCheck(ctx context.Context, owner string, check models.EncryptedBlob) error

	// GetKeyCheck returns ErrKeyCheckAbsent until a check has been saved.
	GetKeyCheck(ctx context.Context, owner string) (models.EncryptedBlob, error)
}

// DeviceSecretRepository stores the per-device secret that wraps the master
// key for biometric login. The secret never leaves the device.
type DeviceSecretRepository interface {
	SaveSecret(ctx context.Context, owner, secret string) error
	GetSecret(ctx context.Context, owner string) (string, error)
	DeleteSecret(ctx context.Context, owner string) error
}
