package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/crypto"
	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/store"
	"github.com/MKhiriev/go-legacy-keeper/internal/utils"
	"github.com/MKhiriev/go-legacy-keeper/internal/validators"
	"github.com/MKhiriev/go-legacy-keeper/models"
)

// keyCheckPlaintext is sealed under the master key as the vault's key check.
const keyCheckPlaintext = "legacy-keeper/vault-key-check"

type clientVaultService struct {
	vault     store.LocalVaultRepository
	keyChain  crypto.KeyChainService
	keyring   *Keyring
	verifier  CredentialVerifier
	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time
}

func NewClientVaultService(vault store.LocalVaultRepository, keyChain crypto.KeyChainService, keyring *Keyring, verifier CredentialVerifier) ClientVaultService {
	return &clientVaultService{
		vault:     vault,
		keyChain:  keyChain,
		keyring:   keyring,
		verifier:  verifier,
		validator: validators.NewRecordValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
	}
}

func (v *clientVaultService) Unlock(ctx context.Context, email, password string) error {
	email = crypto.NormalizeEmail(email)

	masterKey := v.keyChain.CreateMasterKey(email, password)
	defer masterKey.Zero()

	check, err := v.vault.GetKeyCheck(ctx, email)
	switch {
	case err == nil:
		if _, err := v.keyChain.Decrypt(check, masterKey.Secret()); err != nil {
			return ErrInvalidCredentials
		}
	case errors.Is(err, store.ErrKeyCheckAbsent):
		if err := v.verifyFirstUnlock(ctx, email, password, masterKey); err != nil {
			return err
		}
		if err := v.saveKeyCheck(ctx, email, masterKey); err != nil {
			return err
		}
	default:
		return fmt.Errorf("reading key check: %w", err)
	}

	v.keyring.Unlock(email, 0, masterKey)
	return nil
}

// verifyFirstUnlock checks the credentials of an owner without a key check:
// against the oldest entry when there is one, otherwise with the server.
func (v *clientVaultService) verifyFirstUnlock(ctx context.Context, email, password string, masterKey crypto.MasterKey) error {
	entries, err := v.vault.ListEntries(ctx, email)
	if err != nil {
		return fmt.Errorf("reading vault: %w", err)
	}
	if len(entries) > 0 {
		if _, err := v.keyChain.Decrypt(entries[0].Search.EncryptedData, masterKey.Secret()); err != nil {
			return ErrInvalidCredentials
		}
		return nil
	}

	if v.verifier == nil {
		return ErrVaultUnverified
	}
	if _, err := v.verifier.Login(ctx, email, password); err != nil {
		return err
	}
	return nil
}

func (v *clientVaultService) saveKeyCheck(ctx context.Context, email string, masterKey crypto.MasterKey) error {
	check, err := v.keyChain.Encrypt(keyCheckPlaintext, masterKey.Secret())
	if err != nil {
		return fmt.Errorf("sealing key check: %w", err)
	}
	if err := v.vault.SaveKeyCheck(ctx, email, check); err != nil {
		return fmt.Errorf("saving key check: %w", err)
	}
	return nil
}

// AddRecord assigns a UUIDv7 when record has no ID. Saving a record with an
// existing ID replaces it.
func (v *clientVaultService) AddRecord(ctx context.Context, record models.Record) (string, error) {
	if err := v.validator.Validate(ctx, record); err != nil {
		return "", asValidationError(err)
	}

	masterKey, owner, err := v.keyring.MasterKey()
	if err != nil {
		return "", err
	}
	defer masterKey.Zero()

	if record.ID == "" {
		record.ID = v.ids.Generate()
	}
	now := v.now().UTC()
	if record.Metadata.CreatedAt.IsZero() {
		record.Metadata.CreatedAt = now
	}
	record.Metadata.UpdatedAt = now

	encrypted, err := v.keyChain.EncryptRecord(record, masterKey)
	if errors.Is(err, crypto.ErrUnknownRecordField) || errors.Is(err, crypto.ErrUnknownRecordType) {
		return "", &ValidationError{Fields: map[string]string{"fields": err.Error()}}
	}
	if errors.Is(err, crypto.ErrAttachmentNotAllowed) {
		return "", &ValidationError{Fields: map[string]string{"attachment": err.Error()}}
	}
	if err != nil {
		return "", fmt.Errorf("encrypting record: %w", err)
	}

	search, err := v.keyChain.CreateSearchableIndex(crypto.SearchableText(record), masterKey)
	if err != nil {
		return "", fmt.Errorf("indexing record: %w", err)
	}
	search.ID = record.ID

	if err := v.vault.SaveEntry(ctx, owner, models.VaultEntry{Record: encrypted, Search: search}); err != nil {
		return "", fmt.Errorf("saving record: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("record_id", record.ID).Str("type", string(record.Type)).Msg("record saved")
	return record.ID, nil
}

func (v *clientVaultService) GetRecord(ctx context.Context, id string) (models.DecryptedRecord, error) {
	masterKey, owner, err := v.keyring.MasterKey()
	if err != nil {
		return models.DecryptedRecord{}, err
	}
	defer masterKey.Zero()

	entry, err := v.vault.GetEntry(ctx, owner, id)
	if err != nil {
		return models.DecryptedRecord{}, err
	}

	return v.keyChain.DecryptRecord(entry.Record, masterKey), nil
}

func (v *clientVaultService) ListRecords(ctx context.Context) ([]models.DecryptedRecord, error) {
	masterKey, owner, err := v.keyring.MasterKey()
	if err != nil {
		return nil, err
	}
	defer masterKey.Zero()

	entries, err := v.vault.ListEntries(ctx, owner)
	if err != nil {
		return nil, err
	}

	records := make([]models.DecryptedRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, v.keyChain.DecryptRecord(e.Record, masterKey))
	}
	return records, nil
}

func (v *clientVaultService) Search(ctx context.Context, term string) ([]models.DecryptedRecord, error) {
	masterKey, owner, err := v.keyring.MasterKey()
	if err != nil {
		return nil, err
	}
	defer masterKey.Zero()

	entries, err := v.vault.ListEntries(ctx, owner)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.EncryptedRecord, len(entries))
	searchable := make([]models.SearchableRecord, 0, len(entries))
	for _, e := range entries {
		byID[e.Record.ID] = e.Record
		searchable = append(searchable, e.Search)
	}

	matches, err := v.keyChain.SearchEncryptedData(term, searchable, masterKey)
	if err != nil {
		return nil, fmt.Errorf("searching vault: %w", err)
	}

	records := make([]models.DecryptedRecord, 0, len(matches))
	for _, m := range matches {
		if rec, ok := byID[m.ID]; ok {
			records = append(records, v.keyChain.DecryptRecord(rec, masterKey))
		}
	}
	return records, nil
}

func (v *clientVaultService) DeleteRecord(ctx context.Context, id string) error {
	_, owner, err := v.keyring.MasterKey()
	if err != nil {
		return err
	}
	return v.vault.DeleteEntry(ctx, owner, id)
}

// GetAttachment fails with crypto.ErrDecryption when the attachment does not
// open under the unlocked key; unlike fields it has no partial result.
func (v *clientVaultService) GetAttachment(ctx context.Context, id string) ([]byte, error) {
	masterKey, owner, err := v.keyring.MasterKey()
	if err != nil {
		return nil, err
	}
	defer masterKey.Zero()

	entry, err := v.vault.GetEntry(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if entry.Record.Attachment == nil {
		return nil, ErrNoAttachment
	}

	data, err := v.keyChain.DecryptFile(*entry.Record.Attachment, masterKey.Secret())
	if err != nil {
		return nil, fmt.Errorf("opening attachment: %w", err)
	}
	return data, nil
}
