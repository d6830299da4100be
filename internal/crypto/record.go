// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-legacy-keeper/models"
)

// recordSchemas lists the sensitive fields of every record type. Anything not
// listed here is either metadata or rejected.
var recordSchemas = map[models.RecordType][]string{
	models.Account:  {"institution", "account_number", "username", "password", "url", "notes"},
	models.Document: {"title", "description", "file_name", "location", "notes"},
	models.Heir:     {"full_name", "email", "phone", "relationship", "notes"},
	models.Loan:     {"lender", "account_number", "borrower", "terms", "notes"},
}

// RecordSchema returns the encrypted field names of t.
func RecordSchema(t models.RecordType) ([]string, bool) {
	fields, ok := recordSchemas[t]
	if !ok {
		return nil, false
	}
	return slices.Clone(fields), true
}

// EncryptRecord implements [KeyChainService]. Empty fields are omitted rather
// than encrypted to an empty blob.
func (k *keyChainService) EncryptRecord(record models.Record, masterKey MasterKey) (models.EncryptedRecord, error) {
	schema, ok := recordSchemas[record.Type]
	if !ok {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %q", ErrUnknownRecordType, record.Type)
	}
	for name := range record.Fields {
		if !slices.Contains(schema, name) {
			return models.EncryptedRecord{}, fmt.Errorf("%w: %s.%s", ErrUnknownRecordField, record.Type, name)
		}
	}
	if len(record.Attachment) > 0 && record.Type != models.Document {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %q", ErrAttachmentNotAllowed, record.Type)
	}

	password := masterKey.Secret()
	encrypted := models.EncryptedRecord{
		ID:       record.ID,
		Type:     record.Type,
		Fields:   make(map[string]models.EncryptedBlob, len(record.Fields)),
		Metadata: record.Metadata,
	}

	for _, name := range schema {
		value := record.Fields[name]
		if value == "" {
			continue
		}

		blob, err := k.Encrypt(value, password)
		if err != nil {
			return models.EncryptedRecord{}, fmt.Errorf("encrypt field %s: %w", name, err)
		}
		encrypted.Fields[models.EncryptedFieldPrefix+name] = blob
	}

	if len(record.Attachment) > 0 {
		blob, err := k.EncryptFile(record.Attachment, password)
		if err != nil {
			return models.EncryptedRecord{}, fmt.Errorf("encrypt attachment: %w", err)
		}
		encrypted.Attachment = &blob
	}

	return encrypted, nil
}

// DecryptRecord implements [KeyChainService].
func (k *keyChainService) DecryptRecord(record models.EncryptedRecord, masterKey MasterKey) models.DecryptedRecord {
	password := masterKey.Secret()
	decrypted := models.DecryptedRecord{
		ID:       record.ID,
		Type:     record.Type,
		Fields:   make(map[string]models.FieldValue, len(record.Fields)),
		Metadata: record.Metadata,

		HasAttachment: record.Attachment != nil,
	}

	for key, blob := range record.Fields {
		name := strings.TrimPrefix(key, models.EncryptedFieldPrefix)

		value, err := k.Decrypt(blob, password)
		if err != nil {
			decrypted.Fields[name] = models.FieldValue{Value: models.EncryptedFieldSentinel, Failed: true}
			decrypted.Partial = true
			continue
		}
		decrypted.Fields[name] = models.FieldValue{Value: value}
	}

	return decrypted
}

// SearchableText joins the plaintext fields of record in schema order. It is
// the text a client indexes for keyword search.
func SearchableText(record models.Record) string {
	schema := recordSchemas[record.Type]
	parts := make([]string, 0, len(schema))
	for _, name := range schema {
		if v := record.Fields[name]; v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}
