// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RecordType names the kind of legacy asset a record describes.
type RecordType string

const (
	Account  RecordType = "account"
	Document RecordType = "document"
	Heir     RecordType = "heir"
	Loan     RecordType = "loan"
)

// EncryptedFieldPrefix is prepended to a field name once its value has been
// replaced by an [EncryptedBlob].
const EncryptedFieldPrefix = "encrypted_"

// EncryptedFieldSentinel is shown in place of a field that could not be
// decrypted.
const EncryptedFieldSentinel = "[Encrypted]"

// RecordMetadata is the non-sensitive part of a record. It is stored in the
// clear so it can be queried and reported on.
type RecordMetadata struct {
	Category       string    `json:"category,omitempty"`
	EstimatedValue float64   `json:"estimatedValue,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Record is a plaintext account, document, heir or loan entry. It only exists
// on the side that holds the master key.
type Record struct {
	ID       string            `json:"id"`
	Type     RecordType        `json:"type"`
	Fields   map[string]string `json:"fields"`
	Metadata RecordMetadata    `json:"metadata"`

	// Attachment is the content of a scanned document. Only document
	// records carry one.
	Attachment []byte `json:"-"`
}

// EncryptedRecord is a [Record] whose sensitive fields have each been replaced
// by an [EncryptedBlob]. Keys of Fields are "encrypted_<field>".
type EncryptedRecord struct {
	ID         string                   `json:"id"`
	Type       RecordType               `json:"type"`
	Fields     map[string]EncryptedBlob `json:"fields"`
	Metadata   RecordMetadata           `json:"metadata"`
	Attachment *EncryptedBlob           `json:"attachment,omitempty"`
}

// FieldValue is the outcome of decrypting one field. When Failed is set,
// Value holds [EncryptedFieldSentinel].
type FieldValue struct {
	Value  string `json:"value"`
	Failed bool   `json:"failed,omitempty"`
}

// DecryptedRecord is the result of a resilient record decryption. Partial is
// set when at least one field could not be decrypted.
// The attachment is not opened; HasAttachment only reports that one exists.
type DecryptedRecord struct {
	ID            string                `json:"id"`
	Type          RecordType            `json:"type"`
	Fields        map[string]FieldValue `json:"fields"`
	Metadata      RecordMetadata        `json:"metadata"`
	Partial       bool                  `json:"partial,omitempty"`
	HasAttachment bool                  `json:"hasAttachment,omitempty"`
}

// SearchableRecord pairs encrypted content with its blinded token index.
type SearchableRecord struct {
	ID            string        `json:"id"`
	EncryptedData EncryptedBlob `json:"encryptedData"`
	SearchIndex   []string      `json:"searchIndex"`
	IndexVersion  int           `json:"indexVersion"`
}

// VaultEntry is a record as kept in the client's local store: the encrypted
// fields plus a blinded index over their plaintext.
type VaultEntry struct {
	Record EncryptedRecord  `json:"record"`
	Search SearchableRecord `json:"search"`
}
