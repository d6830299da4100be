// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryption is returned whenever a blob cannot be opened: wrong
	// password, tampered fields or mismatching parameters. It deliberately
	// carries no detail about which check failed.
	ErrDecryption = errors.New("decryption failed")

	ErrUnknownRecordType    = errors.New("unknown record type")
	ErrUnknownRecordField   = errors.New("field is not part of the record schema")
	ErrAttachmentNotAllowed = errors.New("only document records carry an attachment")
	ErrInvalidMasterKey     = errors.New("invalid master key")
	ErrInvalidPEM           = errors.New("invalid PEM key")
	ErrInvalidBoxKey        = errors.New("invalid box key")
	ErrRandomSource         = errors.New("reading random bytes failed")
)
