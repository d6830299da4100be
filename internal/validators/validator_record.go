// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-legacy-keeper/models"
	validation "github.com/jellydator/validation"
)

var recordTypes = []any{models.Account, models.Document, models.Heir, models.Loan}

// RecordValidator validates plaintext vault records before encryption.
type RecordValidator struct{}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return toFieldErrors(v.validateRecord(ctx, &value), fields...)
	case *models.Record:
		return toFieldErrors(v.validateRecord(ctx, value), fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RecordValidator) validateRecord(_ context.Context, r *models.Record) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Type, validation.Required, validation.In(recordTypes...).Error("must be account, document, heir or loan")),
		validation.Field(&r.Fields, validation.Required.Error("at least one field is required")),
		validation.Field(&r.Metadata, validation.By(func(value any) error {
			m, _ := value.(models.RecordMetadata)
			if m.EstimatedValue < 0 {
				return validation.NewError("validation_estimated_value", "estimatedValue cannot be negative")
			}
			return nil
		})),
	)
}
