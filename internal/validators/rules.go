// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"regexp"

	"github.com/MKhiriev/go-legacy-keeper/models"
	validation "github.com/jellydator/validation"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 1024
	MaxEmailLength    = 254
)

var (
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	masterKeyRegex = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)
)

// emailRules are shared by every request carrying an email.
var emailRules = []validation.Rule{
	validation.Required,
	validation.Length(3, MaxEmailLength),
	validation.Match(emailRegex).Error("must be a valid email address"),
}

// blobRule checks that an encrypted blob carries every part needed to open it.
var blobRule = validation.By(func(value any) error {
	var blob models.EncryptedBlob
	switch v := value.(type) {
	case models.EncryptedBlob:
		blob = v
	case *models.EncryptedBlob:
		if v == nil {
			return nil
		}
		blob = *v
	default:
		return errors.New("must be an encrypted blob")
	}

	if err := blob.Validate(); err != nil {
		return errors.New("must include ciphertext, salt, iv, iterations and algorithm")
	}
	return nil
})

// toFieldErrors flattens jellydator errors into FieldErrors, keeping only the
// requested fields when any are given.
func toFieldErrors(err error, fields ...string) error {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, len(verrs))
	for name, fieldErr := range verrs {
		if len(fields) > 0 && !contains(fields, name) {
			continue
		}
		out[name] = fieldErr.Error()
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
