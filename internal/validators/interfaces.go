// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of inbound requests before any
// credential or key material is touched.
//
// A failed validation returns [FieldErrors], a map from the JSON field name to
// a human-readable message. The service layer turns it into a 400 response;
// validation failures are never counted as suspicious activity.
package validators

import "context"

// Validator validates a value. When fields are given, only errors for those
// JSON field names are reported.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
