package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error, so the CLI reacts the same way the server service does.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var locked *adapter.LockedError
	switch {
	case errors.As(err, &locked):
		until := time.Time{}
		if locked.Until != nil {
			until = *locked.Until
		}
		return &AccountLockedError{Until: until}
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrInvalidCredentials
	case errors.Is(err, adapter.ErrConflict):
		return ErrDuplicateAccount
	default:
		return fmt.Errorf("server request failed: %w", err)
	}
}
