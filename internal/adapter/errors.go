package adapter

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrLocked              = errors.New("account locked")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	ErrNoToken = errors.New("no access token, log in first")
)

// LockedError is returned for 423 responses. It matches [ErrLocked].
type LockedError struct {
	Until *time.Time
}

func (e *LockedError) Error() string {
	if e.Until == nil {
		return ErrLocked.Error()
	}
	return fmt.Sprintf("%s until %s", ErrLocked, e.Until.Format(time.RFC3339))
}

func (e *LockedError) Is(target error) bool {
	return target == ErrLocked
}
