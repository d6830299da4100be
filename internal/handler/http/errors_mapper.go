package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/service"
	"github.com/MKhiriev/go-legacy-keeper/internal/utils"
	"github.com/MKhiriev/go-legacy-keeper/models"
)

// Error codes of models.ErrorResponse.
const (
	codeInvalidRequest     = "invalid_request"
	codeValidation         = "validation_error"
	codeInvalidCredentials = "invalid_credentials"
	codeDuplicateAccount   = "duplicate_account"
	codeAccountLocked      = "account_locked"
	codeUnauthorized       = "unauthorized"
	codeRateLimited        = "rate_limit_exceeded"
	codeInternal           = "internal_error"
)

type errorStatus struct {
	status int
	code   string
}

var errorStatusMap = map[error]errorStatus{
	errInvalidJSON:                     {http.StatusBadRequest, codeInvalidRequest},
	service.ErrInvalidCredentials:      {http.StatusUnauthorized, codeInvalidCredentials},
	service.ErrDuplicateAccount:        {http.StatusConflict, codeDuplicateAccount},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, codeUnauthorized},
}

// statusFromError finds the sentinel err wraps and returns it with its
// status and code. ok is false for anything else.
func statusFromError(err error) (sentinel error, status errorStatus, ok bool) {
	for target, st := range errorStatusMap {
		if errors.Is(err, target) {
			return target, st, true
		}
	}
	return nil, errorStatus{}, false
}

// errorResponse turns a service error into the HTTP status and body sent to
// the client. Unknown errors become a bare 500 so internals never leak.
func errorResponse(err error) (int, models.ErrorResponse) {
	var validationErr *service.ValidationError
	var lockedErr *service.AccountLockedError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, models.ErrorResponse{
			Error:   codeValidation,
			Message: "request validation failed",
			Fields:  validationErr.Fields,
		}
	case errors.As(err, &lockedErr):
		until := lockedErr.Until.UTC()
		return http.StatusLocked, models.ErrorResponse{
			Error:       codeAccountLocked,
			Message:     "account is temporarily locked after too many failed attempts",
			LockedUntil: &until,
		}
	}

	// Only the sentinel's own text is sent; wrapping context stays in the log.
	if sentinel, st, ok := statusFromError(err); ok {
		return st.status, models.ErrorResponse{Error: st.code, Message: sentinel.Error()}
	}

	return http.StatusInternalServerError, models.ErrorResponse{
		Error:   codeInternal,
		Message: "internal server error",
	}
}

// writeError logs err and writes the mapped JSON error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, body := errorResponse(err)

	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Msg("request failed")
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if body.LockedUntil != nil {
		w.Header().Set("Retry-After", retryAfterSeconds(time.Until(*body.LockedUntil)))
	}

	if _, wErr := utils.WriteJSON(w, body, status); wErr != nil {
		log.Err(wErr).Msg("writing error response")
	}
}

// retryAfterSeconds formats d as a Retry-After value, rounded up and never
// below one second.
func retryAfterSeconds(d time.Duration) string {
	secs := int64(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.FormatInt(secs, 10)
}
