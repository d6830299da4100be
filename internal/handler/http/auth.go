package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/service"
	"github.com/MKhiriev/go-legacy-keeper/internal/utils"
	"github.com/MKhiriev/go-legacy-keeper/models"
)

// maxBodyBytes caps auth request bodies. The largest legitimate body is a
// registration carrying a wrapped key pair.
const maxBodyBytes = 64 << 10

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Register(r.Context(), req, utils.ClientMetaFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", result.User.ID).Msg("user registered")
	h.writeResult(w, r, result, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req, utils.ClientMetaFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeResult(w, r, result, http.StatusOK)
}

func (h *Handler) biometricLogin(w http.ResponseWriter, r *http.Request) {
	var req models.BiometricLoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.BiometricLogin(r.Context(), req, utils.ClientMetaFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeResult(w, r, result, http.StatusOK)
}

func (h *Handler) enrollBiometric(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	var req models.BiometricEnrollRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.EnrollBiometric(r.Context(), userID, req, utils.ClientMetaFromRequest(r)); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, result models.AuthResult, status int) {
	w.Header().Set("Cache-Control", "no-store")
	if _, err := utils.WriteJSON(w, result, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing auth response")
	}
}

// decodeJSON reads a single JSON object from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return nil
}
