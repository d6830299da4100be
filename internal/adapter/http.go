package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-legacy-keeper/internal/config"
	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/utils"
	"github.com/MKhiriev/go-legacy-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.ServerAddress and
// configures the underlying HTTP client with the request timeout.
//
// Returns an error if cfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs to /api/auth/register and
// expects 201 with an [models.AuthResult].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	return h.authenticate(ctx, "/api/auth/register", req)
}

// Login implements [ServerAdapter]. It POSTs to /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

// BiometricLogin implements [ServerAdapter]. It POSTs to
// /api/auth/biometric-login.
func (h *httpServerAdapter) BiometricLogin(ctx context.Context, req models.BiometricLoginRequest) (models.AuthResult, error) {
	return h.authenticate(ctx, "/api/auth/biometric-login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResult, error) {
	var result models.AuthResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}
	if result.Token == "" {
		return models.AuthResult{}, fmt.Errorf("%s: response carries no token", path)
	}

	h.SetToken(result.Token)
	return result, nil
}

// EnrollBiometric implements [ServerAdapter]. It POSTs to
// /api/auth/biometric/enroll with the stored bearer token.
func (h *httpServerAdapter) EnrollBiometric(ctx context.Context, req models.BiometricEnrollRequest) error {
	if h.token == "" {
		return ErrNoToken
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/biometric/enroll")
	if err != nil {
		return fmt.Errorf("enroll biometric request: %w", err)
	}
	return mapHTTPError(resp)
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/healthz")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}
