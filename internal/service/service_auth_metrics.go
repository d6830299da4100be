package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/metrics"
	"github.com/MKhiriev/go-legacy-keeper/models"
)

const metricsDomain = "auth"

// authServiceWithMetrics decorates AuthService with operation counters,
// latency histograms and login attempt outcomes.
type authServiceWithMetrics struct {
	next    AuthService
	metrics metrics.BusinessMetrics
}

// AuthServiceWrapper decorates an AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// MetricsWrapper is an [AuthServiceWrapper] recording into m.
type MetricsWrapper struct {
	metrics metrics.BusinessMetrics
}

func NewMetricsWrapper(m metrics.BusinessMetrics) *MetricsWrapper {
	return &MetricsWrapper{metrics: m}
}

func (w *MetricsWrapper) Wrap(next AuthService) AuthService {
	return &authServiceWithMetrics{next: next, metrics: w.metrics}
}

func (a *authServiceWithMetrics) Register(ctx context.Context, req models.RegisterRequest, meta models.ClientMeta) (models.AuthResult, error) {
	start := time.Now()
	res, err := a.next.Register(ctx, req, meta)
	a.observe(ctx, "register", start, err)
	return res, err
}

func (a *authServiceWithMetrics) Login(ctx context.Context, req models.LoginRequest, meta models.ClientMeta) (models.AuthResult, error) {
	start := time.Now()
	res, err := a.next.Login(ctx, req, meta)
	a.observe(ctx, "login", start, err)
	a.metrics.RecordAuthAttempt(ctx, string(models.AuthMethodPassword), outcome(err))
	return res, err
}

func (a *authServiceWithMetrics) BiometricLogin(ctx context.Context, req models.BiometricLoginRequest, meta models.ClientMeta) (models.AuthResult, error) {
	start := time.Now()
	res, err := a.next.BiometricLogin(ctx, req, meta)
	a.observe(ctx, "biometric_login", start, err)
	a.metrics.RecordAuthAttempt(ctx, string(models.AuthMethodBiometric), outcome(err))
	return res, err
}

func (a *authServiceWithMetrics) EnrollBiometric(ctx context.Context, userID int64, req models.BiometricEnrollRequest, meta models.ClientMeta) error {
	start := time.Now()
	err := a.next.EnrollBiometric(ctx, userID, req, meta)
	a.observe(ctx, "biometric_enroll", start, err)
	return err
}

func (a *authServiceWithMetrics) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return a.next.ParseToken(ctx, tokenString)
}

func (a *authServiceWithMetrics) observe(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	a.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	a.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

func outcome(err error) string {
	var (
		locked     *AccountLockedError
		validation *ValidationError
	)
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrInvalidCredentials):
		return metrics.OutcomeInvalidCredentials
	case errors.As(err, &locked):
		return metrics.OutcomeLocked
	case errors.As(err, &validation):
		return metrics.OutcomeValidation
	default:
		return metrics.OutcomeError
	}
}
