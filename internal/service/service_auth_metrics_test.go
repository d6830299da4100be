package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/metrics"
	"github.com/MKhiriev/go-legacy-keeper/internal/mock"
	"github.com/MKhiriev/go-legacy-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func scrapeMetrics(t *testing.T, p *metrics.Provider) string {
	t.Helper()
	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestAuthServiceWithMetrics_RecordsOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := metrics.NewProvider("test")
	bm, err := metrics.NewBusinessMetrics(p)
	require.NoError(t, err)

	next := mock.NewMockAuthService(ctrl)
	svc := NewMetricsWrapper(bm).Wrap(next)
	ctx := context.Background()

	gomock.InOrder(
		next.EXPECT().Login(ctx, gomock.Any(), gomock.Any()).Return(models.AuthResult{Token: "t"}, nil),
		next.EXPECT().Login(ctx, gomock.Any(), gomock.Any()).Return(models.AuthResult{}, ErrInvalidCredentials),
		next.EXPECT().Login(ctx, gomock.Any(), gomock.Any()).Return(models.AuthResult{}, &AccountLockedError{Until: time.Now()}),
		next.EXPECT().BiometricLogin(ctx, gomock.Any(), gomock.Any()).Return(models.AuthResult{}, &ValidationError{Fields: map[string]string{"email": "required"}}),
		next.EXPECT().Register(ctx, gomock.Any(), gomock.Any()).Return(models.AuthResult{}, errors.New("boom")),
	)

	res, err := svc.Login(ctx, models.LoginRequest{}, testMeta)
	require.NoError(t, err)
	assert.Equal(t, "t", res.Token)

	_, err = svc.Login(ctx, models.LoginRequest{}, testMeta)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _ = svc.Login(ctx, models.LoginRequest{}, testMeta)
	_, _ = svc.BiometricLogin(ctx, models.BiometricLoginRequest{}, testMeta)
	_, _ = svc.Register(ctx, models.RegisterRequest{}, testMeta)

	out := scrapeMetrics(t, p)
	assert.Regexp(t, `test_auth_attempts_total\{method="password",outcome="success"\} 1`, out)
	assert.Regexp(t, `test_auth_attempts_total\{method="password",outcome="invalid_credentials"\} 1`, out)
	assert.Regexp(t, `test_auth_attempts_total\{method="password",outcome="locked"\} 1`, out)
	assert.Regexp(t, `test_auth_attempts_total\{method="biometric",outcome="validation"\} 1`, out)
	assert.Regexp(t, `test_operations_total\{domain="auth",operation="login",status="error"\} 2`, out)
	assert.Regexp(t, `test_operations_total\{domain="auth",operation="register",status="error"\} 1`, out)
}

func TestAuthServiceWithMetrics_ParseTokenPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := mock.NewMockAuthService(ctrl)
	svc := NewMetricsWrapper(metrics.NewNoOpBusinessMetrics()).Wrap(next)

	next.EXPECT().ParseToken(gomock.Any(), "raw").Return(models.Token{UserID: 42}, nil)

	token, err := svc.ParseToken(context.Background(), "raw")
	require.NoError(t, err)
	assert.Equal(t, int64(42), token.UserID)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, metrics.OutcomeSuccess, outcome(nil))
	assert.Equal(t, metrics.OutcomeInvalidCredentials, outcome(ErrInvalidCredentials))
	assert.Equal(t, metrics.OutcomeLocked, outcome(&AccountLockedError{}))
	assert.Equal(t, metrics.OutcomeValidation, outcome(&ValidationError{}))
	assert.Equal(t, metrics.OutcomeError, outcome(errors.New("db")))
}
