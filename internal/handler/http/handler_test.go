package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/config"
	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/metrics"
	"github.com/MKhiriev/go-legacy-keeper/internal/mock"
	"github.com/MKhiriev/go-legacy-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testUserAgent = "legacy-keeper-test"

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		Server: config.Server{RequestTimeout: 5 * time.Second},
		RateLimit: config.RateLimit{
			RegisterLimit: 5,
			LoginLimit:    10,
			Window:        15 * time.Minute,
		},
	}
}

// newTestHandler builds a Handler around auth and closes it with the test.
func newTestHandler(t *testing.T, auth service.AuthService, opts ...Option) *Handler {
	t.Helper()

	h, err := NewHandler(&service.Services{AuthService: auth}, testConfig(), logger.Nop(), opts...)
	require.NoError(t, err)
	t.Cleanup(h.Close)

	return h
}

// doRequest serves one request through router. A non-nil body is
// JSON-encoded unless it is already a string.
func doRequest(t *testing.T, router http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("User-Agent", testUserAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	pinger := mock.NewMockPinger(ctrl)
	provider := metrics.NewProvider("handler_test")

	h := newTestHandler(t, mock.NewMockAuthService(ctrl), WithPinger(pinger), WithMetrics(provider))

	assert.Equal(t, pinger, h.pinger)
	assert.Equal(t, provider, h.metrics)
	assert.NotNil(t, h.httpMetrics)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}

func TestNewHandler_DuplicateMetricsRegistrationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := metrics.NewProvider("handler_test")

	newTestHandler(t, mock.NewMockAuthService(ctrl), WithMetrics(provider))

	_, err := NewHandler(&service.Services{}, testConfig(), logger.Nop(), WithMetrics(provider))
	require.Error(t, err)
}

func TestHandler_CloseIsIdempotent(t *testing.T) {
	h, err := NewHandler(&service.Services{}, testConfig(), logger.Nop())
	require.NoError(t, err)

	h.Close()
	assert.NotPanics(t, h.Close)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(sampleResult(), nil).AnyTimes()
	auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(sampleResult(), nil).AnyTimes()
	auth.EXPECT().BiometricLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(sampleResult(), nil).AnyTimes()

	router := newTestHandler(t, auth, WithMetrics(metrics.NewProvider("routes_test"))).Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodPost, "/api/auth/biometric-login"},
		// auth middleware answers 401, which still proves the route exists
		{http.MethodPost, "/api/auth/biometric/enroll"},
		{http.MethodGet, "/healthz"},
		{http.MethodGet, "/metrics"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, "{}", nil)

			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_MetricsRouteAbsentWithoutProvider(t *testing.T) {
	router := newTestHandler(t, nil).Init()

	rec := doRequest(t, router, http.MethodGet, "/metrics", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestHandler(t, nil).Init()

	rec := doRequest(t, router, http.MethodGet, "/api/nonexistent", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestHandler(t, nil).Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/login"},
		{http.MethodDelete, "/api/auth/register"},
		{http.MethodPost, "/healthz"},
	} {
		rec := doRequest(t, router, tc.method, tc.path, nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestInit_TraceIDHeaderAlwaysSet(t *testing.T) {
	router := newTestHandler(t, nil).Init()

	rec := doRequest(t, router, http.MethodGet, "/healthz", nil, nil)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	rec = doRequest(t, router, http.MethodGet, "/healthz", nil, map[string]string{traceIDHeader: "trace-abc"})
	assert.Equal(t, "trace-abc", rec.Header().Get(traceIDHeader))
}

// ─────────────────────────────────────────────
// Health and metrics
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		withPinger bool
		wantStatus int
		wantBody   string
	}{
		{name: "no pinger", wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "database reachable", withPinger: true, wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "database down", withPinger: true, pingErr: errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable, wantBody: "unavailable"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			var opts []Option
			if tc.withPinger {
				pinger := mock.NewMockPinger(ctrl)
				pinger.EXPECT().PingContext(gomock.Any()).Return(tc.pingErr)
				opts = append(opts, WithPinger(pinger))
			}

			router := newTestHandler(t, nil, opts...).Init()
			rec := doRequest(t, router, http.MethodGet, "/healthz", nil, nil)

			assert.Equal(t, tc.wantStatus, rec.Code)

			var body healthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantBody, body.Status)
		})
	}
}

func TestMetrics_RecordsRequestsByRoute(t *testing.T) {
	router := newTestHandler(t, nil, WithMetrics(metrics.NewProvider("legacy_keeper"))).Init()

	doRequest(t, router, http.MethodGet, "/healthz", nil, nil)
	rec := doRequest(t, router, http.MethodGet, "/metrics", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Regexp(t, `legacy_keeper_http_requests_total\{method="GET",path="/healthz",status_code="200"\} 1`, rec.Body.String())
}
