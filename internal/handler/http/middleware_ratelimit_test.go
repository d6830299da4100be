package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/mock"
	"github.com/MKhiriev/go-legacy-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

// manualClock is a settable time source shared with a limiter.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*ipRateLimiter, *manualClock) {
	t.Helper()

	clock := &manualClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	l := newIPRateLimiter(limit, window, clock.Now, logger.Nop())
	t.Cleanup(l.Close)

	return l, clock
}

func hit(handler http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = ip + ":5555"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestIPRateLimiter_BlocksAfterLimit(t *testing.T) {
	l, _ := newTestLimiter(t, 3, time.Minute)
	handler := l.Middleware(okHandler())

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, hit(handler, "198.51.100.7").Code, "request %d", i+1)
	}

	rec := hit(handler, "198.51.100.7")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	// one token refills every 20s
	assert.Equal(t, "20", rec.Header().Get("Retry-After"))
	assert.Equal(t, codeRateLimited, decodeError(t, rec.Body.Bytes()).Error)
}

func TestIPRateLimiter_RefillsOverTime(t *testing.T) {
	l, clock := newTestLimiter(t, 3, time.Minute)
	handler := l.Middleware(okHandler())

	for i := 0; i < 3; i++ {
		hit(handler, "198.51.100.7")
	}
	require.Equal(t, http.StatusTooManyRequests, hit(handler, "198.51.100.7").Code)

	clock.Advance(21 * time.Second)
	assert.Equal(t, http.StatusOK, hit(handler, "198.51.100.7").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "198.51.100.7").Code)
}

func TestIPRateLimiter_RejectedRequestsDoNotConsumeTokens(t *testing.T) {
	l, clock := newTestLimiter(t, 1, time.Minute)
	handler := l.Middleware(okHandler())

	require.Equal(t, http.StatusOK, hit(handler, "198.51.100.7").Code)
	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusTooManyRequests, hit(handler, "198.51.100.7").Code)
	}

	clock.Advance(61 * time.Second)
	assert.Equal(t, http.StatusOK, hit(handler, "198.51.100.7").Code)
}

func TestIPRateLimiter_IsolatesAddresses(t *testing.T) {
	l, _ := newTestLimiter(t, 1, time.Minute)
	handler := l.Middleware(okHandler())

	require.Equal(t, http.StatusOK, hit(handler, "198.51.100.7").Code)
	require.Equal(t, http.StatusTooManyRequests, hit(handler, "198.51.100.7").Code)

	assert.Equal(t, http.StatusOK, hit(handler, "203.0.113.9").Code)
}

func TestIPRateLimiter_Disabled(t *testing.T) {
	for _, tc := range []struct {
		name   string
		limit  int
		window time.Duration
	}{
		{"zero limit", 0, time.Minute},
		{"zero window", 5, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l, _ := newTestLimiter(t, tc.limit, tc.window)
			handler := l.Middleware(okHandler())

			for i := 0; i < 50; i++ {
				require.Equal(t, http.StatusOK, hit(handler, "198.51.100.7").Code)
			}
		})
	}
}

func TestIPRateLimiter_CleanupStale(t *testing.T) {
	l, clock := newTestLimiter(t, 5, time.Minute)
	handler := l.Middleware(okHandler())

	hit(handler, "198.51.100.7")
	clock.Advance(30 * time.Second)
	hit(handler, "203.0.113.9")

	clock.Advance(30 * time.Second)
	assert.Equal(t, 1, l.cleanupStale(clock.Now()))

	_, stale := l.entries.Load("198.51.100.7")
	_, fresh := l.entries.Load("203.0.113.9")
	assert.False(t, stale)
	assert.True(t, fresh)
}

func TestIPRateLimiter_CloseStopsCleanup(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := newIPRateLimiter(5, time.Minute, time.Now, logger.Nop())
	l.Close()
	l.Close()
}

func TestIPRateLimiter_ConcurrentRequests(t *testing.T) {
	const limit = 20
	l, _ := newTestLimiter(t, limit, time.Minute)
	handler := l.Middleware(okHandler())

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 3*limit; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if hit(handler, "198.51.100.7").Code == http.StatusOK {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, allowed)
}

// The login limiter covers both login routes; registration has its own.
func TestRoutes_LoginRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(sampleResult(), nil).Times(6)
	auth.EXPECT().BiometricLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(sampleResult(), nil).Times(4)
	auth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(sampleResult(), nil)

	router := newTestHandler(t, auth).Init()
	login := models.LoginRequest{Email: "jane@example.com", Password: "x"}
	bio := models.BiometricLoginRequest{Email: "jane@example.com", BiometricData: "sample"}

	for i := 0; i < 6; i++ {
		require.Equal(t, http.StatusOK, doRequest(t, router, http.MethodPost, "/api/auth/login", login, nil).Code)
	}
	for i := 0; i < 4; i++ {
		require.Equal(t, http.StatusOK, doRequest(t, router, http.MethodPost, "/api/auth/biometric-login", bio, nil).Code)
	}

	assert.Equal(t, http.StatusTooManyRequests, doRequest(t, router, http.MethodPost, "/api/auth/login", login, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(t, router, http.MethodPost, "/api/auth/biometric-login", bio, nil).Code)
	assert.Equal(t, http.StatusCreated,
		doRequest(t, router, http.MethodPost, "/api/auth/register", models.RegisterRequest{Email: "new@example.com"}, nil).Code)
}

func TestRoutes_RegisterRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(sampleResult(), nil).Times(5)

	router := newTestHandler(t, auth).Init()
	req := models.RegisterRequest{Email: "new@example.com"}

	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusCreated, doRequest(t, router, http.MethodPost, "/api/auth/register", req, nil).Code)
	}

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", req, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
