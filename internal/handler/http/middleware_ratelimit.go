package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/utils"
	"github.com/MKhiriev/go-legacy-keeper/models"
	"golang.org/x/time/rate"
)

const maxCleanupInterval = 5 * time.Minute

// ipRateLimiter gives every client IP its own token bucket of limit requests
// per window. Buckets idle for a whole window are full again, so the cleanup
// goroutine drops them without changing behaviour.
type ipRateLimiter struct {
	limit  rate.Limit
	burst  int
	window time.Duration

	entries sync.Map // client IP -> *limiterEntry
	now     func() time.Time

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	logger *logger.Logger
}

type limiterEntry struct {
	limiter *rate.Limiter

	mu         sync.Mutex
	lastAccess time.Time
}

// newIPRateLimiter returns a limiter allowing limit requests per window and
// starts its cleanup goroutine. A non-positive limit or window disables it.
func newIPRateLimiter(limit int, window time.Duration, now func() time.Time, logger *logger.Logger) *ipRateLimiter {
	l := &ipRateLimiter{
		burst:  limit,
		window: window,
		now:    now,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
		logger: logger,
	}
	if !l.enabled() {
		close(l.done)
		return l
	}

	l.limit = rate.Every(window / time.Duration(limit))
	go l.cleanupLoop(min(window, maxCleanupInterval))

	return l
}

func (l *ipRateLimiter) enabled() bool {
	return l.burst > 0 && l.window > 0
}

// Middleware answers 429 with a Retry-After header once the caller's bucket
// is empty.
func (l *ipRateLimiter) Middleware(next http.Handler) http.Handler {
	if !l.enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := utils.ClientIP(r)
		now := l.now()
		limiter := l.get(ip, now)

		if limiter.AllowN(now, 1) {
			next.ServeHTTP(w, r)
			return
		}

		reservation := limiter.ReserveN(now, 1)
		delay := reservation.DelayFrom(now)
		reservation.CancelAt(now)

		logger.FromRequest(r).Warn().
			Str("ip", ip).
			Dur("retry_after", delay).
			Msg("rate limit exceeded")

		w.Header().Set("Retry-After", retryAfterSeconds(delay))
		_, _ = utils.WriteJSON(w, models.ErrorResponse{
			Error:   codeRateLimited,
			Message: "too many requests from this address, retry after the Retry-After delay",
		}, http.StatusTooManyRequests)
	})
}

func (l *ipRateLimiter) get(ip string, now time.Time) *rate.Limiter {
	v, ok := l.entries.Load(ip)
	if !ok {
		v, _ = l.entries.LoadOrStore(ip, &limiterEntry{
			limiter:    rate.NewLimiter(l.limit, l.burst),
			lastAccess: now,
		})
	}

	entry := v.(*limiterEntry)
	entry.mu.Lock()
	entry.lastAccess = now
	entry.mu.Unlock()

	return entry.limiter
}

func (l *ipRateLimiter) cleanupLoop(interval time.Duration) {
	defer close(l.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			if n := l.cleanupStale(l.now()); n > 0 {
				l.logger.Debug().Int("removed", n).Msg("rate limiter: stale entries removed")
			}
		}
	}
}

// cleanupStale removes entries idle for at least one window and reports how
// many were removed.
func (l *ipRateLimiter) cleanupStale(now time.Time) int {
	threshold := now.Add(-l.window)
	removed := 0

	l.entries.Range(func(key, value any) bool {
		entry := value.(*limiterEntry)
		entry.mu.Lock()
		stale := !entry.lastAccess.After(threshold)
		entry.mu.Unlock()

		if stale {
			l.entries.Delete(key)
			removed++
		}
		return true
	})

	return removed
}

// Close stops the cleanup goroutine and waits for it to exit.
func (l *ipRateLimiter) Close() {
	l.stopOnce.Do(func() { close(l.stop) })
	<-l.done
}
