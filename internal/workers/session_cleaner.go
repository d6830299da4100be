package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/store"
)

// SessionCleaner deletes expired sessions on a fixed interval. A failed pass
// is logged and retried on the next tick.
type SessionCleaner struct {
	sessions store.SessionRepository
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewSessionCleaner(sessions store.SessionRepository, interval time.Duration, logger *logger.Logger) *SessionCleaner {
	return &SessionCleaner{
		sessions: sessions,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run cleans once at start and then every interval until ctx is done. A
// non-positive interval disables the cleaner.
func (c *SessionCleaner) Run(ctx context.Context) {
	if c.interval <= 0 {
		c.logger.Info().Msg("session cleaner disabled")
		return
	}

	c.cleanup(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.cleanup(ctx)
		}
	}
}

func (c *SessionCleaner) cleanup(ctx context.Context) {
	removed, err := c.sessions.DeleteExpired(ctx, c.now().UTC())
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Err(err).Msg("session cleanup failed")
		}
		return
	}
	if removed > 0 {
		c.logger.Info().Int64("removed", removed).Msg("expired sessions deleted")
	}
}
