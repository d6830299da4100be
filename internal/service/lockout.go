package service

import (
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/config"
)

// riskPerAttempt scales the audit risk score of a failed attempt.
const riskPerAttempt = 20

// LockoutPolicy locks an account for Duration once Threshold consecutive
// attempts have failed.
type LockoutPolicy struct {
	Threshold int
	Duration  time.Duration
}

// NewLockoutPolicy converts a config value.
func NewLockoutPolicy(cfg config.Lockout) LockoutPolicy {
	return LockoutPolicy{Threshold: cfg.Threshold, Duration: cfg.Duration}
}

// LockUntil is the expiry of a lock set at now.
func (p LockoutPolicy) LockUntil(now time.Time) time.Time {
	return now.Add(p.Duration)
}

// riskScore grows with the number of consecutive failures. It is a relative
// signal with no upper bound.
func riskScore(attempts int) int {
	return attempts * riskPerAttempt
}
