// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels of auth_attempts_total.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeLocked             = "locked"
	OutcomeValidation         = "validation"
	OutcomeError              = "error"
)

// BusinessMetrics records auth operations.
type BusinessMetrics interface {
	// RecordOperation counts an operation such as "register" by status.
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration observes the operation latency in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordAuthAttempt counts a login attempt by method ("password",
	// "biometric") and outcome.
	RecordAuthAttempt(ctx context.Context, method, outcome string)

	// RecordLockout counts an account lock being set.
	RecordLockout(ctx context.Context, method string)
}

type businessMetrics struct {
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	attempts   *prometheus.CounterVec
	lockouts   *prometheus.CounterVec
}

// NewBusinessMetrics registers the business collectors on p.
func NewBusinessMetrics(p *Provider) (BusinessMetrics, error) {
	m := &businessMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "operations_total",
			Help:      "Total number of business operations.",
		}, []string{"domain", "operation", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of business operations in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"domain", "operation", "status"}),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "auth_attempts_total",
			Help:      "Login attempts by method and outcome.",
		}, []string{"method", "outcome"}),
		lockouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "auth_lockouts_total",
			Help:      "Accounts locked after repeated failures.",
		}, []string{"method"}),
	}

	for _, c := range []prometheus.Collector{m.operations, m.durations, m.attempts, m.lockouts} {
		if err := p.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *businessMetrics) RecordOperation(_ context.Context, domain, operation, status string) {
	m.operations.WithLabelValues(domain, operation, status).Inc()
}

func (m *businessMetrics) RecordDuration(_ context.Context, domain, operation string, duration time.Duration, status string) {
	m.durations.WithLabelValues(domain, operation, status).Observe(duration.Seconds())
}

func (m *businessMetrics) RecordAuthAttempt(_ context.Context, method, outcome string) {
	m.attempts.WithLabelValues(method, outcome).Inc()
}

func (m *businessMetrics) RecordLockout(_ context.Context, method string) {
	m.lockouts.WithLabelValues(method).Inc()
}

// NoOpBusinessMetrics discards everything.
type NoOpBusinessMetrics struct{}

func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(context.Context, string, string, string) {}

func (n *NoOpBusinessMetrics) RecordDuration(context.Context, string, string, time.Duration, string) {
}

func (n *NoOpBusinessMetrics) RecordAuthAttempt(context.Context, string, string) {}

func (n *NoOpBusinessMetrics) RecordLockout(context.Context, string) {}
