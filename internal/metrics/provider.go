// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus instrumentation for the auth flow and
// the HTTP layer. Every collector is registered on a private registry owned by
// [Provider], so tests can build independent providers side by side.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Provider owns the Prometheus registry.
type Provider struct {
	namespace string
	registry  *prometheus.Registry
}

// NewProvider creates a registry with the Go runtime and process collectors
// already registered. namespace prefixes every metric name.
func NewProvider(namespace string) *Provider {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Provider{namespace: namespace, registry: registry}
}

// Handler serves the registry in Prometheus exposition format. Mount it at
// /metrics.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registerer returns the registry for collectors defined elsewhere.
func (p *Provider) Registerer() prometheus.Registerer {
	return p.registry
}
