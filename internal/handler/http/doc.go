// Package http implements the REST transport of the auth server.
//
// It wires chi routes for registration, password and biometric login and
// biometric enrollment, plus health and metrics endpoints. Tracing, access
// logging, per-IP rate limiting and bearer authentication run here as
// middleware before a request reaches the service layer.
package http
