// Package server runs the HTTP and gRPC listeners of the auth server and
// stops them gracefully when the process is signalled.
package server
