// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress is a host:port pair usable as a flag.Value. An empty host binds
// every interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags reads the server flags from args. Unset flags stay zero so
// they do not shadow later sources during the merge.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("legacy-keeper-server", flag.ContinueOnError)

	var (
		httpAddress, grpcAddress NetAddress

		cfg StructuredConfig
	)

	fs.Var(&httpAddress, "a", "HTTP listen address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Auth.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.Auth.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.Auth.AccessTokenDuration, "access-token-duration", 0, "Access token lifetime (e.g. 24h)")
	fs.DurationVar(&cfg.Auth.RefreshTokenDuration, "refresh-token-duration", 0, "Refresh token lifetime (e.g. 168h)")
	fs.IntVar(&cfg.Auth.BcryptCost, "bcrypt-cost", 0, "bcrypt work factor (>= 12)")
	fs.BoolVar(&cfg.Auth.Strict, "strict", false, "Refuse to start without a token sign key")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.StringVar(&cfg.Server.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.Workers.SessionCleanupInterval, "session-cleanup-interval", 0, "Expired session purge interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return &cfg, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
