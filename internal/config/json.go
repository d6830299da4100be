// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonLockout struct {
	Threshold int      `json:"threshold"`
	Duration  Duration `json:"duration"`
}

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey         string      `json:"token_sign_key"`
		TokenIssuer          string      `json:"token_issuer"`
		AccessTokenDuration  Duration    `json:"access_token_duration"`
		RefreshTokenDuration Duration    `json:"refresh_token_duration"`
		BcryptCost           int         `json:"bcrypt_cost"`
		PasswordLockout      jsonLockout `json:"password_lockout"`
		BiometricLockout     jsonLockout `json:"biometric_lockout"`
		Strict               bool        `json:"strict"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		LogLevel       string   `json:"log_level"`
	} `json:"server,omitempty"`

	RateLimit struct {
		RegisterLimit int      `json:"register_limit"`
		LoginLimit    int      `json:"login_limit"`
		Window        Duration `json:"window"`
	} `json:"rate_limit,omitempty"`

	Workers struct {
		SessionCleanupInterval Duration `json:"session_cleanup_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jc StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			TokenSignKey:         jc.Auth.TokenSignKey,
			TokenIssuer:          jc.Auth.TokenIssuer,
			AccessTokenDuration:  time.Duration(jc.Auth.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(jc.Auth.RefreshTokenDuration),
			BcryptCost:           jc.Auth.BcryptCost,
			PasswordLockout:      jc.Auth.PasswordLockout.toLockout(),
			BiometricLockout:     jc.Auth.BiometricLockout.toLockout(),
			Strict:               jc.Auth.Strict,
		},
		Storage: Storage{
			DB: DB{DSN: jc.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jc.Server.HTTPAddress,
			GRPCAddress:    jc.Server.GRPCAddress,
			RequestTimeout: time.Duration(jc.Server.RequestTimeout),
			LogLevel:       jc.Server.LogLevel,
		},
		RateLimit: RateLimit{
			RegisterLimit: jc.RateLimit.RegisterLimit,
			LoginLimit:    jc.RateLimit.LoginLimit,
			Window:        time.Duration(jc.RateLimit.Window),
		},
		Workers: Workers{
			SessionCleanupInterval: time.Duration(jc.Workers.SessionCleanupInterval),
		},
	}

	return cfg, nil
}

func (l jsonLockout) toLockout() Lockout {
	return Lockout{Threshold: l.Threshold, Duration: time.Duration(l.Duration)}
}

// Duration accepts either a Go duration string ("30m") or a number of
// nanoseconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
