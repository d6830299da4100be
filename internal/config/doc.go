// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates the configuration of the
// legacy-keeper server and client.
//
// Server configuration is assembled from several sources. A field keeps the
// first non-zero value found, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (-c / -config / CONFIG)
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the vault CLI.
package config
