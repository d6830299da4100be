// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the legacy-keeper command line client.
//
// Every command runs in its own process: server commands authenticate
// against the API, vault commands derive the master key from the password
// and unlock the local vault before touching it. Secrets are read from
// flags, the environment or a prompt and are never logged.
package client
