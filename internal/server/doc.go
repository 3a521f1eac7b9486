// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package server contains the HTTP surface of the adapter. It sets up the
// Fiber application with logging middleware, health probes, the lifecycle
// endpoints called by the provisioning coordinator, and the custom URL picker
// endpoints.
package server
