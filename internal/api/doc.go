// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package api defines the wire models exchanged with the provisioning
// coordinator and with the custom URL picker frontend.
package api
