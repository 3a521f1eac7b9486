// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger provides the structured, leveled logger used across the
// adapter, context helpers to propagate request-scoped loggers, and the fiber
// middleware that logs the HTTP traffic.
package logger
