// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
)

// contextKeyType is unexported so the logger key can never collide with keys
// set by other packages.
type contextKeyType struct{}

var contextKey = contextKeyType{}

// WithContext stores logger in ctx for retrieval with FromContext.
func WithContext(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, contextKey, logger)
}

// FromContext returns the Logger stored in ctx, or a logger that discards
// everything when ctx carries none.
func FromContext(ctx context.Context) Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey).(Logger); ok {
			return logger
		}
	}

	return nullLogger
}
