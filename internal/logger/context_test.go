// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerInContext(t *testing.T) {
	t.Parallel()

	t.Run("nil context returns the null logger", func(t *testing.T) {
		t.Parallel()
		var ctx context.Context
		log := FromContext(ctx)
		assert.Equal(t, nullLogger, log)
	})

	t.Run("context without a logger returns the null logger", func(t *testing.T) {
		t.Parallel()

		log := FromContext(t.Context())
		assert.Equal(t, nullLogger, log)
	})

	t.Run("context with a logger returns that logger", func(t *testing.T) {
		t.Parallel()

		log := NewLogger(os.Stderr)
		ctx := WithContext(t.Context(), log)

		assert.Equal(t, log, FromContext(ctx))
	})
}
