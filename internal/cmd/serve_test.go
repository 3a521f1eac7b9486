// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd(t *testing.T) {
	cmd := ServeCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "serve", cmd.Use)

	t.Run("fails without catalog configuration", func(t *testing.T) {
		errBuffer := new(bytes.Buffer)
		cmd := ServeCmd()
		cmd.SetErr(errBuffer)
		cmd.SetArgs([]string{})

		err := cmd.ExecuteContext(t.Context())
		require.Error(t, err)
		assert.Contains(t, errBuffer.String(), "OPENMETADATA_BASE_URL")
	})
}
