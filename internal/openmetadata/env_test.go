// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package openmetadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("without envs", func(t *testing.T) {
		config, err := loadConfigFromEnv()
		assert.ErrorIs(t, err, errParsingConfig)
		assert.Nil(t, config)
	})

	t.Run("with required env", func(t *testing.T) {
		t.Setenv("OPENMETADATA_BASE_URL", "http://localhost:8585/api")
		config, err := loadConfigFromEnv()
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8585/api", config.BaseURL)
		assert.Empty(t, config.JWTToken)
		assert.Equal(t, "Aggregate", config.DomainType)
		assert.Equal(t, "generic", config.StorageServiceName)
		assert.Equal(t, "CustomStorage", config.StorageServiceType)
	})

	t.Run("with all envs", func(t *testing.T) {
		t.Setenv("OPENMETADATA_BASE_URL", "https://metadata.example.com/api")
		t.Setenv("OPENMETADATA_JWT_TOKEN", "test-token")
		t.Setenv("OPENMETADATA_DOMAIN_TYPE", "Source-aligned")
		t.Setenv("OPENMETADATA_STORAGE_SERVICE_NAME", "datamesh")
		t.Setenv("OPENMETADATA_STORAGE_SERVICE_TYPE", "S3")
		config, err := loadConfigFromEnv()
		require.NoError(t, err)

		assert.Equal(t, "https://metadata.example.com/api", config.BaseURL)
		assert.Equal(t, "test-token", config.JWTToken)
		assert.Equal(t, "Source-aligned", config.DomainType)
		assert.Equal(t, "datamesh", config.StorageServiceName)
		assert.Equal(t, "S3", config.StorageServiceType)
	})

	t.Run("with relative base url", func(t *testing.T) {
		t.Setenv("OPENMETADATA_BASE_URL", "localhost:8585/api")
		config, err := loadConfigFromEnv()
		assert.ErrorContains(t, err, "not an absolute URL")
		assert.Nil(t, config)
	})
}

func TestNewClient(t *testing.T) {
	t.Run("without envs", func(t *testing.T) {
		client, err := NewClient()
		assert.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("with required env", func(t *testing.T) {
		t.Setenv("OPENMETADATA_BASE_URL", "http://localhost:8585/api")
		client, err := NewClient()
		require.NoError(t, err)
		require.NotNil(t, client)

		assert.Equal(t, "http://localhost:8585/", client.BaseWebURL())
	})
}
