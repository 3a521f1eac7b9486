// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package openmetadata

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

var errParsingConfig = errors.New("error parsing openmetadata configuration from environment variables")

// config holds the environment-driven OpenMetadata settings. BaseURL points
// to the API root of the server, for example http://localhost:8585/api.
type config struct {
	BaseURL            string `env:"OPENMETADATA_BASE_URL,required"`
	JWTToken           string `env:"OPENMETADATA_JWT_TOKEN"`
	DomainType         string `env:"OPENMETADATA_DOMAIN_TYPE" envDefault:"Aggregate"`
	StorageServiceName string `env:"OPENMETADATA_STORAGE_SERVICE_NAME" envDefault:"generic"`
	StorageServiceType string `env:"OPENMETADATA_STORAGE_SERVICE_TYPE" envDefault:"CustomStorage"`
}

func loadConfigFromEnv() (*config, error) {
	config, err := env.ParseAs[config]()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errParsingConfig, err.Error())
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *config) validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid OPENMETADATA_BASE_URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid OPENMETADATA_BASE_URL: %q is not an absolute URL", c.BaseURL)
	}

	return nil
}
