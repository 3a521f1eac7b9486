// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package openmetadata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/cenkalti/backoff/v4"

	"github.com/mia-platform/omta/internal/info"
)

const (
	// maxRetries bounds the exponential backoff on transient server failures.
	maxRetries = 3
	// listPageSize is the page size used when walking paginated list endpoints.
	listPageSize = 100
)

// containerProperties are the custom properties attached to the Container
// entity type so that output port metadata survives the mapping.
var containerProperties = []customProperty{
	{Name: "kind", Description: "Type of the entity."},
	{Name: "platform", Description: "Represents the vendor: Azure, GCP, AWS, etc. It is a free field, useful to understand where the component will run."},
	{Name: "technology", Description: "Represents which technology is used for the component."},
}

// Client talks to an OpenMetadata server over its REST API.
type Client struct {
	config

	client atomic.Pointer[http.Client]
}

// NewClient returns a Client configured from environment variables.
func NewClient() (*Client, error) {
	config, err := loadConfigFromEnv()
	if err != nil {
		return nil, handleError(err)
	}

	return &Client{
		config: *config,
	}, nil
}

// BaseWebURL returns the root URL of the OpenMetadata web UI, derived from
// the API base URL by dropping its path.
func (c *Client) BaseWebURL() string {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return c.BaseURL
	}

	parsed.Path = "/"
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String()
}

// UpsertStorageService creates or updates the synthesized storage service
// every published container belongs to.
func (c *Client) UpsertStorageService(ctx context.Context) (*StorageService, error) {
	request := CreateStorageService{
		Name:        c.StorageServiceName,
		ServiceType: c.StorageServiceType,
	}

	service := new(StorageService)
	if err := c.doRequest(ctx, http.MethodPut, "/v1/services/storageServices", nil, request, service); err != nil {
		return nil, handleError(fmt.Errorf("failed to create or update storage service %q: %w", c.StorageServiceName, err))
	}
	return service, nil
}

// UpsertContainerCustomProperties registers the custom properties used on
// containers. The string property type is resolved from the server first.
func (c *Client) UpsertContainerCustomProperties(ctx context.Context) error {
	stringType := new(entityType)
	if err := c.doRequest(ctx, http.MethodGet, "/v1/metadata/types/name/string", nil, nil, stringType); err != nil {
		return handleError(fmt.Errorf("failed to retrieve the string type definition: %w", err))
	}

	containerType := new(entityType)
	if err := c.doRequest(ctx, http.MethodGet, "/v1/metadata/types/name/container", nil, nil, containerType); err != nil {
		return handleError(fmt.Errorf("failed to retrieve the container type definition: %w", err))
	}

	for _, property := range containerProperties {
		property.PropertyType = propertyType{ID: stringType.ID, Type: stringType.Name}
		path := "/v1/metadata/types/" + containerType.ID
		if err := c.doRequest(ctx, http.MethodPut, path, nil, property, nil); err != nil {
			return handleError(fmt.Errorf("failed to create or update container custom property %q: %w", property.Name, err))
		}
	}

	return nil
}

// UpsertDomain creates or updates a domain with the configured domain type.
func (c *Client) UpsertDomain(ctx context.Context, name string) (*Domain, error) {
	request := CreateDomain{
		Name:        name,
		DomainType:  c.DomainType,
		Description: name,
	}

	domain := new(Domain)
	if err := c.doRequest(ctx, http.MethodPut, "/v1/domains", nil, request, domain); err != nil {
		return nil, handleError(fmt.Errorf("failed to create or update domain %q: %w", name, err))
	}
	return domain, nil
}

// UpsertDataProduct creates or updates a data product entity.
func (c *Client) UpsertDataProduct(ctx context.Context, request CreateDataProduct) (*DataProduct, error) {
	dataProduct := new(DataProduct)
	if err := c.doRequest(ctx, http.MethodPut, "/v1/dataProducts", nil, request, dataProduct); err != nil {
		return nil, handleError(fmt.Errorf("failed to create or update data product %q: %w", request.Name, err))
	}
	return dataProduct, nil
}

// UpsertContainer creates or updates a container entity. The storage service
// reference is filled with the configured one when the request leaves it empty.
func (c *Client) UpsertContainer(ctx context.Context, request CreateContainer) (*Container, error) {
	if request.Service == "" {
		request.Service = c.StorageServiceName
	}

	container := new(Container)
	if err := c.doRequest(ctx, http.MethodPut, "/v1/containers", nil, request, container); err != nil {
		return nil, handleError(fmt.Errorf("failed to create or update container %q: %w", request.Name, err))
	}
	return container, nil
}

// DeleteDataProduct hard deletes the data product with the given name. A data
// product that is already absent is not an error.
func (c *Client) DeleteDataProduct(ctx context.Context, name string) error {
	dataProduct := new(DataProduct)
	err := c.doRequest(ctx, http.MethodGet, "/v1/dataProducts/name/"+url.PathEscape(name), nil, nil, dataProduct)
	switch {
	case errors.Is(err, errNotFound):
		return nil
	case err != nil:
		return handleError(fmt.Errorf("failed to retrieve data product %q: %w", name, err))
	}

	if err := c.delete(ctx, "/v1/dataProducts/"+dataProduct.ID); err != nil {
		return handleError(fmt.Errorf("failed to delete data product %q: %w", name, err))
	}
	return nil
}

// DeleteContainer hard deletes the container mapped from the component with
// the given name. A container that is already absent is not an error.
func (c *Client) DeleteContainer(ctx context.Context, componentName string) error {
	fqn := c.StorageServiceName + "." + componentName

	container := new(Container)
	err := c.doRequest(ctx, http.MethodGet, "/v1/containers/name/"+url.PathEscape(fqn), nil, nil, container)
	switch {
	case errors.Is(err, errNotFound):
		return nil
	case err != nil:
		return handleError(fmt.Errorf("failed to retrieve container %q: %w", fqn, err))
	}

	if err := c.delete(ctx, "/v1/containers/"+container.ID); err != nil {
		return handleError(fmt.Errorf("failed to delete container %q: %w", fqn, err))
	}
	return nil
}

// ListClassificationTags returns every classification tag known to the server.
func (c *Client) ListClassificationTags(ctx context.Context) ([]Tag, error) {
	tags := make([]Tag, 0)
	err := c.listAll(ctx, "/v1/tags", func(page json.RawMessage) error {
		var pageTags []Tag
		if err := json.Unmarshal(page, &pageTags); err != nil {
			return err
		}
		tags = append(tags, pageTags...)
		return nil
	})
	if err != nil {
		return nil, handleError(fmt.Errorf("failed to retrieve classification tags: %w", err))
	}

	return tags, nil
}

// ListGlossaryTerms returns every glossary term known to the server.
func (c *Client) ListGlossaryTerms(ctx context.Context) ([]GlossaryTerm, error) {
	terms := make([]GlossaryTerm, 0)
	err := c.listAll(ctx, "/v1/glossaryTerms", func(page json.RawMessage) error {
		var pageTerms []GlossaryTerm
		if err := json.Unmarshal(page, &pageTerms); err != nil {
			return err
		}
		terms = append(terms, pageTerms...)
		return nil
	})
	if err != nil {
		return nil, handleError(fmt.Errorf("failed to retrieve glossary terms: %w", err))
	}

	return terms, nil
}

// GetGlossaryTerm looks up a glossary term by fully qualified name. A missing
// term is reported as a nil result, not an error.
func (c *Client) GetGlossaryTerm(ctx context.Context, fqn string) (*GlossaryTerm, error) {
	term := new(GlossaryTerm)
	err := c.doRequest(ctx, http.MethodGet, "/v1/glossaryTerms/name/"+url.PathEscape(fqn), nil, nil, term)
	switch {
	case errors.Is(err, errNotFound):
		return nil, nil
	case err != nil:
		return nil, handleError(fmt.Errorf("failed to retrieve glossary term %q: %w", fqn, err))
	}

	return term, nil
}

// delete issues a non recursive hard delete for the entity at path.
func (c *Client) delete(ctx context.Context, path string) error {
	query := url.Values{}
	query.Set("recursive", "false")
	query.Set("hardDelete", "true")
	return c.doRequest(ctx, http.MethodDelete, path, query, nil, nil)
}

// listAll walks a paginated list endpoint following the after cursor and
// hands every page to collect.
func (c *Client) listAll(ctx context.Context, path string, collect func(json.RawMessage) error) error {
	after := ""
	for {
		query := url.Values{}
		query.Set("limit", fmt.Sprintf("%d", listPageSize))
		if after != "" {
			query.Set("after", after)
		}

		envelope := struct {
			Data   json.RawMessage `json:"data"`
			Paging paging          `json:"paging"`
		}{}
		if err := c.doRequest(ctx, http.MethodGet, path, query, nil, &envelope); err != nil {
			return err
		}

		if err := collect(envelope.Data); err != nil {
			return err
		}

		if envelope.Paging.After == "" {
			return nil
		}
		after = envelope.Paging.After
	}
}

// doRequest issues an HTTP call to the OpenMetadata API, retrying transient
// failures with exponential backoff. Every call in this client is idempotent,
// so retrying is always safe.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return err
		}
	}

	endpoint := strings.TrimSuffix(c.BaseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	operation := func() error {
		request, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}

		request.Header.Set("User-Agent", userAgentString())
		request.Header.Set("Accept", "application/json")
		if payload != nil {
			request.Header.Set("Content-Type", "application/json")
		}

		response, err := c.getClient(ctx).Do(request)
		if err != nil {
			return err
		}
		defer response.Body.Close()

		return handleResponse(response, out)
	}

	backOff := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	return backoff.Retry(operation, backoff.WithMaxRetries(backOff, maxRetries))
}

// handleResponse decodes a successful body into out, or turns the server
// error payload into a Go error. Gateway-level failures are retryable.
func handleResponse(response *http.Response, out any) error {
	switch {
	case response.StatusCode == http.StatusNotFound:
		return backoff.Permanent(errNotFound)
	case response.StatusCode >= http.StatusBadGateway:
		return fmt.Errorf("transient server error: %s", response.Status)
	case response.StatusCode >= http.StatusBadRequest:
		decoder := json.NewDecoder(response.Body)
		var respBody map[string]any
		if err := decoder.Decode(&respBody); err == nil {
			if message, ok := respBody["message"].(string); ok {
				return backoff.Permanent(errors.New(message))
			}
		}
		return backoff.Permanent(errors.New("unexpected error: " + response.Status))
	}

	if out == nil {
		return nil
	}

	decoder := json.NewDecoder(response.Body)
	if err := decoder.Decode(out); err != nil {
		return backoff.Permanent(err)
	}
	return nil
}

// getClient lazily builds the authenticated HTTP client.
func (c *Client) getClient(ctx context.Context) *http.Client {
	client := c.client.Load()
	if client != nil {
		return client
	}

	client = &http.Client{}
	client.Transport = newTransport(ctx, c.JWTToken)
	c.client.Store(client)
	return client
}

// userAgentString builds the User-Agent header consumed by the server.
func userAgentString() string {
	return info.AppName + "/" + info.Version
}
