// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package provisioner

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/mia-platform/omta/internal/api"
	"github.com/mia-platform/omta/internal/descriptor"
	"github.com/mia-platform/omta/internal/logger"
	"github.com/mia-platform/omta/internal/openmetadata"
)

const loggerName = "omta:provisioner"

// Catalog is the subset of the catalog client the provisioner depends on.
type Catalog interface {
	BaseWebURL() string
	UpsertStorageService(ctx context.Context) (*openmetadata.StorageService, error)
	UpsertContainerCustomProperties(ctx context.Context) error
	UpsertDomain(ctx context.Context, name string) (*openmetadata.Domain, error)
	UpsertDataProduct(ctx context.Context, request openmetadata.CreateDataProduct) (*openmetadata.DataProduct, error)
	UpsertContainer(ctx context.Context, request openmetadata.CreateContainer) (*openmetadata.Container, error)
	DeleteDataProduct(ctx context.Context, name string) error
	DeleteContainer(ctx context.Context, componentName string) error
	ListClassificationTags(ctx context.Context) ([]openmetadata.Tag, error)
	ListGlossaryTerms(ctx context.Context) ([]openmetadata.GlossaryTerm, error)
}

// Service orchestrates the lifecycle operations against the catalog.
type Service struct {
	catalog  Catalog
	registry *registry
}

// New returns a Service backed by the given catalog.
func New(catalog Catalog) *Service {
	return &Service{
		catalog:  catalog,
		registry: newRegistry(),
	}
}

// Validate checks that every classification tag and glossary term referenced
// by the descriptor columns exists in the catalog. A non-nil ValidationError
// reports the missing references; an error reports a catalog failure.
func (s *Service) Validate(ctx context.Context, dataProduct *descriptor.DataProduct) (*api.ValidationError, error) {
	log := logger.FromContext(ctx).WithName(loggerName)
	log.Info("starting validation", "system", dataProduct.ID)

	classificationTags, glossaryTerms := referencedTags(dataProduct)

	validationErrors := make([]string, 0)
	if _, err := descriptor.DataProductName(dataProduct.ID); err != nil {
		validationErrors = append(validationErrors, err.Error())
	}
	for _, port := range dataProduct.OutputPorts() {
		if _, err := descriptor.ComponentName(port.ID); err != nil {
			validationErrors = append(validationErrors, err.Error())
		}
	}

	if len(classificationTags) > 0 {
		existing, err := s.catalog.ListClassificationTags(ctx)
		if err != nil {
			return nil, err
		}
		existingFQNs := make(map[string]struct{}, len(existing))
		for _, tag := range existing {
			existingFQNs[tag.FullyQualifiedName] = struct{}{}
		}

		if missing := missingFrom(classificationTags, existingFQNs); len(missing) > 0 {
			validationErrors = append(validationErrors, "missing classification tags "+strings.Join(missing, ",")+" in the catalog")
		}
	}

	if len(glossaryTerms) > 0 {
		existing, err := s.catalog.ListGlossaryTerms(ctx)
		if err != nil {
			return nil, err
		}
		existingFQNs := make(map[string]struct{}, len(existing))
		for _, term := range existing {
			existingFQNs[term.FullyQualifiedName] = struct{}{}
		}

		if missing := missingFrom(glossaryTerms, existingFQNs); len(missing) > 0 {
			validationErrors = append(validationErrors, "missing glossary terms "+strings.Join(missing, ",")+" in the catalog")
		}
	}

	if len(validationErrors) > 0 {
		log.Error("validation failed", "system", dataProduct.ID, "errors", validationErrors)
		return &api.ValidationError{Errors: validationErrors}, nil
	}

	log.Info("validation successful", "system", dataProduct.ID)
	return nil, nil
}

// Provision publishes the data product and its output ports to the catalog.
// The sequence upserts the storage service, the container custom properties,
// the domain, the data product and finally one container per output port.
func (s *Service) Provision(ctx context.Context, dataProduct *descriptor.DataProduct) (*api.ProvisioningStatus, error) {
	log := logger.FromContext(ctx).WithName(loggerName)
	log.Info("starting provisioning", "system", dataProduct.ID)

	dataProductName, err := descriptor.DataProductName(dataProduct.ID)
	if err != nil {
		return nil, err
	}

	if _, err := s.catalog.UpsertStorageService(ctx); err != nil {
		return nil, err
	}
	if err := s.catalog.UpsertContainerCustomProperties(ctx); err != nil {
		return nil, err
	}
	if _, err := s.catalog.UpsertDomain(ctx, dataProduct.Domain); err != nil {
		return nil, err
	}

	createDataProduct := openmetadata.CreateDataProduct{
		Name:        dataProductName,
		DisplayName: dataProduct.Name,
		Description: dataProduct.Description,
		Domain:      dataProduct.Domain,
	}
	if _, err := s.catalog.UpsertDataProduct(ctx, createDataProduct); err != nil {
		return nil, err
	}

	for _, port := range dataProduct.OutputPorts() {
		createContainer, err := containerFor(dataProduct, dataProductName, port)
		if err != nil {
			return nil, err
		}
		if _, err := s.catalog.UpsertContainer(ctx, *createContainer); err != nil {
			return nil, err
		}
	}

	log.Info("successfully provisioned", "system", dataProduct.ID)
	return &api.ProvisioningStatus{
		Status: api.StatusCompleted,
		Result: "",
		Info: &api.Info{
			PublicInfo:  s.publicInfo(dataProduct, dataProductName),
			PrivateInfo: map[string]any{},
		},
	}, nil
}

// Unprovision removes the output port containers and the data product from
// the catalog. Domains and glossary terms may be shared with other data
// products and are left untouched.
func (s *Service) Unprovision(ctx context.Context, dataProduct *descriptor.DataProduct, _ bool) (*api.ProvisioningStatus, error) {
	log := logger.FromContext(ctx).WithName(loggerName)
	log.Info("starting unprovisioning", "system", dataProduct.ID)

	dataProductName, err := descriptor.DataProductName(dataProduct.ID)
	if err != nil {
		return nil, err
	}

	for _, port := range dataProduct.OutputPorts() {
		componentName, err := descriptor.ComponentName(port.ID)
		if err != nil {
			return nil, err
		}
		if err := s.catalog.DeleteContainer(ctx, componentName); err != nil {
			return nil, err
		}
	}

	if err := s.catalog.DeleteDataProduct(ctx, dataProductName); err != nil {
		return nil, err
	}

	log.Info("successfully unprovisioned", "system", dataProduct.ID)
	return &api.ProvisioningStatus{Status: api.StatusCompleted, Result: ""}, nil
}

// publicInfo builds the deploy information shown to users, linking back to
// the data product page in the catalog UI.
func (s *Service) publicInfo(dataProduct *descriptor.DataProduct, dataProductName string) map[string]any {
	return map[string]any{
		dataProduct.ID: map[string]any{
			"system_url": map[string]any{
				"type":  "string",
				"label": "OpenMetadata URL",
				"value": "View in OpenMetadata",
				"href":  fmt.Sprintf("%sdataProduct/%s", s.catalog.BaseWebURL(), url.PathEscape(dataProductName)),
			},
		},
	}
}

// referencedTags walks every output port column and splits the referenced tag
// labels by source.
func referencedTags(dataProduct *descriptor.DataProduct) (classificationTags, glossaryTerms map[string]struct{}) {
	classificationTags = make(map[string]struct{})
	glossaryTerms = make(map[string]struct{})
	for _, port := range dataProduct.OutputPorts() {
		for _, column := range port.DataContract.Schema {
			for _, tag := range column.Tags {
				switch tag.Source {
				case descriptor.TagSourceClassification:
					classificationTags[tag.TagFQN] = struct{}{}
				case descriptor.TagSourceGlossary:
					glossaryTerms[tag.TagFQN] = struct{}{}
				}
			}
		}
	}

	return classificationTags, glossaryTerms
}

// missingFrom returns the sorted entries of wanted that are absent from existing.
func missingFrom(wanted, existing map[string]struct{}) []string {
	missing := make([]string, 0)
	for fqn := range wanted {
		if _, ok := existing[fqn]; !ok {
			missing = append(missing, fqn)
		}
	}

	slices.Sort(missing) // deterministic reporting
	return missing
}
