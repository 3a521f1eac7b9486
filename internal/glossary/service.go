// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package glossary

import (
	"context"
	"strings"

	"github.com/mia-platform/omta/internal/api"
	"github.com/mia-platform/omta/internal/openmetadata"
)

// Catalog is the subset of the catalog client the picker depends on.
type Catalog interface {
	ListGlossaryTerms(ctx context.Context) ([]openmetadata.GlossaryTerm, error)
	GetGlossaryTerm(ctx context.Context, fqn string) (*openmetadata.GlossaryTerm, error)
}

// Service answers custom URL picker requests with glossary terms.
type Service struct {
	catalog Catalog
}

// New returns a Service backed by the given catalog.
func New(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Terms returns the requested page of glossary terms, filtered by fully
// qualified name substring and, when the request carries one, by domain name.
// Both filters are case-insensitive.
func (s *Service) Terms(ctx context.Context, request *api.PickerResourcesRequest, offset, limit int, filter string) ([]api.PickerItem, error) {
	terms, err := s.catalog.ListGlossaryTerms(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]openmetadata.GlossaryTerm, 0, len(terms))
	for _, term := range terms {
		if term.FullyQualifiedName == "" {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(term.FullyQualifiedName), strings.ToLower(filter)) {
			continue
		}
		if request != nil && request.Domain != "" {
			if term.Domain == nil || !strings.Contains(strings.ToLower(term.Domain.Name), strings.ToLower(request.Domain)) {
				continue
			}
		}

		filtered = append(filtered, term)
	}

	return paginate(filtered, offset, limit), nil
}

// ValidateTerms verifies that every selected term still exists in the
// catalog. A non-nil PickerValidationError lists the missing ones.
func (s *Service) ValidateTerms(ctx context.Context, request *api.PickerValidationRequest) (*api.PickerValidationError, error) {
	pickerErrors := make([]api.PickerError, 0)
	for _, item := range request.SelectedObjects {
		term, err := s.catalog.GetGlossaryTerm(ctx, item.FQN)
		if err != nil {
			return nil, err
		}
		if term == nil {
			pickerErrors = append(pickerErrors, api.PickerError{
				Error: "glossary term " + item.FQN + " not found in the catalog",
			})
		}
	}

	if len(pickerErrors) > 0 {
		return &api.PickerValidationError{Errors: pickerErrors}, nil
	}
	return nil, nil
}

// paginate slices out the page [offset*limit, offset*limit+limit) and maps it
// to picker items.
func paginate(terms []openmetadata.GlossaryTerm, offset, limit int) []api.PickerItem {
	start := offset * limit
	if start > len(terms) {
		start = len(terms)
	}
	end := start + limit
	if end > len(terms) {
		end = len(terms)
	}

	items := make([]api.PickerItem, 0, end-start)
	for _, term := range terms[start:end] {
		items = append(items, api.PickerItem{
			ID:       term.FullyQualifiedName,
			Glossary: term.Glossary.Name,
			Name:     term.Name,
			FQN:      term.FullyQualifiedName,
		})
	}

	return items
}
