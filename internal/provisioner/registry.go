// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package provisioner

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mia-platform/omta/internal/api"
	"github.com/mia-platform/omta/internal/descriptor"
)

// registry tracks asynchronous validations by token. Tokens only live for
// the lifetime of the process: validations run synchronously against the
// catalog, so there is nothing to resume after a restart.
type registry struct {
	mutex sync.RWMutex

	validations map[string]*api.ValidationStatus
}

func newRegistry() *registry {
	return &registry{
		validations: make(map[string]*api.ValidationStatus),
	}
}

func (r *registry) setValidation(token string, status *api.ValidationStatus) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.validations[token] = status
}

func (r *registry) validation(token string) (*api.ValidationStatus, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	status, ok := r.validations[token]
	return status, ok
}

// StartAsyncValidation runs Validate in the background and returns the token
// to poll for its outcome.
func (s *Service) StartAsyncValidation(ctx context.Context, dataProduct *descriptor.DataProduct) string {
	token := uuid.NewString()
	s.registry.setValidation(token, &api.ValidationStatus{Status: api.StatusRunning})

	// the request context is canceled once the 202 response is sent
	backgroundCtx := context.WithoutCancel(ctx)
	go func() {
		validationError, err := s.Validate(backgroundCtx, dataProduct)
		switch {
		case err != nil:
			s.registry.setValidation(token, &api.ValidationStatus{
				Status: api.StatusFailed,
				Result: &api.ValidationResult{Valid: false, Error: &api.ValidationError{Errors: []string{err.Error()}}},
			})
		case validationError != nil:
			s.registry.setValidation(token, &api.ValidationStatus{
				Status: api.StatusCompleted,
				Result: &api.ValidationResult{Valid: false, Error: validationError},
			})
		default:
			s.registry.setValidation(token, &api.ValidationStatus{
				Status: api.StatusCompleted,
				Result: &api.ValidationResult{Valid: true},
			})
		}
	}()

	return token
}

// AsyncValidationStatus returns the state of an asynchronous validation.
func (s *Service) AsyncValidationStatus(token string) (*api.ValidationStatus, bool) {
	return s.registry.validation(token)
}

// ProvisioningStatus answers the provisioning status polls. Provision and
// Unprovision complete synchronously and never mint tokens, so every token is
// reported as unknown.
func (s *Service) ProvisioningStatus(_ string) (*api.ProvisioningStatus, bool) {
	return nil, false
}
