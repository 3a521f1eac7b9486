// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"context"
	"testing"

	"github.com/mia-platform/omta/internal/api"
	"github.com/mia-platform/omta/internal/descriptor"
	"github.com/mia-platform/omta/internal/server"
)

var (
	_ server.Provisioner    = &FakeProvisioner{}
	_ server.GlossaryPicker = &FakeGlossaryPicker{}
)

// FakeProvisioner records the data products handed to the lifecycle
// operations and answers with the configured results.
type FakeProvisioner struct {
	tb testing.TB

	ValidatedProducts     []*descriptor.DataProduct
	ProvisionedProducts   []*descriptor.DataProduct
	UnprovisionedProducts []*descriptor.DataProduct
	RemoveDataFlags       []bool

	ValidationError    *api.ValidationError
	Status             *api.ProvisioningStatus
	ValidationStatuses map[string]*api.ValidationStatus
	Err                error
}

func NewFakeProvisioner(tb testing.TB) *FakeProvisioner {
	tb.Helper()
	return &FakeProvisioner{
		tb:                 tb,
		ValidationStatuses: make(map[string]*api.ValidationStatus),
	}
}

func (f *FakeProvisioner) Validate(_ context.Context, dataProduct *descriptor.DataProduct) (*api.ValidationError, error) {
	f.tb.Helper()
	f.ValidatedProducts = append(f.ValidatedProducts, dataProduct)
	return f.ValidationError, f.Err
}

func (f *FakeProvisioner) Provision(_ context.Context, dataProduct *descriptor.DataProduct) (*api.ProvisioningStatus, error) {
	f.tb.Helper()
	f.ProvisionedProducts = append(f.ProvisionedProducts, dataProduct)
	return f.Status, f.Err
}

func (f *FakeProvisioner) Unprovision(_ context.Context, dataProduct *descriptor.DataProduct, removeData bool) (*api.ProvisioningStatus, error) {
	f.tb.Helper()
	f.UnprovisionedProducts = append(f.UnprovisionedProducts, dataProduct)
	f.RemoveDataFlags = append(f.RemoveDataFlags, removeData)
	return f.Status, f.Err
}

func (f *FakeProvisioner) StartAsyncValidation(_ context.Context, dataProduct *descriptor.DataProduct) string {
	f.tb.Helper()
	f.ValidatedProducts = append(f.ValidatedProducts, dataProduct)
	return "fake-token"
}

func (f *FakeProvisioner) AsyncValidationStatus(token string) (*api.ValidationStatus, bool) {
	f.tb.Helper()
	status, found := f.ValidationStatuses[token]
	return status, found
}

func (f *FakeProvisioner) ProvisioningStatus(_ string) (*api.ProvisioningStatus, bool) {
	f.tb.Helper()
	if f.Status == nil {
		return nil, false
	}
	return f.Status, true
}

// FakeGlossaryPicker records the picker requests and answers with the
// configured items.
type FakeGlossaryPicker struct {
	tb testing.TB

	TermsRequests      []*api.PickerResourcesRequest
	ValidationRequests []*api.PickerValidationRequest

	Items           []api.PickerItem
	ValidationError *api.PickerValidationError
	Err             error
}

func NewFakeGlossaryPicker(tb testing.TB) *FakeGlossaryPicker {
	tb.Helper()
	return &FakeGlossaryPicker{tb: tb}
}

func (f *FakeGlossaryPicker) Terms(_ context.Context, request *api.PickerResourcesRequest, _, _ int, _ string) ([]api.PickerItem, error) {
	f.tb.Helper()
	f.TermsRequests = append(f.TermsRequests, request)
	return f.Items, f.Err
}

func (f *FakeGlossaryPicker) ValidateTerms(_ context.Context, request *api.PickerValidationRequest) (*api.PickerValidationError, error) {
	f.tb.Helper()
	f.ValidationRequests = append(f.ValidationRequests, request)
	return f.ValidationError, f.Err
}
