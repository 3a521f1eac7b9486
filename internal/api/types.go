// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package api

// DescriptorKind discriminates the payload carried by a ProvisioningRequest.
type DescriptorKind string

const (
	DataProductDescriptor            DescriptorKind = "DATAPRODUCT_DESCRIPTOR"
	DataProductDescriptorWithResults DescriptorKind = "DATAPRODUCT_DESCRIPTOR_WITH_RESULTS"
	ComponentDescriptor              DescriptorKind = "COMPONENT_DESCRIPTOR"
)

// Provisioning operation statuses reported to the coordinator.
const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// ProvisioningRequest is the request body of the provision, unprovision and
// validate operations. The descriptor is an opaque YAML document.
type ProvisioningRequest struct {
	DescriptorKind DescriptorKind `json:"descriptorKind"`
	Descriptor     string         `json:"descriptor"`
	RemoveData     bool           `json:"removeData,omitempty"`
}

// Info carries deploy information to expose to users (public) or to keep for
// the platform only (private).
type Info struct {
	PublicInfo  map[string]any `json:"publicInfo"`
	PrivateInfo map[string]any `json:"privateInfo"`
}

// ProvisioningStatus is the outcome of a provisioning operation.
type ProvisioningStatus struct {
	Status string `json:"status"`
	Result string `json:"result"`
	Info   *Info  `json:"info,omitempty"`
}

// ValidationError collects the reasons a descriptor was rejected.
type ValidationError struct {
	Errors []string `json:"errors"`
}

// ValidationResult is the response of the synchronous validate operation.
type ValidationResult struct {
	Valid bool             `json:"valid"`
	Error *ValidationError `json:"error,omitempty"`
}

// ValidationStatus is the state of an asynchronous validation operation.
type ValidationStatus struct {
	Status string            `json:"status"`
	Result *ValidationResult `json:"result,omitempty"`
}

// SystemError reports an unrecoverable failure while serving a request.
type SystemError struct {
	Error string `json:"error"`
}

// ProvisionInfo pairs the original provisioning request with its result.
type ProvisionInfo struct {
	Request string `json:"request"`
	Result  string `json:"result"`
}

// UpdateAclRequest asks to grant access to a provisioned component to the
// listed subject references.
type UpdateAclRequest struct {
	Refs          []string      `json:"refs"`
	ProvisionInfo ProvisionInfo `json:"provisionInfo"`
}
