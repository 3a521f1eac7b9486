// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package api

// PickerItem is a selectable entry returned to the custom URL picker.
type PickerItem struct {
	ID       string `json:"id"`
	Glossary string `json:"glossary"`
	Name     string `json:"name"`
	FQN      string `json:"fqn"`
}

// PickerResourcesRequest is the optional body of a picker resources request,
// used to narrow results to a single domain.
type PickerResourcesRequest struct {
	Domain string `json:"domain,omitempty"`
}

// PickerValidationRequest asks to verify that the selected items still exist.
type PickerValidationRequest struct {
	SelectedObjects []PickerItem            `json:"selectedObjects"`
	QueryParameters *PickerResourcesRequest `json:"queryParameters,omitempty"`
}

// PickerError is a single validation failure, optionally with a remediation hint.
type PickerError struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PickerValidationError collects the failures of a picker validation request.
type PickerValidationError struct {
	Errors []PickerError `json:"errors"`
}

// PickerMalformedRequestError reports a request the picker could not interpret.
type PickerMalformedRequestError struct {
	Errors []string `json:"errors"`
}

// PickerSystemError reports an unrecoverable picker failure.
type PickerSystemError struct {
	Errors []string `json:"errors"`
}
