// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"encoding/json"
	"fmt"

	"github.com/mia-platform/omta/internal/api"
	"github.com/mia-platform/omta/internal/descriptor"
)

// unpackProvisioningRequest decodes a lifecycle request body and parses the
// data product descriptor it carries. Any failure is reported as a
// ValidationError so the handler can answer with a 400.
func unpackProvisioningRequest(body []byte) (*descriptor.DataProduct, bool, *api.ValidationError) {
	var request api.ProvisioningRequest
	if err := json.Unmarshal(body, &request); err != nil {
		return nil, false, &api.ValidationError{Errors: []string{"Unable to parse the request body.", err.Error()}}
	}

	if request.DescriptorKind != api.DataProductDescriptor &&
		request.DescriptorKind != api.DataProductDescriptorWithResults {
		message := fmt.Sprintf(
			"Expecting a DATAPRODUCT_DESCRIPTOR but got a %s instead; please check with the platform team.",
			request.DescriptorKind)
		return nil, false, &api.ValidationError{Errors: []string{message}}
	}

	dataProduct, err := descriptor.Parse(request.Descriptor)
	if err != nil {
		return nil, false, &api.ValidationError{Errors: []string{"Unable to parse the descriptor.", err.Error()}}
	}

	return dataProduct, request.RemoveData, nil
}

// unpackUpdateAclRequest decodes an update ACL request body and parses the
// descriptor stored in its provision info.
func unpackUpdateAclRequest(body []byte) (*descriptor.DataProduct, []string, *api.ValidationError) {
	var request api.UpdateAclRequest
	if err := json.Unmarshal(body, &request); err != nil {
		return nil, nil, &api.ValidationError{Errors: []string{"Unable to parse the request body.", err.Error()}}
	}

	dataProduct, err := descriptor.Parse(request.ProvisionInfo.Request)
	if err != nil {
		return nil, nil, &api.ValidationError{Errors: []string{"Unable to parse the descriptor.", err.Error()}}
	}

	return dataProduct, request.Refs, nil
}
