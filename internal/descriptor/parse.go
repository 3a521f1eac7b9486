// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package descriptor

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// ErrParsing reports failures that occur while decoding a descriptor document.
	ErrParsing = errors.New("unable to parse the descriptor")
	// ErrInvalidDescriptor reports a descriptor that decoded correctly but
	// does not satisfy the structural constraints.
	ErrInvalidDescriptor = errors.New("invalid descriptor")
)

// validate is shared across parses; the validator instance is safe for
// concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Parse decodes a YAML data product descriptor and validates its structure.
// Validation failures are collected in the returned error message so they can
// be reported back to the coordinator in a single response.
func Parse(document string) (*DataProduct, error) {
	dataProduct := new(DataProduct)
	if err := yaml.Unmarshal([]byte(document), dataProduct); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParsing, err.Error())
	}

	if err := validate.Struct(dataProduct); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDescriptor, err.Error())
		}

		messages := make([]error, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fmt.Errorf("field %q fails rule %q", fieldError.Namespace(), fieldError.Tag()))
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDescriptor, errors.Join(messages...))
	}

	return dataProduct, nil
}
