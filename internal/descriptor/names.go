// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package descriptor

import (
	"errors"
	"fmt"
	"strings"
)

// Descriptor identifiers are URNs in the form
// urn:dmb:cmp:<domain>:<data-product>:<major-version>[:<component>].
const (
	urnSeparator         = ":"
	urnDataProductParts  = 6
	urnComponentParts    = 7
	urnNamePartsStart    = 3
	urnDataProductEnd    = 6
	urnComponentPartsEnd = 7
)

// ErrMalformedID reports an identifier that does not follow the URN scheme.
var ErrMalformedID = errors.New("malformed identifier")

// DataProductName derives the catalog name of a data product from its URN:
// the domain, name and major version parts joined by a colon.
func DataProductName(id string) (string, error) {
	parts := strings.Split(id, urnSeparator)
	if len(parts) < urnDataProductParts {
		return "", fmt.Errorf("%w: %q", ErrMalformedID, id)
	}

	return strings.Join(parts[urnNamePartsStart:urnDataProductEnd], urnSeparator), nil
}

// ComponentName derives the catalog name of a component from its URN: the
// data product name parts followed by the component part.
func ComponentName(id string) (string, error) {
	parts := strings.Split(id, urnSeparator)
	if len(parts) < urnComponentParts {
		return "", fmt.Errorf("%w: %q", ErrMalformedID, id)
	}

	return strings.Join(parts[urnNamePartsStart:urnComponentPartsEnd], urnSeparator), nil
}
