// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package openmetadata

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// errNotFound marks a lookup that returned no entity; callers translate it
// into an absent result instead of a failure.
var errNotFound = errors.New("entity not found")

// ClientError wraps lower-level errors produced while talking to the
// OpenMetadata server.
type ClientError struct {
	err error
}

func (e *ClientError) Error() string {
	return "openmetadata: " + e.err.Error()
}

func (e *ClientError) Unwrap() error {
	return e.err
}

func (e *ClientError) Is(target error) bool {
	cre, ok := target.(*ClientError)
	if !ok {
		return false
	}

	return e.err.Error() == cre.err.Error()
}

// handleError normalizes errors emitted by the client. Context cancellations
// are wrapped like any other failure: an operation cut short must never be
// reported as a success to the caller.
func handleError(err error) error {
	var parseErr env.AggregateError
	if errors.As(err, &parseErr) {
		err = parseErr.Errors[0]
	}

	return &ClientError{
		err: err,
	}
}
