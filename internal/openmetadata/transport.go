// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package openmetadata

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// newTransport creates an HTTP transport that injects the configured JWT as a
// bearer token. An empty token leaves requests unauthenticated, which is only
// useful against servers with authentication disabled.
func newTransport(_ context.Context, token string) http.RoundTripper {
	if token == "" {
		return http.DefaultTransport
	}

	return &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
	}
}
