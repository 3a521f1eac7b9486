// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mia-platform/omta/internal/glossary"
	"github.com/mia-platform/omta/internal/logger"
	"github.com/mia-platform/omta/internal/openmetadata"
	"github.com/mia-platform/omta/internal/provisioner"
	"github.com/mia-platform/omta/internal/server"
)

const serveLoggerName = "omta:serve"

// serveOptions holds the wired components for the serve command.
type serveOptions struct {
	server *server.Server
}

// newServeOptions builds the catalog client and the services from the
// environment and wires them into the HTTP server.
func newServeOptions(ctx context.Context) (*serveOptions, error) {
	catalog, err := openmetadata.NewClient()
	if err != nil {
		return nil, err
	}

	srv, err := server.New(ctx, provisioner.New(catalog), glossary.New(catalog))
	if err != nil {
		return nil, err
	}

	return &serveOptions{server: srv}, nil
}

// execute runs the server until the process receives an interrupt or
// termination signal, then shuts it down gracefully.
func (o *serveOptions) execute(ctx context.Context) error {
	log := logger.FromContext(ctx).WithName(serveLoggerName)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	o.server.StartAsync(ctx)
	log.Info("server started")

	<-ctx.Done()
	log.Info("shutdown signal received, stopping server")
	return o.server.Stop()
}
