// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/omta/internal/api"
	"github.com/mia-platform/omta/internal/descriptor"
	"github.com/mia-platform/omta/internal/info"
	"github.com/mia-platform/omta/internal/logger"
)

const (
	serviceName = "omta"
	loggerName  = "omta:server"
)

var (
	ErrServerListen   = errors.New("server listen error")
	ErrServerShutdown = errors.New("server shutdown error")
)

// Provisioner is the lifecycle service the HTTP endpoints delegate to.
type Provisioner interface {
	Validate(ctx context.Context, dataProduct *descriptor.DataProduct) (*api.ValidationError, error)
	Provision(ctx context.Context, dataProduct *descriptor.DataProduct) (*api.ProvisioningStatus, error)
	Unprovision(ctx context.Context, dataProduct *descriptor.DataProduct, removeData bool) (*api.ProvisioningStatus, error)
	StartAsyncValidation(ctx context.Context, dataProduct *descriptor.DataProduct) string
	AsyncValidationStatus(token string) (*api.ValidationStatus, bool)
	ProvisioningStatus(token string) (*api.ProvisioningStatus, bool)
}

// GlossaryPicker is the glossary lookup service behind the picker endpoints.
type GlossaryPicker interface {
	Terms(ctx context.Context, request *api.PickerResourcesRequest, offset, limit int, filter string) ([]api.PickerItem, error)
	ValidateTerms(ctx context.Context, request *api.PickerValidationRequest) (*api.PickerValidationError, error)
}

// Server exposes the provisioning and picker APIs over HTTP.
type Server struct {
	config

	app *fiber.App
}

type config = Config

// New creates a Server configured from environment variables, wiring the
// lifecycle and picker endpoints to the given services.
func New(ctx context.Context, provisioner Provisioner, picker GlossaryPicker) (*Server, error) {
	cfg, err := LoadServerConfig()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: cfg.DisableStartupMessage,
		Immutable:             true, // handlers may hold onto body slices past the request lifecycle
	})
	log := logger.FromContext(ctx)
	app.Use(logger.RequestMiddlewareLogger(log, []string{"/-/"}))

	statusRoutes(app, serviceName, info.Version)
	provisionerRoutes(app, provisioner)
	pickerRoutes(app, picker)

	return &Server{
		app:    app,
		config: *cfg,
	}, nil
}

// App exposes the underlying fiber application, used in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	if err := s.app.Listen(fmt.Sprintf("%s:%s", s.HTTPHost, s.HTTPPort)); err != nil {
		return fmt.Errorf("%w: %w", ErrServerListen, err)
	}
	return nil
}

func (s *Server) Stop() error {
	if err := s.app.Shutdown(); err != nil {
		return fmt.Errorf("%w: %w", ErrServerShutdown, err)
	}
	return nil
}

func (s *Server) StartAsync(ctx context.Context) {
	log := logger.FromContext(ctx).WithName(loggerName)
	go func() {
		if err := s.Start(); err != nil {
			log.Error(err.Error())
		}
	}()
}
