// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	forwardedHostHeaderKey = "x-forwarded-host"
	forwardedForHeaderKey  = "x-forwarded-for"
	requestIDHeaderName    = "x-request-id"

	IncomingRequestMessage  = "incoming request"
	RequestCompletedMessage = "request completed"
)

// http, request, response, host and url shape the structured fields of the
// request log lines.
type http struct {
	Request  *request  `json:"request,omitempty"`
	Response *response `json:"response,omitempty"`
}

type userAgent struct {
	Original string `json:"original,omitempty"`
}

type request struct {
	Method    string    `json:"method,omitempty"`
	UserAgent userAgent `json:"userAgent"`
}

type responseBody struct {
	Bytes int `json:"bytes,omitempty"`
}

type response struct {
	StatusCode int          `json:"statusCode,omitempty"`
	Body       responseBody `json:"body"`
}

type host struct {
	Hostname      string `json:"hostname,omitempty"`
	ForwardedHost string `json:"forwardedHost,omitempty"`
	IP            string `json:"ip,omitempty"`
}

type url struct {
	Path string `json:"path,omitempty"`
}

// RequestMiddlewareLogger returns a fiber middleware that traces incoming
// requests and logs their completion with status, size and latency. Paths
// starting with one of excludedPrefix are left out, so probe endpoints do not
// flood the logs. A request-scoped logger carrying the request id is stored
// in the fiber user context for the handlers.
func RequestMiddlewareLogger(logger Logger, excludedPrefix []string) func(*fiber.Ctx) error {
	return func(fiberCtx *fiber.Ctx) error {
		path := string(fiberCtx.Request().URI().RequestURI())
		for _, prefix := range excludedPrefix {
			if strings.HasPrefix(path, prefix) {
				return fiberCtx.Next()
			}
		}

		start := time.Now()
		requestLogger := logger.WithName("request").WithName(requestID(fiberCtx))
		fiberCtx.SetUserContext(WithContext(fiberCtx.UserContext(), requestLogger))

		requestLogger.WithName("incoming_request").Trace(IncomingRequestMessage,
			"http", http{Request: requestFields(fiberCtx)},
			"url", url{Path: path},
			"host", hostFields(fiberCtx),
		)

		err := fiberCtx.Next()

		requestLogger.WithName("request_completed").Info(RequestCompletedMessage,
			"http", http{
				Request: requestFields(fiberCtx),
				Response: &response{
					StatusCode: statusCode(fiberCtx, err),
					Body:       responseBody{Bytes: bodySize(fiberCtx, err)},
				},
			},
			"url", url{Path: path},
			"host", hostFields(fiberCtx),
			"responseTime", float64(time.Since(start).Milliseconds()),
		)

		return err
	}
}

// requestID returns the id sent by the caller, or mints one.
func requestID(fiberCtx *fiber.Ctx) string {
	if id := fiberCtx.Get(requestIDHeaderName); id != "" {
		return id
	}

	return uuid.NewString()
}

func requestFields(fiberCtx *fiber.Ctx) *request {
	return &request{
		Method: fiberCtx.Method(),
		UserAgent: userAgent{
			Original: fiberCtx.Get("user-agent"),
		},
	}
}

func hostFields(fiberCtx *fiber.Ctx) host {
	hostname := string(fiberCtx.Request().Host())
	return host{
		ForwardedHost: fiberCtx.Get(forwardedHostHeaderKey),
		Hostname:      strings.Split(hostname, ":")[0],
		IP:            fiberCtx.Get(forwardedForHeaderKey),
	}
}

// statusCode reports the status the client will see: a fiber.Error carries
// its own code, overriding whatever the handler wrote before failing.
func statusCode(fiberCtx *fiber.Ctx, handlerErr error) int {
	if fiberErr, ok := handlerErr.(*fiber.Error); handlerErr != nil && ok {
		return fiberErr.Code
	}

	return fiberCtx.Response().StatusCode()
}

func bodySize(fiberCtx *fiber.Ctx, handlerErr error) int {
	if fiberErr, ok := handlerErr.(*fiber.Error); handlerErr != nil && ok {
		return len(fiberErr.Error())
	}

	if content := fiberCtx.GetRespHeader("Content-Length"); content != "" {
		if length, err := strconv.Atoi(content); err == nil {
			return length
		}
	}

	return len(fiberCtx.Response().Body())
}
