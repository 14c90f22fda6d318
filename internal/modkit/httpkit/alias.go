// Package httpkit is the HTTP surface service modules import: handler
// adapters, route sugar and the common middleware stack.
package httpkit

import (
	"net/http"

	phttp "interviewcoach/internal/platform/net/http"
)

// Platform types under the names handlers use
type (
	Envelope = phttp.Envelope
	Response = phttp.Response
	Handler  = phttp.Handler
	Router   = phttp.Router
)

// OK wraps data in a 200 envelope
func OK(data any) Response { return phttp.OK(data) }

// Created wraps data in a 201 envelope, e.g. a new session
func Created(data any) Response { return phttp.Created(data) }

// Error maps err to its status and error envelope
func Error(err error) Response { return phttp.Error(err) }

// JSON decodes and validates a T body, then runs fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler { return phttp.JSONHandler(fn) }

// Call runs fn for requests without a JSON body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.CallHandler(fn) }

// URLParam returns the {key} path segment
func URLParam(r *http.Request, key string) string { return phttp.URLParam(r, key) }
