// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer. Each is wrapped in an
// [errs.Error] of the appropriate kind before it reaches the normalizer.
var (
	// ErrMissingTokenCookie is reported by the auth gate when the request
	// carries no `jwt` cookie or the cookie is empty.
	ErrMissingTokenCookie = errors.New("missing `jwt` cookie")

	// ErrNoUserIDInContext is reported by protected handlers that run
	// without the auth gate having stored a user id.
	ErrNoUserIDInContext = errors.New("no user id in request context")

	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRouteNotFound is reported for unknown paths and unsupported methods.
	ErrRouteNotFound = errors.New("route not found")

	// ErrPanicRecovered wraps the value of a recovered handler panic.
	ErrPanicRecovered = errors.New("panic recovered")
)
