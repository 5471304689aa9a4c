// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// Mesto server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies as {"message": ...}. Keeping them in one place keeps the
// wording identical for every route that reports the same failure.
package app

const (
	// MsgAuthorizationRequired is returned for a missing, expired or
	// otherwise invalid session token, and for wrong sign-in credentials.
	MsgAuthorizationRequired = "Authorization required."

	// MsgForbidden is returned when an authenticated user tries to modify a
	// resource owned by someone else.
	MsgForbidden = "Not permitted to modify this resource."

	// MsgNotFound is returned for unknown ids and unknown routes.
	MsgNotFound = "Resource not found."

	// MsgInvalidData is returned when the request body or a path id fails
	// decoding or validation.
	MsgInvalidData = "Invalid data supplied."

	// MsgConflict is returned when a uniqueness constraint is violated,
	// e.g. signing up with an email that is already registered.
	MsgConflict = "Resource already exists."

	// MsgInternalServerError is returned for every unexpected failure. The
	// cause is logged and never echoed to the client.
	MsgInternalServerError = "Internal server error"

	// MsgSignedIn is the body of a successful sign-in.
	MsgSignedIn = "Signed in."

	// MsgSignedOut is the body of a logout response.
	MsgSignedOut = "Signed out."
)
