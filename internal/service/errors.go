// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrTokenIsInvalid covers every token failure except expiry: bad
	// signature, unexpected algorithm, wrong issuer, malformed token or
	// missing subject.
	ErrTokenIsInvalid = errors.New("token is invalid")
	// ErrTokenIsExpired is returned when the token's exp claim has passed.
	ErrTokenIsExpired = errors.New("token is expired")
	// ErrTokenCreationFailed is returned when a token cannot be signed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrWrongCredentials is returned for an unknown email or a wrong
	// password.
	ErrWrongCredentials = errors.New("wrong email or password")
)
