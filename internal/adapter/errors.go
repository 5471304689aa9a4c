// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrInvalidAddress is returned by NewHTTPMestoAdapter for an empty or
	// unparsable base URL.
	ErrInvalidAddress = errors.New("invalid adapter http address")

	// ErrNoTokenInResponse is returned by SignIn when a successful response
	// carries no `jwt` cookie.
	ErrNoTokenInResponse = errors.New("no `jwt` cookie in sign-in response")
)
