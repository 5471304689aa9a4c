// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrPasswordMismatch is returned by Compare when the password does not
	// match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")
	// ErrPasswordTooLong is returned by Hash for passwords bcrypt cannot
	// process (longer than 72 bytes).
	ErrPasswordTooLong = errors.New("password is too long")
)
