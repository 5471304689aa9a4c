// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way hashes and checks
// candidates against them. Hashes are self-describing (algorithm, cost and
// salt are embedded), so a hash produced with one cost still verifies after
// the configured cost changes.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and
	// [ErrPasswordMismatch] when it does not. Any other error means hash is
	// not a valid hash.
	Compare(hash, password string) error

	// CompareDummy spends the same time as a real Compare without a stored
	// hash. Callers use it when the account does not exist, so response
	// times do not reveal which emails are registered.
	CompareDummy(password string)
}
