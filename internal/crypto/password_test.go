// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cretPassw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretPassw0rd", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.NoError(t, h.Compare(hash, "s3cretPassw0rd"))
	assert.ErrorIs(t, h.Compare(hash, "wrongPassw0rd"), ErrPasswordMismatch)
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	h1, err := h.Hash("samePassword1")
	require.NoError(t, err)
	h2, err := h.Hash("samePassword1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestPasswordHasher_UsesConfiguredCost(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost + 1)

	hash, err := h.Hash("costlyPassword")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
}

func TestPasswordHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	h := NewPasswordHasher(0).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

func TestPasswordHasher_HashFromOtherCostStillVerifies(t *testing.T) {
	old := NewPasswordHasher(bcrypt.MinCost)
	hash, err := old.Hash("migratedPassword")
	require.NoError(t, err)

	current := NewPasswordHasher(bcrypt.MinCost + 1)
	assert.NoError(t, current.Compare(hash, "migratedPassword"))
}

func TestPasswordHasher_TooLong(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestPasswordHasher_CompareMalformedHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	err := h.Compare("not-a-bcrypt-hash", "password")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestPasswordHasher_CompareDummyDoesNotPanic(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	assert.NotPanics(t, func() { h.CompareDummy("anything") })
}
