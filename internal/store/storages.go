// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-mesto/internal/logger"

// Storages groups the repositories the services depend on.
type Storages struct {
	UserRepository UserRepository
	CardRepository CardRepository
}

// NewStorages builds every repository over db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		CardRepository: NewCardRepository(db, log),
	}
}
