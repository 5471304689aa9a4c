// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mesto/internal/logger"
)

var fixedNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func newMockDB(t *testing.T, dialect Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	return newDB(conn, dialect, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t, DialectPostgres)
	return &userRepository{DB: db, logger: logger.Nop(), now: func() time.Time { return fixedNow }}, mock
}

func newTestCardRepo(t *testing.T) (*cardRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t, DialectPostgres)
	return &cardRepository{DB: db, logger: logger.Nop(), now: func() time.Time { return fixedNow }}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"id", "name", "about", "avatar", "email", "password_hash", "created_at"}
