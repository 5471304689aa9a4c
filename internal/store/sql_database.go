// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mesto/internal/config"
	"github.com/MKhiriev/go-mesto/internal/errs"
	"github.com/MKhiriev/go-mesto/internal/logger"
	"github.com/MKhiriev/go-mesto/migrations"
)

// Dialect names the SQL flavour behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DB is a database handle bound to its dialect: the query builder uses the
// dialect's placeholder format and driver errors are classified by the
// dialect's classifier.
type DB struct {
	*sql.DB
	dialect         Dialect
	builder         sq.StatementBuilderType
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// newDB wraps an open connection for the given dialect.
func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassifier = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassifier = NewPostgresErrorClassifier()
	}

	return db
}

// NewConnect opens the database named by cfg.DSN. "postgres://" and
// "postgresql://" DSNs (and key=value connection strings) use PostgreSQL;
// "sqlite://" and "file:" DSNs use SQLite.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch dialectOf(cfg.DSN) {
	case DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(cfg.DSN))
	}
}

func dialectOf(dsn string) Dialect {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return DialectSQLite
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"), strings.Contains(dsn, "host="):
		return DialectPostgres
	default:
		return ""
	}
}

// redactDSN drops everything after the scheme so credentials never reach logs.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "…"
	}
	return "…"
}

// Dialect returns the SQL flavour of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// classify wraps err into an [*errs.Error] whose kind is derived from the
// driver error. sql.ErrNoRows is always [errs.KindNotFound].
func (db *DB) classify(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, ErrNoRowsAffected) {
		return errs.E(errs.KindNotFound, op, err)
	}
	return errs.E(db.errorClassifier.Classify(err), op, err)
}
