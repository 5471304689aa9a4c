// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-mesto/internal/errs"
)

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier]. Errors that are not
// *pgconn.PgError are [errs.KindInternal].
func (c *PostgresErrorClassifier) Classify(err error) errs.Kind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return errs.KindInternal
}

// ClassifyPgError maps a *pgconn.PgError to a failure kind based on the
// PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
//   - 23505 unique_violation → Conflict
//   - 23503 foreign_key_violation → NotFound (the referenced row is gone)
//   - 22P02 invalid_text_representation, 22001 string_data_right_truncation,
//     23514 check_violation → InvalidData
//   - everything else → Internal
func ClassifyPgError(pgErr *pgconn.PgError) errs.Kind {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return errs.KindConflict

	case pgerrcode.ForeignKeyViolation:
		return errs.KindNotFound

	case pgerrcode.InvalidTextRepresentation,
		pgerrcode.StringDataRightTruncationDataException,
		pgerrcode.CheckViolation:
		return errs.KindInvalidData
	}

	return errs.KindInternal
}
