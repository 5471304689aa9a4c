// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mesto/internal/logger"
	"github.com/MKhiriev/go-mesto/internal/utils"
	"github.com/MKhiriev/go-mesto/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// CreateUser stores a new user. A duplicate email is reported as a conflict
// by the UNIQUE constraint on users.email.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const op = "userRepository.CreateUser"
	log := logger.FromContext(ctx)

	user.ID = utils.NewObjectID()
	user.CreatedAt = r.now().UTC().Truncate(time.Microsecond)

	query, args, err := buildInsertUserQuery(r.builder, user)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to build query")
		return models.User{}, r.classify(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", op).Msg("failed to insert user")
		return models.User{}, r.classify(op, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return user, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "userRepository.FindUserByEmail", sq.Eq{"email": email})
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "userRepository.FindUserByID", sq.Eq{"id": userID})
}

func (r *userRepository) findUser(ctx context.Context, op string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.builder, where)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to build query")
		return models.User{}, r.classify(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Debug().Err(err).Str("func", op).Msg("user lookup failed")
		return models.User{}, r.classify(op, fmt.Errorf("%w: %w", ErrScanningRow, err))
	}

	return user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "userRepository.ListUsers"
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to build query")
		return nil, r.classify(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to execute query")
		return nil, r.classify(op, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", op).Msg("failed to scan user row")
			return nil, r.classify(op, fmt.Errorf("%w: %w", ErrScanningRow, scanErr))
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", op).Msg("error occurred during rows iteration")
		return nil, r.classify(op, fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	return users, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID, name, about string) (models.User, error) {
	return r.updateUser(ctx, "userRepository.UpdateProfile", userID, map[string]any{
		"name":  name,
		"about": about,
	})
}

func (r *userRepository) UpdateAvatar(ctx context.Context, userID, avatar string) (models.User, error) {
	return r.updateUser(ctx, "userRepository.UpdateAvatar", userID, map[string]any{
		"avatar": avatar,
	})
}

func (r *userRepository) updateUser(ctx context.Context, op, userID string, set map[string]any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.builder, userID, set)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to build query")
		return models.User{}, r.classify(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Debug().Err(err).Str("func", op).Str("user_id", userID).Msg("user update failed")
		return models.User{}, r.classify(op, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return user, nil
}
