// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mesto/internal/crypto"
	"github.com/MKhiriev/go-mesto/internal/errs"
	"github.com/MKhiriev/go-mesto/internal/logger"
	"github.com/MKhiriev/go-mesto/internal/store"
	"github.com/MKhiriev/go-mesto/models"
)

// Profile values given to accounts that sign up without them.
const (
	DefaultUserName   = "Жак-Ив Кусто"
	DefaultUserAbout  = "Исследователь"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// authService is the concrete implementation of AuthService.
// It stores bcrypt password hashes through the UserRepository and hands
// token work to the TokenService.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	tokens         TokenService
	logger         *logger.Logger
}

// NewAuthService constructs an AuthService.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokens TokenService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// SignUp hashes the password, fills default profile values and stores the
// account. The email is trimmed and lower-cased, so addresses that differ
// only by case collide on the unique constraint.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	const op = "authService.SignUp"
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(req.Password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return models.User{}, errs.E(errs.KindInvalidData, op, err)
	}
	if err != nil {
		log.Err(err).Str("func", op).Msg("password hashing failed")
		return models.User{}, errs.E(errs.KindInternal, op, err)
	}

	user := models.User{
		Name:         withDefault(req.Name, DefaultUserName),
		About:        withDefault(req.About, DefaultUserAbout),
		Avatar:       withDefault(req.Avatar, DefaultUserAvatar),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Debug().Err(err).Str("func", op).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", op).Str("user_id", created.ID).Msg("user signed up")
	return created, nil
}

// SignIn looks the account up by email and compares the password. Both an
// unknown email and a mismatch end in the same error, and an unknown email
// still spends a bcrypt comparison.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.Token, error) {
	const op = "authService.SignIn"
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if errs.Is(err, errs.KindNotFound) {
		a.hasher.CompareDummy(req.Password)
		return models.Token{}, errs.E(errs.KindInvalidCredential, op, ErrWrongCredentials)
	}
	if err != nil {
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	err = a.hasher.Compare(user.PasswordHash, req.Password)
	if errors.Is(err, crypto.ErrPasswordMismatch) {
		log.Debug().Str("func", op).Str("user_id", user.ID).Msg("wrong password")
		return models.Token{}, errs.E(errs.KindInvalidCredential, op, ErrWrongCredentials)
	}
	if err != nil {
		log.Err(err).Str("func", op).Str("user_id", user.ID).Msg("password comparison failed")
		return models.Token{}, errs.E(errs.KindInternal, op, err)
	}

	return a.tokens.Issue(ctx, user.ID)
}

// ParseToken delegates to the TokenService.
func (a *authService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	return a.tokens.Verify(ctx, token)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
