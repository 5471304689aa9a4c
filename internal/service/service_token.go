// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-mesto/internal/config"
	"github.com/MKhiriev/go-mesto/internal/errs"
	"github.com/MKhiriev/go-mesto/internal/utils"
	"github.com/MKhiriev/go-mesto/models"
)

// tokenService signs HS256 session tokens with a single shared secret.
type tokenService struct {
	signKey  string
	issuer   string
	duration time.Duration
	now      func() time.Time
}

// NewTokenService constructs a TokenService from the app configuration.
// now is the clock used for iat, exp and expiry checks; nil means time.Now.
func NewTokenService(cfg config.App, now func() time.Time) TokenService {
	if now == nil {
		now = time.Now
	}

	return &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		now:      now,
	}
}

func (s *tokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	const op = "tokenService.Issue"

	token, err := utils.GenerateJWTToken(s.issuer, userID, s.now(), s.duration, s.signKey)
	if err != nil {
		return models.Token{}, errs.E(errs.KindInternal, op, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err))
	}

	return token, nil
}

func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Token, error) {
	const op = "tokenService.Verify"

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer, s.now)
	if err != nil {
		cause := ErrTokenIsInvalid
		if errors.Is(err, jwt.ErrTokenExpired) {
			cause = ErrTokenIsExpired
		}
		return models.Token{}, errs.E(errs.KindInvalidCredential, op, fmt.Errorf("%w: %w", cause, err))
	}

	return token, nil
}
