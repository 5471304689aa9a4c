// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-mesto/internal/config"
	"github.com/MKhiriev/go-mesto/internal/crypto"
	"github.com/MKhiriev/go-mesto/internal/logger"
	"github.com/MKhiriev/go-mesto/internal/store"
	"github.com/MKhiriev/go-mesto/internal/validators"
)

type Services struct {
	TokenService TokenService
	AuthService  AuthService
	UserService  UserService
	CardService  CardService
}

// NewServices wires the business services over storages. Every service
// that accepts client input is wrapped in its validation decorator.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()
	tokens := NewTokenService(cfg.App, nil)
	hasher := crypto.NewPasswordHasher(cfg.App.PasswordHashCost)

	return &Services{
		TokenService: tokens,
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, hasher, tokens, logger)),
		UserService: NewUserValidationService(validator).
			Wrap(NewUserService(storages.UserRepository, logger)),
		CardService: NewCardValidationService(validator).
			Wrap(NewCardService(storages.CardRepository, logger)),
	}
}
