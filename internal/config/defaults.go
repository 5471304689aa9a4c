// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	// EnvProduction is the App.Env value that enables strict secret checks.
	EnvProduction = "production"
	// EnvDevelopment is the default App.Env value.
	EnvDevelopment = "development"

	// DevTokenSignKey signs tokens outside production when no key is set.
	DevTokenSignKey = "dev-secret"

	DefaultTokenIssuer   = "mesto"
	DefaultTokenDuration = 7 * 24 * time.Hour
	DefaultPort          = 3000
	DefaultAllowedOrigin = "http://localhost:3000"
)

// applyDefaults fills every field left empty by all sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Env == "" {
		cfg.App.Env = EnvDevelopment
	}
	if cfg.App.TokenSignKey == "" && !cfg.App.IsProduction() {
		cfg.App.TokenSignKey = DevTokenSignKey
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = bcrypt.DefaultCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "debug"
		if cfg.App.IsProduction() {
			cfg.App.LogLevel = "info"
		}
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":" + strconv.Itoa(cfg.Server.Port)
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{DefaultAllowedOrigin}
	}
}
