// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// platformEnv holds unprefixed variables commonly set by hosting platforms.
type platformEnv struct {
	Port      int    `env:"PORT"`
	JWTSecret string `env:"JWT_SECRET"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. PORT and JWT_SECRET are honoured when their prefixed
// counterparts are not set.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	platform, err := env.ParseAs[platformEnv]()
	if err != nil {
		return fmt.Errorf("error getting platform env configs: %w", err)
	}

	cfg.Server.Port = platform.Port
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = platform.JWTSecret
	}

	return nil
}
