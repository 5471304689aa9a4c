// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the Mesto API (e.g. "http://localhost:3000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains the API address and timeout.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	// LogLevel is the minimum log level of the client logger.
	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"CLIENT_LOG_LEVEL"`
	// TokenFile is where the session token is kept between invocations.
	// Env: CLIENT_TOKEN_FILE
	TokenFile string `env:"CLIENT_TOKEN_FILE"`
	// Args holds the positional arguments left after flag parsing: the
	// command name followed by its arguments.
	Args []string
}

const (
	defaultClientAddress = "http://localhost:3000"
	defaultClientTimeout = 10 * time.Second
)

// GetClientConfig builds the client configuration from environment variables
// and the flags in args (environment wins), then applies defaults and
// validates it.
//
// Flags:
//
//	-a API base URL
//	-t request timeout
//	-log-level client log level
//	-token-file session token file
func GetClientConfig(args []string) (*ClientConfig, error) {
	envCfg, err := env.ParseAs[ClientConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	flagsCfg := new(ClientConfig)
	fs := flag.NewFlagSet("mesto-client", flag.ContinueOnError)
	fs.StringVar(&flagsCfg.Adapter.HTTPAddress, "a", "", "API base URL")
	fs.DurationVar(&flagsCfg.Adapter.RequestTimeout, "t", 0, "Request timeout")
	fs.StringVar(&flagsCfg.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&flagsCfg.TokenFile, "token-file", "", "Session token file")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	flagsCfg.Args = fs.Args()

	cfg := &envCfg
	if err := mergo.Merge(cfg, flagsCfg); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultClientAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultClientTimeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.TokenFile == "" {
		cfg.TokenFile = defaultTokenFile()
	}

	return cfg, cfg.validate()
}

// defaultTokenFile returns <user config dir>/mesto/token, or a file in the
// working directory when the user config dir is unknown.
func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".mesto-token"
	}
	return filepath.Join(dir, "mesto", "token")
}
