// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 3000}, expected: ":3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:3000", want: NetAddress{Host: "localhost", Port: 3000}},
		{name: "ipv4", input: "0.0.0.0:8080", want: NetAddress{Host: "0.0.0.0", Port: 8080}},
		{name: "all interfaces", input: ":3000", want: NetAddress{Port: 3000}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:65536", expectError: true},
		{name: "hostname", input: "mesto.example:80", expectError: true},
		{name: "too many colons", input: "a:b:c", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:4000",
		"-port", "4001",
		"-d", "sqlite://mesto.db",
		"-config", "/etc/mesto.json",
		"-env", "production",
		"-token-sign-key", "key",
		"-token-issuer", "issuer",
		"-token-duration", "24h",
		"-password-hash-cost", "11",
		"-log-level", "error",
		"-request-timeout", "5s",
		"-cookie-domain", "mesto.example",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:4000", cfg.Server.HTTPAddress)
	assert.Equal(t, 4001, cfg.Server.Port)
	assert.Equal(t, "sqlite://mesto.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/mesto.json", cfg.JSONFilePath)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "mesto.example", cfg.Server.CookieDomain)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"-a", "nope"},
		{"-token-duration", "forever"},
		{"-undefined"},
	} {
		_, err := parseFlags(args)
		assert.Error(t, err, "args %v", args)
	}
}

func TestGetClientConfig(t *testing.T) {
	t.Run("defaults and positional args", func(t *testing.T) {
		clearConfigEnv(t)

		cfg, err := GetClientConfig([]string{"cards"})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3000", cfg.Adapter.HTTPAddress)
		assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, []string{"cards"}, cfg.Args)
	})

	t.Run("env wins over flags", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("ADAPTER_ADDRESS", "https://api.mesto.example")

		cfg, err := GetClientConfig([]string{"-a", "http://127.0.0.1:9999", "-t", "2s", "like", "65f1c0de8a1b2c3d4e5f6a7b"})
		require.NoError(t, err)
		assert.Equal(t, "https://api.mesto.example", cfg.Adapter.HTTPAddress)
		assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
		assert.Equal(t, []string{"like", "65f1c0de8a1b2c3d4e5f6a7b"}, cfg.Args)
	})

	t.Run("token file flag", func(t *testing.T) {
		clearConfigEnv(t)

		cfg, err := GetClientConfig([]string{"-token-file", "/tmp/mesto-token", "me"})
		require.NoError(t, err)
		assert.Equal(t, "/tmp/mesto-token", cfg.TokenFile)
	})

	t.Run("token file has a default", func(t *testing.T) {
		clearConfigEnv(t)

		cfg, err := GetClientConfig([]string{"me"})
		require.NoError(t, err)
		assert.NotEmpty(t, cfg.TokenFile)
	})

	t.Run("negative timeout is rejected", func(t *testing.T) {
		clearConfigEnv(t)

		_, err := GetClientConfig([]string{"-t", "-1s"})
		assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
	})
}
