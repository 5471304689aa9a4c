// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-mesto/internal/adapter"
	"github.com/MKhiriev/go-mesto/internal/client"
	"github.com/MKhiriev/go-mesto/internal/config"
	"github.com/MKhiriev/go-mesto/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewClientLogger("mesto-client", "info").Fatal().Err(err).Msg("error getting configs")
	}

	if len(cfg.Args) > 0 && cfg.Args[0] == "version" {
		printBuildInfo()
		return
	}

	log := logger.NewClientLogger("mesto-client", cfg.LogLevel)

	mestoAdapter, err := adapter.NewHTTPMestoAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(mestoAdapter, cfg, os.Stdout, log)
	if err = app.Run(ctx, cfg.Args); err != nil {
		if errors.Is(err, client.ErrNoCommand) {
			os.Exit(2)
		}
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
