// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-bitcredit/internal/config"
	"github.com/MKhiriev/go-bitcredit/internal/logger"
	"github.com/MKhiriev/go-bitcredit/internal/mockapi"
	"github.com/MKhiriev/go-bitcredit/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetMockNodeConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLevelLogger("bitcredit-mocknode", cfg.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	handler := mockapi.NewHandler(mockapi.NewNode(log), log)

	srv, err := server.NewServer(handler.Init(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
