// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	MockAPI  bool
	LogLevel string
	ShareDir string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the node API base URL.
	HTTPAddress string
	// RequestTimeout is the per-request timeout; zero means none.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	DSN string
}

// ClientEnvironment carries the installed-app detection signals.
type ClientEnvironment struct {
	DisplayMode string
	Standalone  bool
	Referrer    string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App         ClientApp
	Adapter     ClientAdapter
	Storage     ClientStorage
	Environment ClientEnvironment
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			MockAPI:  cfg.App.MockAPI,
			LogLevel: cfg.App.LogLevel,
			ShareDir: cfg.App.ShareDir,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Environment: ClientEnvironment{
			DisplayMode: cfg.Environment.DisplayMode,
			Standalone:  cfg.Environment.Standalone,
			Referrer:    cfg.Environment.Referrer,
		},
	}
}

// MockNodeConfig is the configuration of the standalone mock node.
type MockNodeConfig struct {
	HTTPAddress string
	LogLevel    string
}

// GetMockNodeConfig builds the mock node's config view.
func GetMockNodeConfig(args []string) (*MockNodeConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	mockCfg := &MockNodeConfig{
		HTTPAddress: cfg.MockNode.HTTPAddress,
		LogLevel:    cfg.App.LogLevel,
	}
	return mockCfg, mockCfg.validate()
}
