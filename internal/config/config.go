// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, environment
// variables, command-line flags and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client-wide switches: the mock layer, log level and the
	// directory used by the installed-app share action.
	App App `envPrefix:"APP_"`

	// Adapter holds the node API address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local storage database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Environment holds the signals used to detect the installed-app
	// context.
	Environment Environment `envPrefix:"ENV_"`

	// MockNode holds the listen address of the standalone mock node.
	MockNode MockNode `envPrefix:"MOCK_NODE_"`

	// ConfigFilePath is the optional path to a config file. Files ending in
	// .yaml or .yml are read as YAML, anything else as JSON with comments.
	// Populated via the CONFIG environment variable or the -c / --config
	// flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level switches.
type App struct {
	// MockAPI routes every node API call to the in-process mock node
	// instead of the network.
	// Env: APP_MOCK_API
	MockAPI bool `env:"MOCK_API"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// ShareDir is where the installed-app share action writes files.
	// Env: APP_SHARE_DIR
	ShareDir string `env:"SHARE_DIR"`
}

// Adapter holds the node API connection settings.
type Adapter struct {
	// HTTPAddress is the base URL of the node API, e.g.
	// "http://localhost:8000". A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request. Zero means no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (or DSN) of the local storage.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Environment holds the installed-app detection signals. In a browser these
// come from the display-mode media query, navigator.standalone and
// document.referrer; here they are supplied by the launcher.
type Environment struct {
	// DisplayMode is "standalone" when launched as an installed app.
	// Env: ENV_DISPLAY_MODE
	DisplayMode string `env:"DISPLAY_MODE"`

	// Standalone is the explicit standalone flag.
	// Env: ENV_STANDALONE
	Standalone bool `env:"STANDALONE"`

	// Referrer is the launching referrer, e.g. "android-app://...".
	// Env: ENV_REFERRER
	Referrer string `env:"REFERRER"`
}

// MockNode holds the settings of cmd/mocknode.
type MockNode struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: MOCK_NODE_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	shareDir, err := os.UserHomeDir()
	if err != nil {
		shareDir = "."
	}

	return &StructuredConfig{
		App: App{
			LogLevel: "debug",
			ShareDir: shareDir,
		},
		Adapter: Adapter{
			HTTPAddress: "http://localhost:8000",
		},
		Storage: Storage{
			DB: DB{DSN: "bitcredit.db"},
		},
		MockNode: MockNode{
			HTTPAddress: "localhost:8000",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. args are the command-line arguments without the
// program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
