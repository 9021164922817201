// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line flags in args (program name excluded).
//
// Flags:
//
//	-a, --address          node API base URL
//	    --request-timeout  request timeout (e.g. "30s"); zero disables it
//	    --mock             use the in-process mock node
//	-d, --db               local storage database path
//	    --log-level        zerolog level name
//	    --share-dir        directory for the installed-app share action
//	    --display-mode     display mode signal ("standalone" when installed)
//	    --standalone       standalone signal
//	    --referrer         launching referrer signal
//	-l, --listen           mock node listen address host:port
//	-c, --config           config file path (JSON with comments or YAML)
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		listen         NetAddress
		address        string
		requestTimeout time.Duration
		mockAPI        bool
		dsn            string
		logLevel       string
		shareDir       string
		displayMode    string
		standalone     bool
		referrer       string
		configPath     string
	)

	fs := pflag.NewFlagSet("bitcredit", pflag.ContinueOnError)
	fs.StringVarP(&address, "address", "a", "", "Node API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s); 0 disables it")
	fs.BoolVar(&mockAPI, "mock", false, "Serve node API calls from the in-process mock node")
	fs.StringVarP(&dsn, "db", "d", "", "Local storage database path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&shareDir, "share-dir", "", "Directory used by the installed-app share action")
	fs.StringVar(&displayMode, "display-mode", "", "Display mode signal (standalone when installed)")
	fs.BoolVar(&standalone, "standalone", false, "Standalone signal")
	fs.StringVar(&referrer, "referrer", "", "Launching referrer signal")
	fs.VarP(&listen, "listen", "l", "Mock node listen address host:port")
	fs.StringVarP(&configPath, "config", "c", "", "Config file path (JSON with comments or YAML)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			MockAPI:  mockAPI,
			LogLevel: logLevel,
			ShareDir: shareDir,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Environment: Environment{
			DisplayMode: displayMode,
			Standalone:  standalone,
			Referrer:    referrer,
		},
		MockNode: MockNode{
			HTTPAddress: listen.String(),
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty (all interfaces), and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
