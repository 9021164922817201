// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig]. Only cross-cutting rules
// live here; each runtime view validates what it needs.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	// the mock node never dials out
	if !cfg.App.MockAPI && strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.App.ShareDir) == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *MockNodeConfig) validate() error {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return ErrInvalidMockNodeConfigs
	}
	return nil
}
