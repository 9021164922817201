// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MintConfig is the client's mint settings, persisted locally under a
// single storage key. Flags holds feature toggles keyed by name.
type MintConfig struct {
	DefaultMintURL    string          `json:"default_mint_url,omitempty"`
	DefaultMintNodeID string          `json:"default_mint_node_id,omitempty"`
	Flags             map[string]bool `json:"flags,omitempty"`
}
