// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-bitcredit/internal/logger"
	"github.com/MKhiriev/go-bitcredit/models"
)

// MintConfigKey is the storage key of the persisted mint configuration.
const MintConfigKey = "bitcredit.mint_config"

// MintConfigStore reads and writes the mint configuration kept under
// [MintConfigKey]. Writes are read-modify-write with last writer wins.
type MintConfigStore struct {
	repo     KeyValueRepository
	defaults models.MintConfig
	logger   *logger.Logger
}

func NewMintConfigStore(repo KeyValueRepository, defaults models.MintConfig, log *logger.Logger) *MintConfigStore {
	return &MintConfigStore{
		repo:     repo,
		defaults: cloneMintConfig(defaults),
		logger:   log,
	}
}

// Read returns the defaults overlaid with the stored value. A missing or
// undecodable stored value yields the defaults.
func (s *MintConfigStore) Read(ctx context.Context) (models.MintConfig, error) {
	result := cloneMintConfig(s.defaults)

	raw, err := s.repo.Get(ctx, MintConfigKey)
	if errors.Is(err, ErrKeyNotFound) {
		return result, nil
	}
	if err != nil {
		return models.MintConfig{}, fmt.Errorf("read mint config: %w", err)
	}

	var stored models.MintConfig
	if err = json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.WithTraceID(ctx).Warn().
			Err(err).
			Str("func", "MintConfigStore.Read").
			Str("key", MintConfigKey).
			Msg("stored mint config is corrupt, using defaults")
		return result, nil
	}

	if err = overlayMintConfig(&result, stored); err != nil {
		return models.MintConfig{}, fmt.Errorf("read mint config: %w", err)
	}
	return result, nil
}

// Write overlays the non-zero fields of partial onto the current value and
// persists the result, which it returns.
func (s *MintConfigStore) Write(ctx context.Context, partial models.MintConfig) (models.MintConfig, error) {
	current, err := s.Read(ctx)
	if err != nil {
		return models.MintConfig{}, fmt.Errorf("write mint config: %w", err)
	}

	if err = overlayMintConfig(&current, partial); err != nil {
		return models.MintConfig{}, fmt.Errorf("write mint config: %w", err)
	}

	data, err := json.Marshal(current)
	if err != nil {
		return models.MintConfig{}, fmt.Errorf("write mint config: %w: %w", ErrEncodingValue, err)
	}

	if err = s.repo.Set(ctx, MintConfigKey, string(data)); err != nil {
		return models.MintConfig{}, fmt.Errorf("write mint config: %w", err)
	}
	return current, nil
}

// Reset removes the stored value so that Read yields the defaults again.
func (s *MintConfigStore) Reset(ctx context.Context) error {
	if err := s.repo.Delete(ctx, MintConfigKey); err != nil {
		return fmt.Errorf("reset mint config: %w", err)
	}
	return nil
}

// overlayMintConfig merges src onto dst. Scalar fields go through mergo,
// which skips zero values; flags are copied key by key so that a flag can
// be switched off.
func overlayMintConfig(dst *models.MintConfig, src models.MintConfig) error {
	flags := src.Flags
	src.Flags = nil

	if err := mergo.Merge(dst, src, mergo.WithOverride); err != nil {
		return err
	}

	if len(flags) > 0 {
		if dst.Flags == nil {
			dst.Flags = make(map[string]bool, len(flags))
		}
		maps.Copy(dst.Flags, flags)
	}
	return nil
}

func cloneMintConfig(c models.MintConfig) models.MintConfig {
	c.Flags = maps.Clone(c.Flags)
	return c
}
