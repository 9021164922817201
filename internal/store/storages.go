// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bitcredit/internal/config"
	"github.com/MKhiriev/go-bitcredit/internal/logger"
	"github.com/MKhiriev/go-bitcredit/models"
)

// ClientStorages groups the client-side storage components.
type ClientStorages struct {
	KeyValue   KeyValueRepository
	MintConfig *MintConfigStore

	db *DB
}

// NewClientStorages opens the local database, applies migrations and
// wires the repositories on top of it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log = log.Component("store")
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, log), nil
}

func newClientStorages(db *DB, log *logger.Logger) *ClientStorages {
	kv := NewKeyValueRepository(db, log)
	return &ClientStorages{
		KeyValue:   kv,
		MintConfig: NewMintConfigStore(kv, models.MintConfig{}, log),
		db:         db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
