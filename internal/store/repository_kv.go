// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bitcredit/internal/logger"
)

type kvRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewKeyValueRepository returns a [KeyValueRepository] over the local
// database.
func NewKeyValueRepository(db *DB, log *logger.Logger) KeyValueRepository {
	return &kvRepository{
		DB:     db,
		logger: log,
		now:    time.Now,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	log := r.logger.WithTraceID(ctx)

	query, args, err := buildSelectValueQuery(key)
	if err != nil {
		log.Err(err).Str("func", "kvRepository.Get").Msg("failed to build select query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrKeyNotFound
	case err != nil:
		log.Err(err).Str("func", "kvRepository.Get").Str("key", key).Msg("failed to read value")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (r *kvRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	log := r.logger.WithTraceID(ctx)

	query, args, err := buildUpsertValueQuery(key, value, r.now())
	if err != nil {
		log.Err(err).Str("func", "kvRepository.Set").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "kvRepository.Set").Str("key", key).Msg("failed to upsert value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrValueNotSaved
	}

	log.Debug().Str("func", "kvRepository.Set").Str("key", key).Msg("value saved")
	return nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildDeleteValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithTraceID(ctx).Err(err).
			Str("func", "kvRepository.Delete").
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
