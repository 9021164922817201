// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable = "local_storage"

	kvUpsertSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

// sqlite uses "?" placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectValueQuery(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertValueQuery(key, value string, now time.Time) (string, []any, error) {
	return psql.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now.UTC()).
		Suffix(kvUpsertSuffix).
		ToSql()
}

func buildDeleteValueQuery(key string) (string, []any, error) {
	return psql.
		Delete(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
