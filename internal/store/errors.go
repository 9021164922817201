// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the local storage layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned when a key has no stored value.
	ErrKeyNotFound = errors.New("key not found")

	// ErrValueNotSaved is returned when an upsert completes without error
	// but affects no rows.
	ErrValueNotSaved = errors.New("value was not saved")

	// ErrEmptyKey is returned for operations on an empty key.
	ErrEmptyKey = errors.New("empty storage key")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingValue is returned when a value cannot be marshalled for
	// storage.
	ErrEncodingValue = errors.New("failed to encode stored value")
)
