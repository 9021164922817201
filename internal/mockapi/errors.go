// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mockapi

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when the addressed record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest is returned for malformed or incomplete input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConflict is returned when the request contradicts current state,
	// e.g. accepting an already accepted bill.
	ErrConflict = errors.New("conflict")

	// ErrForbidden is returned when the active identity may not perform
	// the operation on the bill.
	ErrForbidden = errors.New("forbidden")
)

var errorStatusMap = map[error]int{
	ErrNotFound:       http.StatusNotFound,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrConflict:       http.StatusConflict,
	ErrForbidden:      http.StatusForbidden,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
