// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

import "errors"

var (
	// ErrActionTypeMismatch is returned when an identifier is registered
	// again with different input or result types.
	ErrActionTypeMismatch = errors.New("action registered with different types")
	// ErrActionPanicked wraps a panic raised by an action implementation.
	ErrActionPanicked = errors.New("action panicked")
	// ErrNilAction is returned when a first registration lacks an
	// implementation.
	ErrNilAction = errors.New("nil action implementation")
	// ErrEmptyActionID is returned for an empty identifier.
	ErrEmptyActionID = errors.New("empty action id")
)
