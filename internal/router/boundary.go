// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bitcredit/internal/logger"
)

const unknownErrorMessage = "unknown error"

// Failure is what the failure screen shows: a message and the route of
// the "back to home" affordance.
type Failure struct {
	Message string
	Home    Route
}

// Boundary catches errors escaping a screen.
type Boundary struct {
	logger *logger.Logger
}

// NewBoundary returns a Boundary logging through log.
func NewBoundary(log *logger.Logger) *Boundary {
	return &Boundary{logger: log.Component("boundary")}
}

// Catch converts err into a Failure. A nil err yields nil.
func (b *Boundary) Catch(err error) *Failure {
	if err == nil {
		return nil
	}

	b.logger.Err(err).Str("func", "Boundary.Catch").Msg("screen failed")

	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = unknownErrorMessage
	}
	return &Failure{Message: msg, Home: Home}
}

// Run calls fn and converts a returned error or a panic into a Failure.
func (b *Boundary) Run(fn func() error) (failure *Failure) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		switch v := rec.(type) {
		case error:
			failure = b.Catch(v)
		case string:
			failure = b.Catch(fmt.Errorf("%s", v))
		default:
			b.logger.Error().Interface("panic", rec).Msg("screen panicked")
			failure = &Failure{Message: unknownErrorMessage, Home: Home}
		}
	}()

	return b.Catch(fn())
}
