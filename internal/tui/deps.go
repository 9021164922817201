// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-bitcredit/internal/dispatch"
	"github.com/MKhiriev/go-bitcredit/internal/logger"
	"github.com/MKhiriev/go-bitcredit/internal/service"
	"github.com/MKhiriev/go-bitcredit/internal/session"
	"github.com/MKhiriev/go-bitcredit/internal/validators"
	"github.com/MKhiriev/go-bitcredit/models"
)

// MintConfigStore reads and writes the persisted mint configuration.
type MintConfigStore interface {
	Read(ctx context.Context) (models.MintConfig, error)
	Write(ctx context.Context, partial models.MintConfig) (models.MintConfig, error)
	Reset(ctx context.Context) error
}

// Deps is everything the screens use.
type Deps struct {
	Services    *service.ClientServices
	Session     *session.Session
	Share       *dispatch.Action[string, dispatch.ShareResult]
	MintConfig  MintConfigStore
	Validator   validators.Validator
	Environment dispatch.Environment
	Logger      *logger.Logger
}

func (d *Deps) nodeID() string {
	return d.Session.Snapshot().NodeID
}
