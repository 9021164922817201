// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bitcredit/internal/adapter"
	"github.com/MKhiriev/go-bitcredit/internal/config"
	"github.com/MKhiriev/go-bitcredit/internal/dispatch"
	"github.com/MKhiriev/go-bitcredit/internal/logger"
	"github.com/MKhiriev/go-bitcredit/internal/mockapi"
	"github.com/MKhiriev/go-bitcredit/internal/service"
	"github.com/MKhiriev/go-bitcredit/internal/session"
	"github.com/MKhiriev/go-bitcredit/internal/store"
	"github.com/MKhiriev/go-bitcredit/internal/tui"
	"github.com/MKhiriev/go-bitcredit/internal/validators"
)

// App is the assembled client.
type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	session  *session.Session
	deps     *tui.Deps
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp builds every layer from cfg. The caller owns the returned App and
// must call Run, which releases the local storage on exit.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	adapterCfg, transport := nodeTransport(cfg, log)
	apiClient, err := adapter.NewHTTPAPIClient(adapterCfg, transport, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create api client: %w", err)
	}

	services := service.NewClientServices(apiClient)
	sess := session.New(services.IdentityService, services.CompanyService, log)

	env := dispatch.NewStaticDetector(dispatch.SignalsFromConfig(cfg.Environment))
	registry := dispatch.NewRegistry(env, log)
	share, err := dispatch.RegisterShare(registry, cfg.App.ShareDir)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("register share action: %w", err)
	}

	deps := &tui.Deps{
		Services:    services,
		Session:     sess,
		Share:       share,
		MintConfig:  storages.MintConfig,
		Validator:   validators.NewFormValidator(),
		Environment: env,
		Logger:      log,
	}
	ui, err := tui.New(deps)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	log.Info().
		Bool("mock_api", cfg.App.MockAPI).
		Bool("installed", env.Installed()).
		Msg("client assembled")

	return &App{
		storages: storages,
		services: services,
		session:  sess,
		deps:     deps,
		ui:       ui,
		logger:   log,
	}, nil
}

// nodeTransport returns the adapter settings and transport: the network by
// default, the in-process mock node when the mock flag is set.
func nodeTransport(cfg *config.ClientConfig, log *logger.Logger) (config.ClientAdapter, http.RoundTripper) {
	if !cfg.App.MockAPI {
		return cfg.Adapter, nil
	}

	mockLog := log.Component("mockapi")
	node := mockapi.NewNode(mockLog)
	adapterCfg := cfg.Adapter
	adapterCfg.HTTPAddress = mockapi.BaseURL
	return adapterCfg, mockapi.NewTransport(mockapi.NewHandler(node, mockLog))
}

// Run shows the terminal UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("close local storage")
		}
	}()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client closed by user")
		return nil
	}
	return err
}
