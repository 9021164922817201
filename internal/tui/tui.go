// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-bitcredit/internal/router"
	"github.com/MKhiriev/go-bitcredit/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("quit by user")

// TUI runs the terminal screens.
type TUI struct {
	deps *Deps
}

func New(deps *Deps) (*TUI, error) {
	if deps == nil || deps.Services == nil || deps.Session == nil {
		return nil, errors.New("tui: services and session are required")
	}
	return &TUI{deps: deps}, nil
}

// Run blocks until the user quits. Session transitions are forwarded into
// the event loop so the header and the guard follow identity changes. The
// session is only driven from commands, which run outside the event loop,
// so Send never blocks the loop itself.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.deps, string(router.Home))
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.deps.Session.Subscribe(func(snap session.Snapshot) {
		program.Send(sessionChangedMsg{snapshot: snap})
	})
	defer unsubscribe()

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
