// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-bitcredit/internal/router"
	"github.com/MKhiriev/go-bitcredit/internal/validators"
	"github.com/MKhiriev/go-bitcredit/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type accountRestoredMsg struct {
	err error
}

// RestoreAccountModel recovers the node's keys from a seed phrase.
type RestoreAccountModel struct {
	ctx  context.Context
	deps *Deps
	form formModel
}

func newRestoreAccountModel(ctx context.Context, deps *Deps, _ router.Location) tea.Model {
	seed := newField(validators.FieldSeedPhrase, "Seed phrase", "twelve or twenty-four words")
	seed.input.Width = 60
	seed.input.CharLimit = 512
	seed.input.EchoMode = textinput.EchoPassword
	seed.input.EchoCharacter = '*'

	return &RestoreAccountModel{ctx: ctx, deps: deps, form: newForm(seed)}
}

func (m *RestoreAccountModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RestoreAccountModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(accountRestoredMsg); ok {
		m.form.submitting = false
		if result.err != nil {
			return m, func() tea.Msg { return errorMsg{err: result.err} }
		}
		return m, func() tea.Msg { return NavigateTo{Path: string(router.Home)} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Path: string(router.Onboarding)} }
		case "enter":
			if m.form.submitting {
				return m, nil
			}
			seed := models.SeedPhrase{SeedPhrase: strings.Join(strings.Fields(m.form.value(validators.FieldSeedPhrase)), " ")}
			if err := m.deps.Validator.Validate(m.ctx, seed); err != nil {
				m.form.setErrors(err)
				return m, nil
			}
			m.form.errs = nil
			m.form.submitting = true
			return m, m.cmdRestore(seed)
		}
	}

	return m, m.form.update(msg)
}

func (m *RestoreAccountModel) View() string {
	body := m.form.view()
	if m.form.submitting {
		body += "\n\n[Restoring...]"
	}
	return renderPage("RESTORE ACCOUNT", body, "esc: back │ enter: restore")
}

func (m *RestoreAccountModel) cmdRestore(seed models.SeedPhrase) tea.Cmd {
	ctx := m.ctx
	deps := m.deps

	return func() tea.Msg {
		if err := deps.Services.IdentityService.Restore(ctx, seed); err != nil {
			return accountRestoredMsg{err: err}
		}
		return accountRestoredMsg{err: deps.Session.Resolve(ctx)}
	}
}
