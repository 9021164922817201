// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bitcredit/internal/router"
	"github.com/MKhiriev/go-bitcredit/internal/validators"
	"github.com/MKhiriev/go-bitcredit/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type identityCreatedMsg struct {
	identity models.Identity
	err      error
}

// CreateIdentityModel is the onboarding form for the personal identity.
type CreateIdentityModel struct {
	ctx  context.Context
	deps *Deps
	form formModel
}

func newCreateIdentityModel(ctx context.Context, deps *Deps, _ router.Location) tea.Model {
	return &CreateIdentityModel{
		ctx:  ctx,
		deps: deps,
		form: newForm(
			newField(validators.FieldName, "Name", "Jane Doe"),
			newField(validators.FieldEmail, "Email", "jane@example.com"),
			newField(validators.FieldCountry, "Country", "AT"),
			newField(validators.FieldCity, "City", "Vienna"),
			newField("zip", "Zip", "1010"),
			newField(validators.FieldAddress, "Address", "Street 1"),
			newField(validators.FieldDateOfBirth, "Date of birth", "YYYY-MM-DD"),
		),
	}
}

func (m *CreateIdentityModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CreateIdentityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(identityCreatedMsg); ok {
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
			identity := m.identity()
			if err := m.deps.Validator.Validate(m.ctx, identity); err != nil {
				if !m.form.setErrors(err) {
					return m, func() tea.Msg { return errorMsg{err: err} }
				}
				return m, nil
			}
			m.form.errs = nil
			m.form.submitting = true
			return m, m.cmdCreate(identity)
		}
	}

	return m, m.form.update(msg)
}

func (m *CreateIdentityModel) identity() models.Identity {
	return models.Identity{
		Type:  models.PersonalIdentity,
		Name:  m.form.value(validators.FieldName),
		Email: m.form.value(validators.FieldEmail),
		Address: models.PostalAddress{
			Country: m.form.value(validators.FieldCountry),
			City:    m.form.value(validators.FieldCity),
			Zip:     m.form.value("zip"),
			Address: m.form.value(validators.FieldAddress),
		},
		DateOfBirth: m.form.value(validators.FieldDateOfBirth),
	}
}

func (m *CreateIdentityModel) View() string {
	body := m.form.view()
	if m.form.submitting {
		body += "\n\n[Creating...]"
	} else {
		body += "\n\n[Create identity]"
	}
	return renderPage("CREATE IDENTITY", body, "esc: back │ tab: next field │ enter: create")
}

// cmdCreate creates the identity and resolves the session so the new
// identity becomes the active one.
func (m *CreateIdentityModel) cmdCreate(identity models.Identity) tea.Cmd {
	ctx := m.ctx
	deps := m.deps

	return func() tea.Msg {
		created, err := deps.Services.IdentityService.Create(ctx, identity)
		if err != nil {
			return identityCreatedMsg{err: err}
		}
		if err = deps.Session.Resolve(ctx); err != nil {
			return identityCreatedMsg{err: fmt.Errorf("identity created but not active: %w", err)}
		}
		return identityCreatedMsg{identity: created}
	}
}
