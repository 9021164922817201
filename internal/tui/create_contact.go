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

type contactSavedMsg struct {
	err error
}

// CreateContactModel adds a person or company contact.
type CreateContactModel struct {
	ctx         context.Context
	deps        *Deps
	contactType models.ContactType
	form        formModel
}

func newCreateContactModel(ctx context.Context, deps *Deps, _ router.Location) tea.Model {
	return &CreateContactModel{
		ctx:  ctx,
		deps: deps,
		form: newForm(
			newField(validators.FieldNodeID, "Node id", "02..."),
			newField(validators.FieldName, "Name", ""),
			newField(validators.FieldEmail, "Email", ""),
			newField(validators.FieldCountry, "Country", ""),
			newField(validators.FieldCity, "City", ""),
			newField("zip", "Zip", ""),
			newField(validators.FieldAddress, "Address", ""),
			newField(validators.FieldDateOfBirth, "Date", "YYYY-MM-DD, optional"),
		),
	}
}

func (m *CreateContactModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CreateContactModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(contactSavedMsg); ok {
		m.form.submitting = false
		if result.err != nil {
			return m, func() tea.Msg { return errorMsg{err: result.err} }
		}
		return m, func() tea.Msg { return NavigateTo{Path: string(router.Contacts)} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Path: string(router.Contacts)} }
		case "ctrl+t":
			if m.contactType == models.PersonContact {
				m.contactType = models.CompanyContact
			} else {
				m.contactType = models.PersonContact
			}
			m.form.errs = nil
			return m, nil
		case "enter":
			if m.form.submitting {
				return m, nil
			}
			contact := m.contact()
			if err := m.deps.Validator.Validate(m.ctx, contact); err != nil {
				if !m.form.setErrors(err) {
					return m, func() tea.Msg { return errorMsg{err: err} }
				}
				m.remapDateError()
				return m, nil
			}
			m.form.errs = nil
			m.form.submitting = true
			return m, m.cmdSave(contact)
		}
	}

	return m, m.form.update(msg)
}

// remapDateError shows a registration date error on the shared date input.
func (m *CreateContactModel) remapDateError() {
	for i := range m.form.errs {
		if m.form.errs[i].Field == validators.FieldRegistrationDate {
			m.form.errs[i].Field = validators.FieldDateOfBirth
		}
	}
}

func (m *CreateContactModel) contact() models.Contact {
	return models.Contact{
		Type:   m.contactType,
		NodeID: m.form.value(validators.FieldNodeID),
		Name:   m.form.value(validators.FieldName),
		Email:  m.form.value(validators.FieldEmail),
		Address: models.PostalAddress{
			Country: m.form.value(validators.FieldCountry),
			City:    m.form.value(validators.FieldCity),
			Zip:     m.form.value("zip"),
			Address: m.form.value(validators.FieldAddress),
		},
		DateOfBirthOrRegistration: m.form.value(validators.FieldDateOfBirth),
	}
}

func (m *CreateContactModel) View() string {
	dateHint := "date of birth"
	if m.contactType == models.CompanyContact {
		dateHint = "registration date"
	}
	body := fmt.Sprintf("Type │ %s (date is the %s)\n\n", m.contactType, dateHint) + m.form.view()
	if m.form.submitting {
		body += "\n\n[Saving...]"
	}
	return renderPage("NEW CONTACT", body, "ctrl+t: person / company │ tab: next field │ enter: save │ esc: back")
}

func (m *CreateContactModel) cmdSave(contact models.Contact) tea.Cmd {
	ctx, contacts := m.ctx, m.deps.Services.ContactService
	return func() tea.Msg {
		_, err := contacts.Create(ctx, contact)
		return contactSavedMsg{err: err}
	}
}
