// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-bitcredit/internal/router"
	"github.com/MKhiriev/go-bitcredit/internal/validators"
	"github.com/MKhiriev/go-bitcredit/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type companiesLoadedMsg struct {
	companies []models.Company
	err       error
}

type companyLoadedMsg struct {
	company models.Company
	err     error
}

type companyChangedMsg struct {
	what string
	err  error
}

type companyMode int

const (
	companyBrowse companyMode = iota
	companyCreate
	companyAddSigner
	companyRemoveSigner
)

const fieldSignatory = "signatory"

// CompanyModel manages the companies the owner signs for.
type CompanyModel struct {
	ctx  context.Context
	deps *Deps

	companies []models.Company
	idx       int
	detail    *models.Company
	loading   bool
	mode      companyMode
	form      formModel
	status    string
}

func newCompanyModel(ctx context.Context, deps *Deps, _ router.Location) tea.Model {
	return &CompanyModel{ctx: ctx, deps: deps, loading: true}
}

func (m *CompanyModel) Init() tea.Cmd {
	return m.cmdList()
}

func (m *CompanyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case companiesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		m.companies = msg.companies
		m.idx = clampIndex(m.idx, len(m.companies))
		return m, m.cmdDetail()

	case companyLoadedMsg:
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		if len(m.companies) > 0 && m.companies[m.idx].ID == msg.company.ID {
			m.detail = &msg.company
		}
		return m, nil

	case companyChangedMsg:
		m.form.submitting = false
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		m.mode = companyBrowse
		m.status = msg.what
		return m, tea.Batch(m.cmdList(), clearStatusAfter(3*time.Second))

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.mode != companyBrowse {
			return m.updateForm(msg)
		}

		switch {
		case key.Matches(msg, keys.esc):
			return m, navigateHome
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
				return m, m.cmdDetail()
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.companies)-1 {
				m.idx++
				return m, m.cmdDetail()
			}
		case key.Matches(msg, keys.newItem):
			m.mode = companyCreate
			m.form = newForm(
				newField(validators.FieldName, "Name", ""),
				newField(validators.FieldEmail, "Email", ""),
				newField(validators.FieldCountry, "Country", ""),
				newField(validators.FieldCity, "City", ""),
				newField(validators.FieldAddress, "Address", ""),
				newField(validators.FieldRegistrationDate, "Registered", "YYYY-MM-DD, optional"),
			)
		case key.Matches(msg, keys.addSigner):
			if m.detail != nil {
				m.mode = companyAddSigner
				m.form = newForm(newField(fieldSignatory, "Signatory node id", "02..."))
			}
		case key.Matches(msg, keys.delete):
			if m.detail != nil {
				m.mode = companyRemoveSigner
				m.form = newForm(newField(fieldSignatory, "Signatory node id", "02..."))
			}
		}
		return m, nil
	}

	if m.mode != companyBrowse {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m *CompanyModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = companyBrowse
		return m, nil
	case !key.Matches(msg, keys.enter):
		return m, m.form.update(msg)
	}
	if m.form.submitting {
		return m, nil
	}

	ctx, companies := m.ctx, m.deps.Services.CompanyService

	if m.mode == companyCreate {
		company := models.Company{
			Name:  m.form.value(validators.FieldName),
			Email: m.form.value(validators.FieldEmail),
			Address: models.PostalAddress{
				Country: m.form.value(validators.FieldCountry),
				City:    m.form.value(validators.FieldCity),
				Address: m.form.value(validators.FieldAddress),
			},
			RegistrationDate: m.form.value(validators.FieldRegistrationDate),
		}
		company.CountryOfRegistration = company.Address.Country
		company.CityOfRegistration = company.Address.City

		if err := m.deps.Validator.Validate(m.ctx, company); err != nil {
			m.form.setErrors(err)
			return m, nil
		}
		m.form.submitting = true
		return m, func() tea.Msg {
			created, err := companies.Create(ctx, company)
			return companyChangedMsg{what: "Company " + created.Name + " created", err: err}
		}
	}

	signatory := m.form.value(fieldSignatory)
	if !validators.IsNodeID(signatory) {
		m.form.errs = validators.ValidationErrors{{Field: fieldSignatory, Err: validators.ErrInvalidNodeID}}
		return m, nil
	}
	req := models.SignatoryRequest{CompanyID: m.detail.ID, SignatoryID: signatory}
	m.form.submitting = true

	if m.mode == companyAddSigner {
		return m, func() tea.Msg {
			return companyChangedMsg{what: "Signatory added", err: companies.AddSigner(ctx, req)}
		}
	}
	return m, func() tea.Msg {
		return companyChangedMsg{what: "Signatory removed", err: companies.RemoveSigner(ctx, req)}
	}
}

func (m *CompanyModel) View() string {
	if m.loading {
		return renderPage("COMPANIES", "loading...", "esc: back")
	}

	var b strings.Builder
	if len(m.companies) == 0 {
		b.WriteString("You do not sign for any company yet\n")
	}
	for i, c := range m.companies {
		b.WriteString(fmt.Sprintf("%s%-28s %s\n", cursor(i == m.idx), c.Name, shortID(c.ID)))
	}

	if c := m.detail; c != nil {
		b.WriteString("\n" + uiDivider + "\n")
		b.WriteString(fmt.Sprintf("Email        %s\n", valueOrDash(c.Email)))
		b.WriteString(fmt.Sprintf("Address      %s\n", valueOrDash(c.Address.String())))
		b.WriteString(fmt.Sprintf("Registered   %s %s\n", valueOrDash(c.RegistrationNumber), c.RegistrationDate))
		b.WriteString("Signatories\n")
		if len(c.Signatories) == 0 {
			b.WriteString("  -\n")
		}
		for _, s := range c.Signatories {
			b.WriteString(fmt.Sprintf("  %-24s %s\n", valueOrDash(s.Name), shortID(s.NodeID)))
		}
	}

	hotKeys := "n: new company │ a: add signatory │ d: remove signatory │ esc: back"
	switch m.mode {
	case companyCreate:
		b.WriteString("\nNew company\n" + m.form.view())
		hotKeys = "tab: next field │ enter: create │ esc: cancel"
	case companyAddSigner, companyRemoveSigner:
		b.WriteString("\n" + m.form.view())
		hotKeys = "enter: confirm │ esc: cancel"
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	return renderPage("COMPANIES", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *CompanyModel) cmdList() tea.Cmd {
	ctx, companies := m.ctx, m.deps.Services.CompanyService
	return func() tea.Msg {
		list, err := companies.List(ctx)
		return companiesLoadedMsg{companies: list, err: err}
	}
}

func (m *CompanyModel) cmdDetail() tea.Cmd {
	if len(m.companies) == 0 {
		m.detail = nil
		return nil
	}
	ctx, companies, id := m.ctx, m.deps.Services.CompanyService, m.companies[m.idx].ID
	return func() tea.Msg {
		company, err := companies.Detail(ctx, id)
		return companyLoadedMsg{company: company, err: err}
	}
}
