// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-bitcredit/internal/router"
	"github.com/MKhiriev/go-bitcredit/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type contactsLoadedMsg struct {
	contacts []models.Contact
	err      error
}

type contactDeletedMsg struct {
	nodeID string
	err    error
}

// ContactsModel lists contacts with the selected one's details.
type ContactsModel struct {
	ctx  context.Context
	deps *Deps

	contacts   []models.Contact
	idx        int
	loading    bool
	confirming bool
	status     string
}

func newContactsModel(ctx context.Context, deps *Deps, _ router.Location) tea.Model {
	return &ContactsModel{ctx: ctx, deps: deps, loading: true}
}

func (m *ContactsModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *ContactsModel) selected() (models.Contact, bool) {
	if len(m.contacts) == 0 || m.idx < 0 || m.idx >= len(m.contacts) {
		return models.Contact{}, false
	}
	return m.contacts[m.idx], true
}

func (m *ContactsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contactsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		m.contacts = msg.contacts
		m.idx = clampIndex(m.idx, len(m.contacts))
		return m, nil

	case contactDeletedMsg:
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		m.status = "Contact " + shortID(msg.nodeID) + " deleted"
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter(3*time.Second))

	case sharedMsg:
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		m.status = msg.what + " shared to " + msg.target
		return m, clearStatusAfter(3 * time.Second)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirm(msg)
		}

		switch {
		case key.Matches(msg, keys.esc):
			return m, navigateHome
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.contacts)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.newItem):
			return m, func() tea.Msg { return NavigateTo{Path: string(router.CreateContact)} }
		case key.Matches(msg, keys.reload):
			m.loading = true
			return m, m.cmdLoad()
		case key.Matches(msg, keys.delete):
			if _, ok := m.selected(); ok {
				m.confirming = true
			}
		case key.Matches(msg, keys.share):
			if c, ok := m.selected(); ok {
				return m, cmdShare(m.ctx, m.deps, "node id", c.NodeID)
			}
		}
	}
	return m, nil
}

func (m *ContactsModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirming = false
		c, ok := m.selected()
		if !ok {
			return m, nil
		}
		ctx, contacts := m.ctx, m.deps.Services.ContactService
		return m, func() tea.Msg {
			return contactDeletedMsg{nodeID: c.NodeID, err: contacts.Delete(ctx, c.NodeID)}
		}
	case key.Matches(msg, keys.no):
		m.confirming = false
	}
	return m, nil
}

func (m *ContactsModel) View() string {
	if m.loading {
		return renderPage("CONTACTS", "loading...", "esc: back")
	}

	var b strings.Builder
	if len(m.contacts) == 0 {
		b.WriteString("No contacts yet")
	}
	for i, c := range m.contacts {
		line := fmt.Sprintf("%s%-24s %-8s %s", cursor(i == m.idx), c.Name, c.Type, shortID(c.NodeID))
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if c, ok := m.selected(); ok {
		b.WriteString("\n" + uiDivider + "\n")
		b.WriteString(fmt.Sprintf("Node id   %s\n", c.NodeID))
		b.WriteString(fmt.Sprintf("Email     %s\n", valueOrDash(c.Email)))
		b.WriteString(fmt.Sprintf("Address   %s\n", valueOrDash(c.Address.String())))
		dateLabel := "Born"
		if c.Type == models.CompanyContact {
			dateLabel = "Founded"
		}
		b.WriteString(fmt.Sprintf("%-9s %s\n", dateLabel, valueOrDash(c.DateOfBirthOrRegistration)))
	}

	if m.confirming {
		c, _ := m.selected()
		b.WriteString("\n" + errorStyle.Render("Delete "+c.Name+"? y / n"))
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	return renderPage("CONTACTS", strings.TrimRight(b.String(), "\n"),
		"n: new │ d: delete │ x: share node id │ r: reload │ esc: back")
}

func (m *ContactsModel) cmdLoad() tea.Cmd {
	ctx, contacts := m.ctx, m.deps.Services.ContactService
	return func() tea.Msg {
		list, err := contacts.List(ctx)
		return contactsLoadedMsg{contacts: list, err: err}
	}
}
