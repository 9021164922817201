// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bitcredit/internal/router"
	"github.com/MKhiriev/go-bitcredit/internal/validators"
	"github.com/MKhiriev/go-bitcredit/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var searchRoles = []models.BillRole{models.RoleAll, models.RolePayer, models.RolePayee, models.RoleHolder}

// BillsModel searches bills by term and role.
type BillsModel struct {
	ctx  context.Context
	deps *Deps

	term    textinput.Model
	roleIdx int
	results []models.LightBill
	idx     int

	// browsing is true while the cursor is in the result list.
	browsing bool
	searched bool
}

func newBillsModel(ctx context.Context, deps *Deps, _ router.Location) tea.Model {
	term := textinput.New()
	term.Placeholder = "name, city or bill id"
	term.Width = 40
	term.Focus()
	return &BillsModel{ctx: ctx, deps: deps, term: term}
}

func (m *BillsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *BillsModel) filter() models.BillSearchFilter {
	return models.BillSearchFilter{
		Search:   strings.TrimSpace(m.term.Value()),
		Role:     searchRoles[m.roleIdx],
		Currency: validators.BillCurrency,
	}
}

func (m *BillsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case billsLoadedMsg:
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		m.searched = true
		m.results = msg.bills
		m.idx = 0
		if len(m.results) > 0 {
			m.browsing = true
			m.term.Blur()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			if m.browsing {
				m.browsing = false
				m.term.Focus()
				return m, nil
			}
			return m, func() tea.Msg { return NavigateTo{Path: string(router.Home)} }
		case key.Matches(msg, keys.tab):
			m.roleIdx = (m.roleIdx + 1) % len(searchRoles)
			return m, nil
		}

		if !m.browsing {
			if key.Matches(msg, keys.enter) {
				return m, cmdSearchBills(m.ctx, m.deps, m.filter())
			}
			break
		}

		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.results)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.search):
			m.browsing = false
			m.term.Focus()
		case key.Matches(msg, keys.enter):
			path := router.BillPath(m.results[m.idx].ID)
			return m, func() tea.Msg { return NavigateTo{Path: path} }
		}
		return m, nil
	}

	if m.browsing {
		return m, nil
	}
	var cmd tea.Cmd
	m.term, cmd = m.term.Update(msg)
	return m, cmd
}

func (m *BillsModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Search │ [%s]\n", m.term.View()))
	b.WriteString(fmt.Sprintf("Role   │ %s\n\n", searchRoles[m.roleIdx]))

	switch {
	case !m.searched:
		b.WriteString("Press enter to search")
	case len(m.results) == 0:
		b.WriteString("No bills match")
	default:
		idx := -1
		if m.browsing {
			idx = m.idx
		}
		b.WriteString(renderLightBills(m.results, idx, m.deps.nodeID()))
	}

	return renderPage("SEARCH BILLS", b.String(),
		"enter: search / open │ tab: role │ /: edit term │ esc: back")
}

func cmdSearchBills(ctx context.Context, deps *Deps, filter models.BillSearchFilter) tea.Cmd {
	return func() tea.Msg {
		bills, err := deps.Services.BillService.Search(ctx, filter)
		return billsLoadedMsg{bills: bills, err: err}
	}
}
