// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-bitcredit/internal/router"
	"github.com/MKhiriev/go-bitcredit/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type billsLoadedMsg struct {
	bills []models.LightBill
	err   error
}

// HomeModel lists the bills of the active identity and links every other
// screen.
type HomeModel struct {
	ctx  context.Context
	deps *Deps

	bills   []models.LightBill
	idx     int
	loading bool
	spinner spinner.Model
}

func newHomeModel(ctx context.Context, deps *Deps, _ router.Location) tea.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &HomeModel{ctx: ctx, deps: deps, loading: true, spinner: s}
}

func (m *HomeModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, cmdLoadLightBills(m.ctx, m.deps))
}

// homeLinks maps menu keys to the screens they open.
var homeLinks = []struct {
	binding key.Binding
	route   router.Route
}{
	{keys.newBill, router.CreateBill},
	{keys.search, router.Bills},
	{keys.contacts, router.Contacts},
	{keys.notifications, router.Notifications},
	{keys.identity, router.IdentityRoute},
	{keys.company, router.CompanyRoute},
	{keys.settings, router.Settings},
	{keys.mint, router.Mint},
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case billsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		m.bills = msg.bills
		m.idx = clampIndex(m.idx, len(m.bills))
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
			return m, nil
		case key.Matches(msg, keys.down):
			if m.idx < len(m.bills)-1 {
				m.idx++
			}
			return m, nil
		case key.Matches(msg, keys.enter):
			if len(m.bills) == 0 {
				return m, nil
			}
			path := router.BillPath(m.bills[m.idx].ID)
			return m, func() tea.Msg { return NavigateTo{Path: path} }
		case key.Matches(msg, keys.reload):
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, cmdLoadLightBills(m.ctx, m.deps))
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}

		for _, link := range homeLinks {
			if key.Matches(msg, link.binding) {
				path := string(link.route)
				return m, func() tea.Msg { return NavigateTo{Path: path} }
			}
		}
	}
	return m, nil
}

func (m *HomeModel) View() string {
	body := renderLightBills(m.bills, m.idx, m.deps.nodeID())
	if m.loading {
		body = m.spinner.View() + " loading bills..."
	}
	return renderPage("BILLS", body,
		"enter: open │ n: new bill │ /: search │ c: contacts │ o: notifications │ i: identity │ g: company │ s: settings │ m: mint │ r: reload │ q: quit")
}

func cmdLoadLightBills(ctx context.Context, deps *Deps) tea.Cmd {
	return func() tea.Msg {
		bills, err := deps.Services.BillService.Light(ctx)
		return billsLoadedMsg{bills: bills, err: err}
	}
}
