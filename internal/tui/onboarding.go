// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-bitcredit/internal/router"
	tea "github.com/charmbracelet/bubbletea"
)

type onboardingItem struct {
	label string
	path  router.Route
}

// OnboardingModel is the first screen without an active identity.
type OnboardingModel struct {
	items []onboardingItem
	idx   int
}

func newOnboardingModel(_ context.Context, _ *Deps, _ router.Location) tea.Model {
	return &OnboardingModel{
		items: []onboardingItem{
			{label: "Create a new identity", path: router.CreateIdentity},
			{label: "Restore an account from a seed phrase", path: router.RestoreAccount},
		},
	}
}

func (m *OnboardingModel) Init() tea.Cmd {
	return nil
}

func (m *OnboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		path := string(m.items[m.idx].path)
		return m, func() tea.Msg { return NavigateTo{Path: path} }
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *OnboardingModel) View() string {
	var b strings.Builder
	b.WriteString("Bitcredit lets you draw, endorse and settle bills of exchange.\n")
	b.WriteString("No identity is active on this node yet.\n\n")
	for i, item := range m.items {
		line := cursor(i == m.idx) + item.label
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return renderPage("WELCOME", strings.TrimRight(b.String(), "\n"), "↑/↓: choose │ enter: open │ q: quit")
}
