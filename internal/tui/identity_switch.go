// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bitcredit/internal/router"
	"github.com/MKhiriev/go-bitcredit/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type identitiesLoadedMsg struct {
	identities []models.Identity
	err        error
}

type identitySwitchedMsg struct {
	err error
}

type seedLoadedMsg struct {
	seed models.SeedPhrase
	err  error
}

// IdentitySwitchModel lists the personal identity and the companies the
// owner signs for and switches between them.
type IdentitySwitchModel struct {
	ctx  context.Context
	deps *Deps

	identities []models.Identity
	idx        int
	loading    bool
	switching  bool
	seed       string
}

func newIdentitySwitchModel(ctx context.Context, deps *Deps, _ router.Location) tea.Model {
	return &IdentitySwitchModel{ctx: ctx, deps: deps, loading: true}
}

func (m *IdentitySwitchModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *IdentitySwitchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case identitiesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		m.identities = msg.identities
		active := m.deps.nodeID()
		for i, identity := range m.identities {
			if identity.NodeID == active {
				m.idx = i
			}
		}
		return m, nil

	case identitySwitchedMsg:
		m.switching = false
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		return m, navigateHome

	case seedLoadedMsg:
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		m.seed = msg.seed.SeedPhrase
		return m, nil

	case tea.KeyMsg:
		if m.switching {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			if m.seed != "" {
				m.seed = ""
				return m, nil
			}
			return m, navigateHome
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.identities)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.backup):
			ctx, identities := m.ctx, m.deps.Services.IdentityService
			return m, func() tea.Msg {
				seed, err := identities.Backup(ctx)
				return seedLoadedMsg{seed: seed, err: err}
			}
		case key.Matches(msg, keys.enter):
			if len(m.identities) == 0 {
				return m, nil
			}
			target := m.identities[m.idx]
			if target.NodeID == m.deps.nodeID() {
				return m, navigateHome
			}
			m.switching = true
			ctx, sess := m.ctx, m.deps.Session
			return m, func() tea.Msg {
				return identitySwitchedMsg{err: sess.Switch(ctx, target.NodeID, target.Type)}
			}
		}
	}
	return m, nil
}

func (m *IdentitySwitchModel) View() string {
	if m.loading {
		return renderPage("SWITCH IDENTITY", "loading...", "esc: back")
	}

	active := m.deps.nodeID()
	var b strings.Builder
	for i, identity := range m.identities {
		mark := " "
		if identity.NodeID == active {
			mark = "*"
		}
		line := fmt.Sprintf("%s%s %-28s %-8s %s", cursor(i == m.idx), mark, identity.Name, identity.Type, shortID(identity.NodeID))
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if m.switching {
		b.WriteString("\n[Switching...]")
	}
	if m.seed != "" {
		b.WriteString("\nSeed phrase, keep it offline:\n")
		b.WriteString(selectedStyle.Render(m.seed))
	}

	return renderPage("SWITCH IDENTITY", strings.TrimRight(b.String(), "\n"),
		"enter: switch │ b: back up seed phrase │ esc: back")
}

// cmdLoad lists the personal identity first, then every company.
func (m *IdentitySwitchModel) cmdLoad() tea.Cmd {
	ctx, services := m.ctx, m.deps.Services
	return func() tea.Msg {
		personal, err := services.IdentityService.Detail(ctx)
		if err != nil {
			return identitiesLoadedMsg{err: err}
		}
		personal.Type = models.PersonalIdentity

		companies, err := services.CompanyService.List(ctx)
		if err != nil {
			return identitiesLoadedMsg{err: err}
		}

		out := make([]models.Identity, 0, len(companies)+1)
		out = append(out, personal)
		for _, c := range companies {
			out = append(out, c.AsIdentity())
		}
		return identitiesLoadedMsg{identities: out}
	}
}
