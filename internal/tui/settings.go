// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-bitcredit/internal/router"
	"github.com/MKhiriev/go-bitcredit/internal/validators"
	"github.com/MKhiriev/go-bitcredit/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mintConfigLoadedMsg struct {
	cfg    models.MintConfig
	status string
	err    error
}

// SettingsModel edits the persisted mint configuration.
type SettingsModel struct {
	ctx  context.Context
	deps *Deps

	cfg    models.MintConfig
	form   formModel
	loaded bool
	status string
}

func newSettingsModel(ctx context.Context, deps *Deps, _ router.Location) tea.Model {
	url := newField(validators.FieldDefaultMintURL, "Default mint URL", "https://mint.example.com")
	node := newField(validators.FieldDefaultMintNodeID, "Default mint node id", "02...")
	node.input.Width = 68
	return &SettingsModel{ctx: ctx, deps: deps, form: newForm(url, node)}
}

func (m *SettingsModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdRead())
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mintConfigLoadedMsg:
		m.form.submitting = false
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		m.cfg = msg.cfg
		m.loaded = true
		m.form.setValue(validators.FieldDefaultMintURL, msg.cfg.DefaultMintURL)
		m.form.setValue(validators.FieldDefaultMintNodeID, msg.cfg.DefaultMintNodeID)
		if msg.status == "" {
			return m, nil
		}
		m.status = msg.status
		return m, clearStatusAfter(3 * time.Second)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, navigateHome
		case "ctrl+r":
			return m, m.cmdReset()
		case "enter":
			if m.form.submitting {
				return m, nil
			}
			partial := models.MintConfig{
				DefaultMintURL:    m.form.value(validators.FieldDefaultMintURL),
				DefaultMintNodeID: m.form.value(validators.FieldDefaultMintNodeID),
			}
			if err := m.deps.Validator.Validate(m.ctx, partial); err != nil {
				m.form.setErrors(err)
				return m, nil
			}
			m.form.errs = nil
			m.form.submitting = true
			return m, m.cmdWrite(partial)
		}
	}

	return m, m.form.update(msg)
}

func (m *SettingsModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if len(m.cfg.Flags) > 0 {
		b.WriteString("\n\nFlags\n")
		names := make([]string, 0, len(m.cfg.Flags))
		for name := range m.cfg.Flags {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			b.WriteString(fmt.Sprintf("  %-24s %t\n", name, m.cfg.Flags[name]))
		}
	}

	mode := "browser"
	if m.deps.Environment != nil && m.deps.Environment.Installed() {
		mode = "installed app"
	}
	b.WriteString("\n\nRunning as " + mode)

	if m.form.submitting {
		b.WriteString("\n\n[Saving...]")
	}
	if m.status != "" {
		b.WriteString("\n\n" + statusStyle.Render(m.status))
	}

	return renderPage("SETTINGS", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: save │ ctrl+r: reset to defaults │ esc: back")
}

func (m *SettingsModel) cmdRead() tea.Cmd {
	ctx, store := m.ctx, m.deps.MintConfig
	return func() tea.Msg {
		cfg, err := store.Read(ctx)
		return mintConfigLoadedMsg{cfg: cfg, err: err}
	}
}

// cmdWrite stores only the non-empty fields; an empty input keeps the
// stored value.
func (m *SettingsModel) cmdWrite(partial models.MintConfig) tea.Cmd {
	ctx, store := m.ctx, m.deps.MintConfig
	return func() tea.Msg {
		cfg, err := store.Write(ctx, partial)
		return mintConfigLoadedMsg{cfg: cfg, status: "Saved", err: err}
	}
}

func (m *SettingsModel) cmdReset() tea.Cmd {
	ctx, store := m.ctx, m.deps.MintConfig
	return func() tea.Msg {
		if err := store.Reset(ctx); err != nil {
			return mintConfigLoadedMsg{err: err}
		}
		cfg, err := store.Read(ctx)
		return mintConfigLoadedMsg{cfg: cfg, status: "Reset to defaults", err: err}
	}
}
