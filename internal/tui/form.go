// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bitcredit/internal/validators"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField is one labelled input. key is the validator field name the
// input reports errors under.
type formField struct {
	key   string
	label string
	input textinput.Model
}

func newField(key, label, placeholder string) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 44
	return formField{key: key, label: label, input: in}
}

// formModel is a column of text inputs with per-field validation errors.
type formModel struct {
	fields     []formField
	focus      int
	errs       validators.ValidationErrors
	submitting bool
}

func newForm(fields ...formField) formModel {
	if len(fields) > 0 {
		fields[0].input.Focus()
	}
	return formModel{fields: fields}
}

func (m *formModel) value(key string) string {
	for _, f := range m.fields {
		if f.key == key {
			return strings.TrimSpace(f.input.Value())
		}
	}
	return ""
}

func (m *formModel) setValue(key, v string) {
	for i := range m.fields {
		if m.fields[i].key == key {
			m.fields[i].input.SetValue(v)
			return
		}
	}
}

// setErrors marks the fields named by a validation error. It reports
// whether err was a validation error.
func (m *formModel) setErrors(err error) bool {
	m.errs = nil
	var validationErrs validators.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return false
	}
	m.errs = validationErrs
	return true
}

func (m *formModel) focusNext() {
	if len(m.fields) == 0 {
		return
	}
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus + 1) % len(m.fields)
	m.fields[m.focus].input.Focus()
}

func (m *formModel) focusPrev() {
	if len(m.fields) == 0 {
		return
	}
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus - 1 + len(m.fields)) % len(m.fields)
	m.fields[m.focus].input.Focus()
}

// update handles tab/shift+tab and forwards everything else to the focused
// input. Enter and esc are left to the screen.
func (m *formModel) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			m.focusNext()
			return nil
		case "shift+tab", "up":
			m.focusPrev()
			return nil
		}
	}
	if len(m.fields) == 0 {
		return nil
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return cmd
}

func (m *formModel) view() string {
	width := 0
	for _, f := range m.fields {
		width = max(width, len(f.label))
	}

	var b strings.Builder
	for _, f := range m.fields {
		b.WriteString(fmt.Sprintf("%-*s │ [%s]\n", width, f.label, f.input.View()))
		if err := m.errs.Field(f.key); err != nil {
			b.WriteString(fmt.Sprintf("%-*s │ %s\n", width, "", errorStyle.Render(err.Error())))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
