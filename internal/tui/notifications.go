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

type notificationsLoadedMsg struct {
	notifications []models.Notification
	err           error
}

type notificationDoneMsg struct {
	err error
}

// NotificationsModel lists the node's notifications, active ones by
// default.
type NotificationsModel struct {
	ctx  context.Context
	deps *Deps

	notifications []models.Notification
	idx           int
	all           bool
	loading       bool
}

func newNotificationsModel(ctx context.Context, deps *Deps, _ router.Location) tea.Model {
	return &NotificationsModel{ctx: ctx, deps: deps, loading: true}
}

func (m *NotificationsModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *NotificationsModel) filter() models.NotificationFilter {
	if m.all {
		return models.NotificationFilter{}
	}
	active := true
	return models.NotificationFilter{Active: &active}
}

func (m *NotificationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		m.notifications = msg.notifications
		m.idx = clampIndex(m.idx, len(m.notifications))
		return m, nil

	case notificationDoneMsg:
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		return m, m.cmdLoad()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigateHome
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.notifications)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.toggle):
			m.all = !m.all
			m.loading = true
			return m, m.cmdLoad()
		case key.Matches(msg, keys.delete):
			if len(m.notifications) == 0 {
				return m, nil
			}
			id := m.notifications[m.idx].ID
			ctx, notifications := m.ctx, m.deps.Services.NotificationService
			return m, func() tea.Msg {
				return notificationDoneMsg{err: notifications.MarkDone(ctx, id)}
			}
		case key.Matches(msg, keys.enter):
			if len(m.notifications) == 0 {
				return m, nil
			}
			billID := notificationBillID(m.notifications[m.idx])
			if billID == "" {
				return m, nil
			}
			path := router.BillPath(billID)
			return m, func() tea.Msg { return NavigateTo{Path: path} }
		}
	}
	return m, nil
}

func notificationBillID(n models.Notification) string {
	if n.Payload.BillID != "" {
		return n.Payload.BillID
	}
	if n.NotificationType == models.BillNotification {
		return n.ReferenceID
	}
	return ""
}

func (m *NotificationsModel) View() string {
	title := "NOTIFICATIONS (active)"
	if m.all {
		title = "NOTIFICATIONS (all)"
	}
	if m.loading {
		return renderPage(title, "loading...", "esc: back")
	}

	var b strings.Builder
	if len(m.notifications) == 0 {
		b.WriteString("Nothing to do")
	}
	for i, n := range m.notifications {
		state := " "
		if n.Active {
			state = "*"
		}
		line := fmt.Sprintf("%s%s %-20s %-13s %s", cursor(i == m.idx), state, valueOrDash(n.Datetime), n.Payload.ActionType, n.Description)
		if n.Payload.Sum != nil {
			line += " (" + *n.Payload.Sum + ")"
		}
		b.WriteString(line + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: open bill │ d: mark done │ tab: active / all │ esc: back")
}

func (m *NotificationsModel) cmdLoad() tea.Cmd {
	ctx, notifications, filter := m.ctx, m.deps.Services.NotificationService, m.filter()
	return func() tea.Msg {
		list, err := notifications.List(ctx, filter)
		return notificationsLoadedMsg{notifications: list, err: err}
	}
}
