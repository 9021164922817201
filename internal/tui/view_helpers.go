// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bitcredit/internal/utils"
	"github.com/MKhiriev/go-bitcredit/models"
)

const (
	uiDivider = "──────────────────────────────────────────────────────"

	// nodeIDWidth is how many characters of a node id or hash lists show.
	nodeIDWidth = 19
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func shortID(id string) string {
	return utils.TruncateMiddle(id, nodeIDWidth)
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

// clampIndex keeps a list cursor inside [0, n).
func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func participantLine(role string, p models.BillParticipant) string {
	if p.NodeID == "" {
		return fmt.Sprintf("%-9s -", role+":")
	}
	return fmt.Sprintf("%-9s %s (%s) %s", role+":", valueOrDash(p.Name), p.Type, shortID(p.NodeID))
}

// billRole names what the node id is on the bill: payer, payee, holder or
// drawer.
func billRole(nodeID string, b models.LightBill) string {
	holder := b.Payee
	if b.Endorsee != nil {
		holder = *b.Endorsee
	}

	switch nodeID {
	case "":
		return "-"
	case b.Drawee.NodeID:
		return string(models.RolePayer)
	case holder.NodeID:
		if b.Endorsee != nil {
			return string(models.RoleHolder)
		}
		return string(models.RolePayee)
	case b.Drawer.NodeID:
		return "drawer"
	default:
		return "-"
	}
}

func renderLightBills(bills []models.LightBill, idx int, nodeID string) string {
	if len(bills) == 0 {
		return "No bills yet"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-10s │ %-7s │ %-14s │ %-12s │ %s\n", "ID", "Role", "Sum", "Issued", "Counterparty"))
	b.WriteString("  ───────────┼─────────┼────────────────┼──────────────┼────────────────\n")
	for i, bill := range bills {
		counterparty := bill.Drawer.Name
		if bill.Drawer.NodeID == nodeID {
			counterparty = bill.Payee.Name
		}
		mark := ""
		if bill.ActiveNotification != nil {
			mark = " *"
		}
		b.WriteString(fmt.Sprintf("%s%-10s │ %-7s │ %-14s │ %-12s │ %s%s\n",
			cursor(i == idx),
			utils.TruncateMiddle(bill.ID, 10),
			billRole(nodeID, bill),
			utils.FormatSum(bill.Sum, bill.Currency),
			valueOrDash(bill.IssueDate),
			valueOrDash(counterparty),
			mark,
		))
	}
	return strings.TrimRight(b.String(), "\n")
}
