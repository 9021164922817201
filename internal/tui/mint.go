// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-bitcredit/internal/adapter"
	"github.com/MKhiriev/go-bitcredit/internal/router"
	"github.com/MKhiriev/go-bitcredit/internal/utils"
	"github.com/MKhiriev/go-bitcredit/internal/validators"
	"github.com/MKhiriev/go-bitcredit/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type quoteLoadedMsg struct {
	billID string
	quote  *models.Quote
	err    error
}

type quoteActionDoneMsg struct {
	billID string
	err    error
}

// MintModel requests mint quotes for bills and accepts or declines them.
type MintModel struct {
	ctx  context.Context
	deps *Deps

	bills   []models.LightBill
	idx     int
	loading bool
	quote   *models.Quote
	quoted  string
	busy    bool
}

func newMintModel(ctx context.Context, deps *Deps, _ router.Location) tea.Model {
	return &MintModel{ctx: ctx, deps: deps, loading: true}
}

func (m *MintModel) Init() tea.Cmd {
	return cmdLoadLightBills(m.ctx, m.deps)
}

func (m *MintModel) selectedID() string {
	if len(m.bills) == 0 {
		return ""
	}
	return m.bills[m.idx].ID
}

func (m *MintModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case billsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		m.bills = msg.bills
		m.idx = clampIndex(m.idx, len(m.bills))
		return m, m.cmdQuote()

	case quoteLoadedMsg:
		if msg.billID != m.selectedID() {
			return m, nil
		}
		m.quoted = msg.billID
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		m.quote = msg.quote
		return m, nil

	case quoteActionDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		return m, m.cmdQuote()

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigateHome
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
				return m, m.cmdQuote()
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.bills)-1 {
				m.idx++
				return m, m.cmdQuote()
			}
		case key.Matches(msg, keys.requestToPay):
			id := m.selectedID()
			if id == "" {
				return m, nil
			}
			return m.run(id, func(ctx context.Context) error { return requestToMint(ctx, m.deps, id) })
		case key.Matches(msg, keys.accept):
			if m.quote == nil || m.quote.Status != models.QuoteOffered {
				return m, nil
			}
			id, quotes := m.quote.BillID, m.deps.Services.QuoteService
			return m.run(id, func(ctx context.Context) error { return quotes.Accept(ctx, id) })
		case key.Matches(msg, keys.decline):
			if m.quote == nil || m.quote.Status != models.QuoteOffered {
				return m, nil
			}
			id, quotes := m.quote.BillID, m.deps.Services.QuoteService
			return m.run(id, func(ctx context.Context) error { return quotes.Decline(ctx, id) })
		}
	}
	return m, nil
}

func (m *MintModel) run(billID string, fn func(ctx context.Context) error) (tea.Model, tea.Cmd) {
	m.busy = true
	ctx := m.ctx
	return m, func() tea.Msg {
		return quoteActionDoneMsg{billID: billID, err: fn(ctx)}
	}
}

// cmdQuote fetches the quote of the selected bill. A bill without a quote
// is answered with 404 by the node and shown as "no quote".
func (m *MintModel) cmdQuote() tea.Cmd {
	m.quote = nil
	id := m.selectedID()
	if id == "" {
		return nil
	}
	ctx, quotes := m.ctx, m.deps.Services.QuoteService
	return func() tea.Msg {
		quote, err := quotes.Get(ctx, id)
		if adapter.StatusCode(err) == http.StatusNotFound {
			return quoteLoadedMsg{billID: id}
		}
		if err != nil {
			return quoteLoadedMsg{billID: id, err: err}
		}
		return quoteLoadedMsg{billID: id, quote: &quote}
	}
}

func (m *MintModel) View() string {
	if m.loading {
		return renderPage("MINT", "loading...", "esc: back")
	}

	var b strings.Builder
	if len(m.bills) == 0 {
		b.WriteString("No bills to mint")
	}
	for i, bill := range m.bills {
		b.WriteString(fmt.Sprintf("%s%-12s %s\n", cursor(i == m.idx), utils.TruncateMiddle(bill.ID, 12), utils.FormatSum(bill.Sum, bill.Currency)))
	}

	if id := m.selectedID(); id != "" && m.quoted == id {
		b.WriteString("\n" + uiDivider + "\n")
		if q := m.quote; q != nil {
			b.WriteString(fmt.Sprintf("Quote      %s\n", q.Status))
			b.WriteString(fmt.Sprintf("Mint       %s\n", shortID(q.MintNodeID)))
			b.WriteString(fmt.Sprintf("Offer      %s\n", utils.FormatSum(q.Sum, validators.BillCurrency)))
			if q.Token != "" {
				b.WriteString(fmt.Sprintf("Token      %s\n", utils.TruncateMiddle(q.Token, 40)))
			}
		} else {
			b.WriteString("No quote for this bill yet\n")
		}
	}
	if m.busy {
		b.WriteString("\n[Sending...]")
	}

	return renderPage("MINT", strings.TrimRight(b.String(), "\n"),
		"p: request quote from default mint │ a: accept quote │ d: decline quote │ esc: back")
}
