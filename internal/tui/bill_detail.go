// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-bitcredit/internal/router"
	"github.com/MKhiriev/go-bitcredit/internal/utils"
	"github.com/MKhiriev/go-bitcredit/internal/validators"
	"github.com/MKhiriev/go-bitcredit/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type billLoadedMsg struct {
	bill models.Bill
	err  error
}

type billActionDoneMsg struct {
	action string
	err    error
}

type sharedMsg struct {
	what   string
	target string
	err    error
}

type billPrompt int

const (
	promptNone billPrompt = iota
	promptEndorse
	promptOfferToSell
)

// BillDetailModel shows one bill with its participants, files and chain
// and runs the bill actions.
type BillDetailModel struct {
	ctx  context.Context
	deps *Deps
	id   string

	bill    models.Bill
	loaded  bool
	busy    bool
	status  string
	prompt  billPrompt
	form    formModel
	showAll bool
}

func newBillDetailModel(ctx context.Context, deps *Deps, loc router.Location) tea.Model {
	return &BillDetailModel{ctx: ctx, deps: deps, id: loc.Param("id")}
}

func (m *BillDetailModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *BillDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case billLoadedMsg:
		if msg.err != nil {
			// Without the bill there is nothing to show.
			return m, func() tea.Msg { return screenFailedMsg{err: msg.err} }
		}
		m.bill = msg.bill
		m.loaded = true
		return m, nil

	case billActionDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err} }
		}
		m.status = msg.action + " sent"
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
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		if !m.loaded {
			if key.Matches(msg, keys.esc) {
				return m, navigateHome
			}
			return m, nil
		}
		if m.busy && !key.Matches(msg, keys.esc) {
			return m, nil
		}
		return m.handleKey(msg)
	}

	if m.prompt != promptNone {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m *BillDetailModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	billID := m.bill.ID
	services := m.deps.Services

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigateHome
	case key.Matches(msg, keys.reload):
		return m, m.cmdLoad()
	case key.Matches(msg, keys.tab):
		m.showAll = !m.showAll
		return m, nil
	case key.Matches(msg, keys.share):
		return m, cmdShare(m.ctx, m.deps, "bill id", billID)
	case key.Matches(msg, keys.accept):
		return m.run("accept", func(ctx context.Context) error {
			return services.BillService.Accept(ctx, billID)
		})
	case key.Matches(msg, keys.requestToPay):
		currency := m.bill.Currency
		return m.run("request to pay", func(ctx context.Context) error {
			return services.BillService.RequestToPay(ctx, models.RequestToPayRequest{BillID: billID, Currency: currency})
		})
	case key.Matches(msg, keys.requestToAccept):
		return m.run("request to accept", func(ctx context.Context) error {
			return services.BillService.RequestToAccept(ctx, billID)
		})
	case key.Matches(msg, keys.requestToMint):
		return m.run("request to mint", func(ctx context.Context) error {
			return requestToMint(ctx, m.deps, billID)
		})
	case key.Matches(msg, keys.endorse):
		m.openPrompt(promptEndorse)
		return m, nil
	case key.Matches(msg, keys.offerToSell):
		m.openPrompt(promptOfferToSell)
		return m, nil
	}
	return m, nil
}

func (m *BillDetailModel) openPrompt(p billPrompt) {
	m.prompt = p
	switch p {
	case promptEndorse:
		m.form = newForm(newField(validators.FieldEndorsee, "Endorsee node id", "02..."))
	case promptOfferToSell:
		sum := newField(validators.FieldSum, "Price", m.bill.Sum)
		m.form = newForm(newField(validators.FieldBuyer, "Buyer node id", "02..."), sum)
	}
}

func (m *BillDetailModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.prompt = promptNone
		return m, nil
	case !key.Matches(msg, keys.enter):
		return m, m.form.update(msg)
	}

	services := m.deps.Services
	switch m.prompt {
	case promptEndorse:
		req := models.EndorseBillRequest{BillID: m.bill.ID, Endorsee: m.form.value(validators.FieldEndorsee)}
		if err := m.deps.Validator.Validate(m.ctx, req); err != nil {
			m.form.setErrors(err)
			return m, nil
		}
		m.prompt = promptNone
		return m.run("endorsement", func(ctx context.Context) error {
			return services.BillService.Endorse(ctx, req)
		})
	case promptOfferToSell:
		req := models.OfferToSellRequest{
			BillID:   m.bill.ID,
			Buyer:    m.form.value(validators.FieldBuyer),
			Sum:      m.form.value(validators.FieldSum),
			Currency: m.bill.Currency,
		}
		if err := m.deps.Validator.Validate(m.ctx, req); err != nil {
			m.form.setErrors(err)
			return m, nil
		}
		m.prompt = promptNone
		return m.run("offer to sell", func(ctx context.Context) error {
			return services.BillService.OfferToSell(ctx, req)
		})
	}
	return m, nil
}

func (m *BillDetailModel) run(action string, fn func(ctx context.Context) error) (tea.Model, tea.Cmd) {
	m.busy = true
	ctx := m.ctx
	return m, func() tea.Msg {
		return billActionDoneMsg{action: action, err: fn(ctx)}
	}
}

func (m *BillDetailModel) cmdLoad() tea.Cmd {
	ctx, deps, id := m.ctx, m.deps, m.id
	return func() tea.Msg {
		bill, err := deps.Services.BillService.Detail(ctx, id)
		return billLoadedMsg{bill: bill, err: err}
	}
}

func (m *BillDetailModel) View() string {
	if !m.loaded {
		return renderPage("BILL "+m.id, "loading...", "esc: back")
	}

	var b strings.Builder
	bill := m.bill

	b.WriteString(fmt.Sprintf("Type      %s\n", bill.Type))
	b.WriteString(fmt.Sprintf("Sum       %s\n", utils.FormatSum(bill.Sum, bill.Currency)))
	b.WriteString(fmt.Sprintf("Issued    %s in %s, %s\n", valueOrDash(bill.IssueDate), valueOrDash(bill.CityOfIssuing), valueOrDash(bill.CountryOfIssuing)))
	b.WriteString(fmt.Sprintf("Matures   %s, payable in %s, %s\n", valueOrDash(bill.MaturityDate), valueOrDash(bill.CityOfPayment), valueOrDash(bill.CountryOfPayment)))
	b.WriteString(fmt.Sprintf("Status    %s\n", billStatus(bill)))

	b.WriteString("\nParticipants\n")
	b.WriteString(participantLine("Drawer", bill.Drawer) + "\n")
	b.WriteString(participantLine("Drawee", bill.Drawee) + "\n")
	b.WriteString(participantLine("Payee", bill.Payee) + "\n")
	if bill.Endorsee != nil {
		b.WriteString(participantLine("Endorsee", *bill.Endorsee) + "\n")
	}

	b.WriteString("\nFiles\n")
	if len(bill.Files) == 0 {
		b.WriteString("  -\n")
	}
	for _, f := range bill.Files {
		b.WriteString(fmt.Sprintf("  %-28s %10s  %s\n", utils.TruncateMiddle(f.Name, 28), utils.FormatFileSize(f.Size), shortID(f.Hash)))
	}

	b.WriteString(fmt.Sprintf("\nChain (%d blocks)\n", len(bill.ChainOfBlocks.Blocks)))
	b.WriteString(renderChain(bill.ChainOfBlocks, m.showAll))

	if bill.ActiveNotification != nil {
		b.WriteString("\n\nAction needed: " + bill.ActiveNotification.Description)
	}

	if m.prompt != promptNone {
		b.WriteString("\n\n")
		b.WriteString(m.form.view())
		b.WriteString("\n" + helpStyle.Render("enter: confirm │ esc: cancel"))
	}
	if m.busy {
		b.WriteString("\n\n[Sending...]")
	}
	if m.status != "" {
		b.WriteString("\n\n" + statusStyle.Render(m.status))
	}

	return renderPage("BILL "+bill.ID, strings.TrimRight(b.String(), "\n"),
		"a: accept │ p: request to pay │ t: request to accept │ e: endorse │ f: offer to sell │ m: request to mint │ x: share │ tab: full chain │ esc: back")
}

func billStatus(b models.Bill) string {
	var parts []string
	flags := []struct {
		set  bool
		name string
	}{
		{b.Accepted, "accepted"},
		{b.Endorsed, "endorsed"},
		{b.RequestedToAccept, "requested to accept"},
		{b.RequestedToPay, "requested to pay"},
		{b.WaitingForPayment, "waiting for payment"},
		{b.Paid, "paid"},
	}
	for _, f := range flags {
		if f.set {
			parts = append(parts, f.name)
		}
	}
	if len(parts) == 0 {
		return "issued"
	}
	return strings.Join(parts, ", ")
}

// chainPreview is how many of the latest blocks are shown by default.
const chainPreview = 5

func renderChain(chain models.ChainOfBlocks, all bool) string {
	blocks := chain.Blocks
	if len(blocks) == 0 {
		return "  -"
	}

	skipped := 0
	if !all && len(blocks) > chainPreview {
		skipped = len(blocks) - chainPreview
		blocks = blocks[skipped:]
	}

	var b strings.Builder
	if skipped > 0 {
		b.WriteString(fmt.Sprintf("  ... %d earlier blocks\n", skipped))
	}
	for _, block := range blocks {
		b.WriteString(fmt.Sprintf("  #%-3d %-18s %s  %s\n",
			block.ID,
			block.OpCode,
			time.Unix(block.Timestamp, 0).UTC().Format(time.DateTime),
			shortID(block.Hash),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func requestToMint(ctx context.Context, deps *Deps, billID string) error {
	cfg, err := deps.MintConfig.Read(ctx)
	if err != nil {
		return fmt.Errorf("read mint config: %w", err)
	}
	if cfg.DefaultMintNodeID == "" {
		return errNoDefaultMint
	}
	return deps.Services.BillService.RequestToMint(ctx, models.RequestToMintRequest{
		BillID:     billID,
		MintNodeID: cfg.DefaultMintNodeID,
	})
}

func cmdShare(ctx context.Context, deps *Deps, what, text string) tea.Cmd {
	return func() tea.Msg {
		res, err := deps.Share.Invoke(ctx, text)
		return sharedMsg{what: what, target: res.Target, err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func navigateHome() tea.Msg {
	return NavigateTo{Path: string(router.Home)}
}
