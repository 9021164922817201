// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-bitcredit/internal/router"
	"github.com/MKhiriev/go-bitcredit/internal/validators"
	"github.com/MKhiriev/go-bitcredit/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldAttachment = "attachment"

	// defaultMaturity is the maturity date offered for a new bill.
	defaultMaturity = 90 * 24 * time.Hour
)

var billTypes = []models.BillType{models.DraftedBill, models.PromissoryNote, models.SelfDraftedBill}

type billIssuedMsg struct {
	id  string
	err error
}

// CreateBillModel draws a new bill.
type CreateBillModel struct {
	ctx     context.Context
	deps    *Deps
	typeIdx int
	form    formModel
}

func newCreateBillModel(ctx context.Context, deps *Deps, _ router.Location) tea.Model {
	now := time.Now()

	form := newForm(
		newField(validators.FieldPayee, "Payee node id", "02..."),
		newField(validators.FieldDrawee, "Drawee node id", "02..."),
		newField(validators.FieldSum, "Sum (sat)", "1000"),
		newField(validators.FieldIssueDate, "Issue date", time.DateOnly),
		newField(validators.FieldMaturityDate, "Maturity date", time.DateOnly),
		newField(validators.FieldCountryOfIssuing, "Country of issuing", "AT"),
		newField(validators.FieldCityOfIssuing, "City of issuing", "Vienna"),
		newField(validators.FieldCountryOfPayment, "Country of payment", "AT"),
		newField(validators.FieldCityOfPayment, "City of payment", "Vienna"),
		newField(fieldAttachment, "Attachment path", "optional"),
	)
	form.setValue(validators.FieldIssueDate, now.Format(time.DateOnly))
	form.setValue(validators.FieldMaturityDate, now.Add(defaultMaturity).Format(time.DateOnly))

	return &CreateBillModel{ctx: ctx, deps: deps, form: form}
}

func (m *CreateBillModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CreateBillModel) billType() models.BillType {
	return billTypes[m.typeIdx]
}

func (m *CreateBillModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(billIssuedMsg); ok {
		m.form.submitting = false
		if result.err != nil {
			return m, func() tea.Msg { return errorMsg{err: result.err} }
		}
		path := router.BillPath(result.id)
		return m, func() tea.Msg { return NavigateTo{Path: path} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, navigateHome
		case "ctrl+t":
			m.typeIdx = (m.typeIdx + 1) % len(billTypes)
			m.form.errs = nil
			return m, nil
		case "enter":
			if m.form.submitting {
				return m, nil
			}
			req := m.request()
			if err := m.deps.Validator.Validate(m.ctx, req); err != nil {
				if !m.form.setErrors(err) {
					return m, func() tea.Msg { return errorMsg{err: err} }
				}
				return m, nil
			}
			m.form.errs = nil
			m.form.submitting = true
			return m, m.cmdIssue(req, m.form.value(fieldAttachment))
		}
	}

	return m, m.form.update(msg)
}

// request builds the issue request. A promissory note has no drawee and a
// self-drafted bill no payee: the drawer takes that role.
func (m *CreateBillModel) request() models.IssueBillRequest {
	req := models.IssueBillRequest{
		Type:             m.billType(),
		CountryOfIssuing: m.form.value(validators.FieldCountryOfIssuing),
		CityOfIssuing:    m.form.value(validators.FieldCityOfIssuing),
		IssueDate:        m.form.value(validators.FieldIssueDate),
		MaturityDate:     m.form.value(validators.FieldMaturityDate),
		Payee:            m.form.value(validators.FieldPayee),
		Drawee:           m.form.value(validators.FieldDrawee),
		Sum:              m.form.value(validators.FieldSum),
		Currency:         validators.BillCurrency,
		CountryOfPayment: m.form.value(validators.FieldCountryOfPayment),
		CityOfPayment:    m.form.value(validators.FieldCityOfPayment),
		Language:         "en",
	}
	switch req.Type {
	case models.PromissoryNote:
		req.Drawee = ""
	case models.SelfDraftedBill:
		req.Payee = ""
	}
	return req
}

func (m *CreateBillModel) View() string {
	body := fmt.Sprintf("Bill type │ %s\n\n", m.billType()) + m.form.view()
	switch m.billType() {
	case models.PromissoryNote:
		body += "\n\nA promissory note is paid by you; the drawee is ignored."
	case models.SelfDraftedBill:
		body += "\n\nA self-drafted bill is payable to you; the payee is ignored."
	}
	if m.form.submitting {
		body += "\n\n[Issuing...]"
	}
	return renderPage("NEW BILL", body, "ctrl+t: bill type │ tab: next field │ enter: issue │ esc: back")
}

// cmdIssue uploads the optional attachment first so its upload id can be
// referenced by the bill.
func (m *CreateBillModel) cmdIssue(req models.IssueBillRequest, attachment string) tea.Cmd {
	ctx := m.ctx
	bills := m.deps.Services.BillService

	return func() tea.Msg {
		if attachment != "" {
			f, err := os.Open(attachment)
			if err != nil {
				return billIssuedMsg{err: fmt.Errorf("open attachment: %w", err)}
			}
			uploaded, err := bills.UploadFiles(ctx, filepath.Base(attachment), f)
			_ = f.Close()
			if err != nil {
				return billIssuedMsg{err: err}
			}
			req.FileUploadID = uploaded.FileUploadID
		}

		id, err := bills.Issue(ctx, req)
		if err != nil {
			return billIssuedMsg{err: err}
		}
		return billIssuedMsg{id: id.ID}
	}
}
