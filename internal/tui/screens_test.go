// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-bitcredit/internal/adapter"
	"github.com/MKhiriev/go-bitcredit/internal/router"
	"github.com/MKhiriev/go-bitcredit/internal/validators"
	"github.com/MKhiriev/go-bitcredit/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var loc = router.Location{}

func testBill() models.Bill {
	blocks := make([]models.Block, 7)
	for i := range blocks {
		blocks[i] = models.Block{ID: int64(i + 1), OpCode: "Endorse", Hash: "hash", Timestamp: 1700000000}
	}
	blocks[0].OpCode = "Issue"

	return models.Bill{
		ID:       "bill-0001",
		Type:     models.DraftedBill,
		Sum:      "1500",
		Currency: "sat",
		Drawer:   models.BillParticipant{NodeID: aliceNodeID, Name: "Alice Smith"},
		Drawee:   models.BillParticipant{NodeID: bobNodeID, Name: "Bob Builder"},
		Payee:    models.BillParticipant{NodeID: acmeNodeID, Name: "Acme GmbH", Type: models.CompanyContact},
		Files: []models.File{
			{Name: "invoice.pdf", Size: 1536},
			{Name: "contract.pdf", Size: 2 * 1024 * 1024},
			{Name: "note.txt", Size: 512},
		},
		ChainOfBlocks: models.ChainOfBlocks{Blocks: blocks},
	}
}

func loadedBillDetail(t *testing.T, deps *Deps, m *testMocks) *BillDetailModel {
	t.Helper()
	m.bill.EXPECT().Detail(gomock.Any(), "bill-0001").Return(testBill(), nil)

	page := newBillDetailModel(context.Background(), deps, router.Location{Params: map[string]string{"id": "bill-0001"}}).(*BillDetailModel)
	page.Update(runCmd(t, page.Init()))
	require.True(t, page.loaded)
	return page
}

func TestBillDetailModel_RendersParticipantsFilesAndChain(t *testing.T) {
	deps, m := newTestDeps(t)
	page := loadedBillDetail(t, deps, m)

	view := page.View()
	assert.Contains(t, view, "1500 sat")
	assert.Contains(t, view, "Alice Smith")
	assert.Contains(t, view, "Bob Builder")
	assert.Contains(t, view, "Acme GmbH")
	assert.Contains(t, view, "1.50 KB")
	assert.Contains(t, view, "2.00 MB")
	assert.Contains(t, view, "512 B")
	assert.Contains(t, view, "Chain (7 blocks)")
	assert.Contains(t, view, "2 earlier blocks")
	assert.NotContains(t, view, "#1  ")
	assert.Contains(t, view, "#7  ")

	page.Update(keyOf(tea.KeyTab))
	assert.Contains(t, page.View(), "#1   Issue")
}

func TestBillDetailModel_RequestToMintNeedsDefaultMint(t *testing.T) {
	deps, m := newTestDeps(t)
	page := loadedBillDetail(t, deps, m)

	_, cmd := page.Update(keyRunes("m"))
	msg := runCmd(t, cmd)
	require.IsType(t, billActionDoneMsg{}, msg)
	assert.ErrorIs(t, msg.(billActionDoneMsg).err, errNoDefaultMint)

	_, cmd = page.Update(msg)
	assert.Equal(t, errorMsg{err: errNoDefaultMint}, runCmd(t, cmd))
}

func TestBillDetailModel_RequestToMintUsesDefaultMint(t *testing.T) {
	deps, m := newTestDeps(t)
	m.mint.cfg.DefaultMintNodeID = mintNodeID
	page := loadedBillDetail(t, deps, m)

	m.bill.EXPECT().RequestToMint(gomock.Any(), models.RequestToMintRequest{BillID: "bill-0001", MintNodeID: mintNodeID}).Return(nil)

	_, cmd := page.Update(keyRunes("m"))
	assert.Equal(t, billActionDoneMsg{action: "request to mint"}, runCmd(t, cmd))
}

func TestBillDetailModel_EndorseValidatesEndorsee(t *testing.T) {
	deps, m := newTestDeps(t)
	page := loadedBillDetail(t, deps, m)

	page.Update(keyRunes("e"))
	require.Equal(t, promptEndorse, page.prompt)

	page.form.setValue(validators.FieldEndorsee, "not-a-node")
	_, cmd := page.Update(keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.ErrorIs(t, page.form.errs.Field(validators.FieldEndorsee), validators.ErrInvalidNodeID)

	m.bill.EXPECT().Endorse(gomock.Any(), models.EndorseBillRequest{BillID: "bill-0001", Endorsee: bobNodeID}).Return(nil)
	page.form.setValue(validators.FieldEndorsee, bobNodeID)
	_, cmd = page.Update(keyOf(tea.KeyEnter))
	assert.Equal(t, promptNone, page.prompt)
	assert.Equal(t, billActionDoneMsg{action: "endorsement"}, runCmd(t, cmd))
}

func TestBillDetailModel_ShareWritesFileWhenInstalled(t *testing.T) {
	deps, m := newTestDeps(t)
	page := loadedBillDetail(t, deps, m)

	_, cmd := page.Update(keyRunes("x"))
	msg := runCmd(t, cmd)
	shared, ok := msg.(sharedMsg)
	require.True(t, ok)
	require.NoError(t, shared.err)
	assert.Equal(t, m.shareDir, filepath.Dir(shared.target))

	content, err := os.ReadFile(shared.target)
	require.NoError(t, err)
	assert.Equal(t, "bill-0001", string(content))
}

func TestCreateContactModel_InvalidFormDoesNotCallService(t *testing.T) {
	deps, _ := newTestDeps(t)
	page := newCreateContactModel(context.Background(), deps, loc).(*CreateContactModel)

	_, cmd := page.Update(keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.False(t, page.form.submitting)
	assert.ErrorIs(t, page.form.errs.Field(validators.FieldName), validators.ErrRequired)
	assert.Contains(t, page.View(), "is required")
}

func TestCreateContactModel_SavesAndReturnsToContacts(t *testing.T) {
	deps, m := newTestDeps(t)
	page := newCreateContactModel(context.Background(), deps, loc).(*CreateContactModel)

	page.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	page.form.setValue(validators.FieldNodeID, acmeNodeID)
	page.form.setValue(validators.FieldName, "Acme GmbH")
	page.form.setValue(validators.FieldEmail, "office@acme.example")
	page.form.setValue(validators.FieldCountry, "AT")
	page.form.setValue(validators.FieldCity, "Graz")
	page.form.setValue(validators.FieldAddress, "Platz 2")
	page.form.setValue(validators.FieldDateOfBirth, "2001-05-04")

	m.contact.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Contact) (models.Contact, error) {
			assert.Equal(t, models.CompanyContact, c.Type)
			assert.Equal(t, "2001-05-04", c.DateOfBirthOrRegistration)
			return c, nil
		})

	_, cmd := page.Update(keyOf(tea.KeyEnter))
	_, cmd = page.Update(runCmd(t, cmd))
	assert.Equal(t, NavigateTo{Path: string(router.Contacts)}, runCmd(t, cmd))
}

func TestCreateContactModel_RegistrationDateErrorShownOnDateField(t *testing.T) {
	deps, _ := newTestDeps(t)
	page := newCreateContactModel(context.Background(), deps, loc).(*CreateContactModel)

	page.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	page.form.setValue(validators.FieldDateOfBirth, "04.05.2001")
	page.Update(keyOf(tea.KeyEnter))

	assert.ErrorIs(t, page.form.errs.Field(validators.FieldDateOfBirth), validators.ErrInvalidDate)
}

func TestContactsModel_DeletesAfterConfirmation(t *testing.T) {
	deps, m := newTestDeps(t)
	contacts := []models.Contact{
		{NodeID: bobNodeID, Name: "Bob Builder"},
		{NodeID: acmeNodeID, Name: "Acme GmbH", Type: models.CompanyContact},
	}
	m.contact.EXPECT().List(gomock.Any()).Return(contacts, nil)

	page := newContactsModel(context.Background(), deps, loc).(*ContactsModel)
	page.Update(runCmd(t, page.Init()))
	page.Update(keyRunes("j"))

	_, cmd := page.Update(keyRunes("d"))
	assert.Nil(t, cmd)
	assert.Contains(t, page.View(), "Delete Acme GmbH?")

	page.Update(keyRunes("n"))
	assert.False(t, page.confirming)

	m.contact.EXPECT().Delete(gomock.Any(), acmeNodeID).Return(nil)
	page.Update(keyRunes("d"))
	_, cmd = page.Update(keyRunes("y"))
	assert.Equal(t, contactDeletedMsg{nodeID: acmeNodeID}, runCmd(t, cmd))
}

func TestCreateBillModel_RequestFollowsBillType(t *testing.T) {
	deps, _ := newTestDeps(t)
	page := newCreateBillModel(context.Background(), deps, loc).(*CreateBillModel)
	page.form.setValue(validators.FieldPayee, bobNodeID)
	page.form.setValue(validators.FieldDrawee, acmeNodeID)

	req := page.request()
	assert.Equal(t, models.DraftedBill, req.Type)
	assert.Equal(t, bobNodeID, req.Payee)
	assert.Equal(t, acmeNodeID, req.Drawee)
	assert.Equal(t, "sat", req.Currency)

	page.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	req = page.request()
	assert.Equal(t, models.PromissoryNote, req.Type)
	assert.Empty(t, req.Drawee)

	page.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	req = page.request()
	assert.Equal(t, models.SelfDraftedBill, req.Type)
	assert.Empty(t, req.Payee)
}

func TestCreateBillModel_IssuesAndOpensBill(t *testing.T) {
	deps, m := newTestDeps(t)
	page := newCreateBillModel(context.Background(), deps, loc).(*CreateBillModel)
	page.form.setValue(validators.FieldPayee, bobNodeID)
	page.form.setValue(validators.FieldDrawee, acmeNodeID)
	page.form.setValue(validators.FieldSum, "2500")
	page.form.setValue(validators.FieldCountryOfIssuing, "AT")
	page.form.setValue(validators.FieldCityOfIssuing, "Vienna")
	page.form.setValue(validators.FieldCountryOfPayment, "AT")
	page.form.setValue(validators.FieldCityOfPayment, "Graz")

	m.bill.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(models.BillID{ID: "bill 9"}, nil)

	_, cmd := page.Update(keyOf(tea.KeyEnter))
	require.True(t, page.form.submitting)
	_, cmd = page.Update(runCmd(t, cmd))
	assert.Equal(t, NavigateTo{Path: "/bill/bill%209"}, runCmd(t, cmd))
}

func TestCreateBillModel_UploadsAttachmentFirst(t *testing.T) {
	deps, m := newTestDeps(t)
	page := newCreateBillModel(context.Background(), deps, loc).(*CreateBillModel)

	path := filepath.Join(t.TempDir(), "invoice.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o600))

	gomock.InOrder(
		m.bill.EXPECT().UploadFiles(gomock.Any(), "invoice.pdf", gomock.Any()).
			Return(models.UploadedFile{FileUploadID: "upload-1"}, nil),
		m.bill.EXPECT().Issue(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.IssueBillRequest) (models.BillID, error) {
				assert.Equal(t, "upload-1", req.FileUploadID)
				return models.BillID{ID: "bill-9"}, nil
			}),
	)

	msg := runCmd(t, page.cmdIssue(page.request(), path))
	assert.Equal(t, billIssuedMsg{id: "bill-9"}, msg)
}

func TestNotificationsModel_TogglesActiveFilter(t *testing.T) {
	deps, m := newTestDeps(t)
	active := true
	sum := "1500"
	notification := models.Notification{
		ID:          "notif-1",
		Description: "Bill waits for acceptance",
		Active:      true,
		Payload:     models.NotificationPayload{ActionType: models.ActionAcceptBill, BillID: "bill-0001", Sum: &sum},
	}

	gomock.InOrder(
		m.notification.EXPECT().List(gomock.Any(), models.NotificationFilter{Active: &active}).
			Return([]models.Notification{notification}, nil),
		m.notification.EXPECT().List(gomock.Any(), models.NotificationFilter{}).
			Return([]models.Notification{notification}, nil),
	)

	page := newNotificationsModel(context.Background(), deps, loc).(*NotificationsModel)
	page.Update(runCmd(t, page.Init()))
	assert.Contains(t, page.View(), "(1500)")

	_, cmd := page.Update(keyOf(tea.KeyTab))
	page.Update(runCmd(t, cmd))
	assert.Contains(t, page.View(), "NOTIFICATIONS (all)")

	_, cmd = page.Update(keyOf(tea.KeyEnter))
	assert.Equal(t, NavigateTo{Path: "/bill/bill-0001"}, runCmd(t, cmd))
}

func TestIdentitySwitchModel_SwitchesToCompany(t *testing.T) {
	deps, m := newTestDeps(t)
	signInAlice(t, deps, m)

	m.identity.EXPECT().Detail(gomock.Any()).Return(alice, nil)
	m.company.EXPECT().List(gomock.Any()).Return([]models.Company{acme}, nil)

	page := newIdentitySwitchModel(context.Background(), deps, loc).(*IdentitySwitchModel)
	page.Update(runCmd(t, page.Init()))
	require.Len(t, page.identities, 2)
	assert.Equal(t, 0, page.idx)

	m.identity.EXPECT().Switch(gomock.Any(), acmeNodeID, models.CompanyIdentity).Return(nil)
	m.company.EXPECT().Detail(gomock.Any(), acmeNodeID).Return(acme, nil)

	page.Update(keyRunes("j"))
	_, cmd := page.Update(keyOf(tea.KeyEnter))
	_, cmd = page.Update(runCmd(t, cmd))

	assert.Equal(t, NavigateTo{Path: "/"}, runCmd(t, cmd))
	assert.Equal(t, acmeNodeID, deps.Session.Snapshot().NodeID)
	assert.Equal(t, "Acme GmbH", deps.Session.Snapshot().Name)
}

func TestSettingsModel_ValidatesAndSaves(t *testing.T) {
	deps, m := newTestDeps(t)
	m.mint.cfg = models.MintConfig{DefaultMintURL: "https://mint.example.com", Flags: map[string]bool{"beta": true}}

	page := newSettingsModel(context.Background(), deps, loc).(*SettingsModel)
	page.Update(runCmd(t, page.cmdRead()))
	assert.Equal(t, "https://mint.example.com", page.form.value(validators.FieldDefaultMintURL))
	assert.Contains(t, page.View(), "beta")
	assert.Contains(t, page.View(), "installed app")

	page.form.setValue(validators.FieldDefaultMintNodeID, "xyz")
	_, cmd := page.Update(keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Zero(t, m.mint.writes)

	page.form.setValue(validators.FieldDefaultMintNodeID, mintNodeID)
	_, cmd = page.Update(keyOf(tea.KeyEnter))
	page.Update(runCmd(t, cmd))

	assert.Equal(t, 1, m.mint.writes)
	assert.Equal(t, mintNodeID, m.mint.cfg.DefaultMintNodeID)
	assert.Contains(t, page.View(), "Saved")
}

func TestMintModel_MissingQuoteIsNotAnError(t *testing.T) {
	deps, m := newTestDeps(t)
	m.bill.EXPECT().Light(gomock.Any()).Return([]models.LightBill{{ID: "bill-0002", Sum: "900", Currency: "sat"}}, nil)
	m.quote.EXPECT().Get(gomock.Any(), "bill-0002").
		Return(models.Quote{}, &adapter.HTTPError{StatusCode: http.StatusNotFound, Status: "Not Found"})

	page := newMintModel(context.Background(), deps, loc).(*MintModel)
	_, cmd := page.Update(runCmd(t, page.Init()))
	_, cmd = page.Update(runCmd(t, cmd))

	assert.Nil(t, cmd)
	assert.Contains(t, page.View(), "No quote for this bill yet")
}

func TestMintModel_AcceptsOfferedQuote(t *testing.T) {
	deps, m := newTestDeps(t)
	offered := models.Quote{BillID: "bill-0002", MintNodeID: mintNodeID, Sum: "886", Status: models.QuoteOffered}

	m.bill.EXPECT().Light(gomock.Any()).Return([]models.LightBill{{ID: "bill-0002"}}, nil)
	m.quote.EXPECT().Get(gomock.Any(), "bill-0002").Return(offered, nil)

	page := newMintModel(context.Background(), deps, loc).(*MintModel)
	_, cmd := page.Update(runCmd(t, page.Init()))
	page.Update(runCmd(t, cmd))
	assert.Contains(t, page.View(), "886 sat")

	m.quote.EXPECT().Accept(gomock.Any(), "bill-0002").Return(errors.New("mint offline"))
	_, cmd = page.Update(keyRunes("a"))
	_, cmd = page.Update(runCmd(t, cmd))
	assert.False(t, page.busy)
	assert.IsType(t, errorMsg{}, runCmd(t, cmd))
}
