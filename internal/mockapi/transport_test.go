// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mockapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bitcredit/internal/adapter"
	"github.com/MKhiriev/go-bitcredit/internal/config"
	"github.com/MKhiriev/go-bitcredit/internal/logger"
	"github.com/MKhiriev/go-bitcredit/internal/service"
	"github.com/MKhiriev/go-bitcredit/models"
)

func newTestServices(t *testing.T) *service.ClientServices {
	t.Helper()
	transport := NewTransport(NewHandler(newTestNode(t), logger.Nop()))
	api, err := adapter.NewHTTPAPIClient(config.ClientAdapter{HTTPAddress: BaseURL}, transport, logger.Nop())
	require.NoError(t, err)
	return service.NewClientServices(api)
}

func TestTransport_IdentityFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	active, err := svc.IdentityService.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ActiveIdentity{NodeID: PersonalNodeID, Type: models.PersonalIdentity}, active)

	require.NoError(t, svc.IdentityService.Switch(ctx, CompanyNodeID, models.CompanyIdentity))
	active, err = svc.IdentityService.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CompanyIdentity, active.Type)

	company, err := svc.CompanyService.Detail(ctx, active.NodeID)
	require.NoError(t, err)
	assert.Equal(t, "Smith Trading GmbH", company.Name)

	seed, err := svc.IdentityService.Backup(ctx)
	require.NoError(t, err)
	assert.Equal(t, SeedPhrase, seed.SeedPhrase)
}

func TestTransport_BillFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	uploaded, err := svc.BillService.UploadFiles(ctx, "invoice.pdf", strings.NewReader("%PDF-1.7 body"))
	require.NoError(t, err)
	require.NotEmpty(t, uploaded.FileUploadID)

	id, err := svc.BillService.Issue(ctx, models.IssueBillRequest{
		Type:         models.DraftedBill,
		Payee:        PersonContactNodeID,
		Drawee:       CompanyContactNodeID,
		Sum:          "1200",
		Currency:     "sat",
		IssueDate:    "2026-04-01",
		MaturityDate: "2026-09-01",
		FileUploadID: uploaded.FileUploadID,
	})
	require.NoError(t, err)

	bill, err := svc.BillService.Detail(ctx, id.ID)
	require.NoError(t, err)
	require.Len(t, bill.Files, 1)
	assert.Equal(t, "invoice.pdf", bill.Files[0].Name)
	assert.Equal(t, int64(len("%PDF-1.7 body")), bill.Files[0].Size)

	light, err := svc.BillService.Light(ctx)
	require.NoError(t, err)
	assert.Len(t, light, 4)

	found, err := svc.BillService.Search(ctx, models.BillSearchFilter{Role: models.RolePayee})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, ReceivedBillID, found[0].ID)

	require.NoError(t, svc.BillService.RequestToPay(ctx, models.RequestToPayRequest{BillID: ReceivedBillID, Currency: "sat"}))
}

func TestTransport_ErrorsKeepStatus(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	_, err := svc.BillService.Detail(ctx, "missing")
	require.Error(t, err)

	var httpErr *adapter.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Contains(t, err.Error(), "Not Found")

	err = svc.QuoteService.Decline(ctx, ReceivedBillID)
	require.NoError(t, err)
	err = svc.QuoteService.Accept(ctx, ReceivedBillID)
	assert.Equal(t, http.StatusConflict, adapter.StatusCode(err))
}

func TestTransport_ContactsAndNotifications(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	contacts, err := svc.ContactService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 2)

	require.NoError(t, svc.ContactService.Delete(ctx, PersonContactNodeID))
	contacts, err = svc.ContactService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 1)

	active := true
	list, err := svc.NotificationService.List(ctx, models.NotificationFilter{Active: &active})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, svc.NotificationService.MarkDone(ctx, list[0].ID))
	list, err = svc.NotificationService.List(ctx, models.NotificationFilter{Active: &active})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTransport_CancelledContext(t *testing.T) {
	svc := newTestServices(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.BillService.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
