// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-bitcredit/internal/adapter"
	"github.com/MKhiriev/go-bitcredit/internal/mock"
	"github.com/MKhiriev/go-bitcredit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCompanySvc(t *testing.T) (CompanyService, *mock.MockAPIClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	return NewClientCompanyService(api), api
}

func TestClientCompanyService_List(t *testing.T) {
	svc, api := newTestCompanySvc(t)
	expectDo(t, api, http.MethodGet, "/company/list", models.CompanyList{
		Companies: []models.Company{{ID: "03c1", Name: "ACME"}, {ID: "03c2", Name: "Globex"}},
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Globex", got[1].Name)
}

func TestClientCompanyService_Detail_EscapesID(t *testing.T) {
	svc, api := newTestCompanySvc(t)
	expectDo(t, api, http.MethodGet, "/company/detail/a%2Fb", models.Company{ID: "a/b"})

	got, err := svc.Detail(context.Background(), "a/b")

	require.NoError(t, err)
	assert.Equal(t, "a/b", got.ID)
}

func TestClientCompanyService_Detail_Error(t *testing.T) {
	svc, api := newTestCompanySvc(t)
	api.EXPECT().Do(gomock.Any(), "/company/detail/x", gomock.Any()).Return(httpError(http.StatusNotFound, "Not Found"))

	_, err := svc.Detail(context.Background(), "x")

	assert.ErrorIs(t, err, adapter.ErrHTTPStatus)
}

func TestClientCompanyService_CreateAndEdit(t *testing.T) {
	svc, api := newTestCompanySvc(t)
	expectDo(t, api, http.MethodPost, "/company/create", models.Company{ID: "03c1", Name: "ACME"})
	expectDo(t, api, http.MethodPut, "/company/edit", nil)

	created, err := svc.Create(context.Background(), models.Company{Name: "ACME"})
	require.NoError(t, err)
	assert.Equal(t, "03c1", created.ID)

	require.NoError(t, svc.Edit(context.Background(), created))
}

func TestClientCompanyService_Signatories(t *testing.T) {
	svc, api := newTestCompanySvc(t)
	req := models.SignatoryRequest{CompanyID: "03c1", SignatoryID: "02aa"}

	api.EXPECT().
		Do(gomock.Any(), "/company/add_signatory", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, opts adapter.RequestOptions) error {
			assert.Equal(t, req, opts.Body)
			return nil
		})
	api.EXPECT().Do(gomock.Any(), "/company/remove_signatory", gomock.Any()).Return(httpError(http.StatusForbidden, "Forbidden"))

	require.NoError(t, svc.AddSigner(context.Background(), req))

	err := svc.RemoveSigner(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remove signatory from company 03c1")
}
