// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-bitcredit/internal/adapter"
	"github.com/MKhiriev/go-bitcredit/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// expectDo registers a Do call on path answered with response, checking the
// method. response is copied into opts.Result through JSON, like the real
// client does.
func expectDo(t *testing.T, api *mock.MockAPIClient, method, path string, response any) *gomock.Call {
	t.Helper()
	return api.EXPECT().
		Do(gomock.Any(), path, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, opts adapter.RequestOptions) error {
			wantMethod := opts.Method
			if wantMethod == "" {
				wantMethod = "GET"
			}
			assert.Equal(t, method, wantMethod)

			if response == nil || opts.Result == nil {
				return nil
			}
			raw, err := json.Marshal(response)
			require.NoError(t, err)
			return json.Unmarshal(raw, opts.Result)
		})
}

// httpError builds the adapter error for a status code.
func httpError(code int, status string) error {
	return &adapter.HTTPError{StatusCode: code, Status: status}
}
