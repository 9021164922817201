// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service provides typed wrappers over the node API, one per
// resource. Every call is a plain request/response mapping: there is no
// local state and no caching, so each call re-fetches from the node.
// Errors from the adapter are wrapped with the operation name and are not
// translated, so callers can still match an [adapter.HTTPError] with errors.As.
package service

import (
	"github.com/MKhiriev/go-bitcredit/internal/adapter"
)

// ClientServices aggregates every resource service used by the client.
type ClientServices struct {
	IdentityService     IdentityService
	CompanyService      CompanyService
	ContactService      ContactService
	BillService         BillService
	NotificationService NotificationService
	QuoteService        QuoteService
}

// NewClientServices wires all resource services to the same API client.
func NewClientServices(apiClient adapter.APIClient) *ClientServices {
	return &ClientServices{
		IdentityService:     NewClientIdentityService(apiClient),
		CompanyService:      NewClientCompanyService(apiClient),
		ContactService:      NewClientContactService(apiClient),
		BillService:         NewClientBillService(apiClient),
		NotificationService: NewClientNotificationService(apiClient),
		QuoteService:        NewClientQuoteService(apiClient),
	}
}
