// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-bitcredit/internal/adapter"
	"github.com/MKhiriev/go-bitcredit/models"
)

type clientQuoteService struct {
	api adapter.APIClient
}

func NewClientQuoteService(api adapter.APIClient) QuoteService {
	return &clientQuoteService{api: api}
}

func (s *clientQuoteService) Get(ctx context.Context, billID string) (models.Quote, error) {
	var quote models.Quote
	if err := s.api.Do(ctx, "/quote/"+url.PathEscape(billID), adapter.RequestOptions{Result: &quote}); err != nil {
		return models.Quote{}, fmt.Errorf("get quote for bill %s: %w", billID, err)
	}
	return quote, nil
}

func (s *clientQuoteService) Accept(ctx context.Context, billID string) error {
	path := "/quote/" + url.PathEscape(billID) + "/accept"
	if err := s.api.Do(ctx, path, adapter.RequestOptions{Method: http.MethodPut}); err != nil {
		return fmt.Errorf("accept quote for bill %s: %w", billID, err)
	}
	return nil
}

func (s *clientQuoteService) Decline(ctx context.Context, billID string) error {
	path := "/quote/" + url.PathEscape(billID) + "/decline"
	if err := s.api.Do(ctx, path, adapter.RequestOptions{Method: http.MethodPut}); err != nil {
		return fmt.Errorf("decline quote for bill %s: %w", billID, err)
	}
	return nil
}
