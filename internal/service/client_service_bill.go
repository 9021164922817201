// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-bitcredit/internal/adapter"
	"github.com/MKhiriev/go-bitcredit/models"
)

type clientBillService struct {
	api adapter.APIClient
}

func NewClientBillService(api adapter.APIClient) BillService {
	return &clientBillService{api: api}
}

func (s *clientBillService) List(ctx context.Context) ([]models.Bill, error) {
	var list models.BillList
	if err := s.api.Do(ctx, "/bills", adapter.RequestOptions{Result: &list}); err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	return list.Bills, nil
}

func (s *clientBillService) Light(ctx context.Context) ([]models.LightBill, error) {
	var list models.LightBillList
	if err := s.api.Do(ctx, "/bills/light", adapter.RequestOptions{Result: &list}); err != nil {
		return nil, fmt.Errorf("list light bills: %w", err)
	}
	return list.Bills, nil
}

func (s *clientBillService) Detail(ctx context.Context, id string) (models.Bill, error) {
	var bill models.Bill
	if err := s.api.Do(ctx, "/bill/detail/"+url.PathEscape(id), adapter.RequestOptions{Result: &bill}); err != nil {
		return models.Bill{}, fmt.Errorf("get bill %s: %w", id, err)
	}
	return bill, nil
}

func (s *clientBillService) Search(ctx context.Context, filter models.BillSearchFilter) ([]models.LightBill, error) {
	if filter.Role == "" {
		filter.Role = models.RoleAll
	}

	var list models.LightBillList
	err := s.api.Do(ctx, "/bill/search", adapter.RequestOptions{
		Method: http.MethodPost,
		Body:   filter,
		Result: &list,
	})
	if err != nil {
		return nil, fmt.Errorf("search bills: %w", err)
	}
	return list.Bills, nil
}

func (s *clientBillService) Issue(ctx context.Context, req models.IssueBillRequest) (models.BillID, error) {
	var id models.BillID
	err := s.api.Do(ctx, "/bill/issue", adapter.RequestOptions{
		Method: http.MethodPost,
		Body:   req,
		Result: &id,
	})
	if err != nil {
		return models.BillID{}, fmt.Errorf("issue bill: %w", err)
	}
	return id, nil
}

func (s *clientBillService) Endorse(ctx context.Context, req models.EndorseBillRequest) error {
	return s.put(ctx, "/bill/endorse", req, "endorse bill "+req.BillID)
}

func (s *clientBillService) Accept(ctx context.Context, billID string) error {
	return s.put(ctx, "/bill/accept", models.BillActionRequest{BillID: billID}, "accept bill "+billID)
}

func (s *clientBillService) RequestToPay(ctx context.Context, req models.RequestToPayRequest) error {
	return s.put(ctx, "/bill/request_to_pay", req, "request to pay bill "+req.BillID)
}

func (s *clientBillService) RequestToAccept(ctx context.Context, billID string) error {
	return s.put(ctx, "/bill/request_to_accept", models.BillActionRequest{BillID: billID}, "request to accept bill "+billID)
}

func (s *clientBillService) OfferToSell(ctx context.Context, req models.OfferToSellRequest) error {
	return s.put(ctx, "/bill/offer_to_sell", req, "offer to sell bill "+req.BillID)
}

func (s *clientBillService) UploadFiles(ctx context.Context, filename string, content io.Reader) (models.UploadedFile, error) {
	uploaded, err := s.api.Upload(ctx, "/bill/upload_files", filename, content)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("upload bill file: %w", err)
	}
	return uploaded, nil
}

func (s *clientBillService) RequestToMint(ctx context.Context, req models.RequestToMintRequest) error {
	return s.put(ctx, "/bill/request_to_mint", req, "request to mint bill "+req.BillID)
}

func (s *clientBillService) put(ctx context.Context, path string, body any, op string) error {
	if err := s.api.Do(ctx, path, adapter.RequestOptions{Method: http.MethodPut, Body: body}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
