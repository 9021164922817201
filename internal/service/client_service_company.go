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

type clientCompanyService struct {
	api adapter.APIClient
}

func NewClientCompanyService(api adapter.APIClient) CompanyService {
	return &clientCompanyService{api: api}
}

func (s *clientCompanyService) List(ctx context.Context) ([]models.Company, error) {
	var list models.CompanyList
	if err := s.api.Do(ctx, "/company/list", adapter.RequestOptions{Result: &list}); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return list.Companies, nil
}

func (s *clientCompanyService) Detail(ctx context.Context, id string) (models.Company, error) {
	var company models.Company
	if err := s.api.Do(ctx, "/company/detail/"+url.PathEscape(id), adapter.RequestOptions{Result: &company}); err != nil {
		return models.Company{}, fmt.Errorf("get company %s: %w", id, err)
	}
	return company, nil
}

func (s *clientCompanyService) Create(ctx context.Context, company models.Company) (models.Company, error) {
	var created models.Company
	err := s.api.Do(ctx, "/company/create", adapter.RequestOptions{
		Method: http.MethodPost,
		Body:   company,
		Result: &created,
	})
	if err != nil {
		return models.Company{}, fmt.Errorf("create company: %w", err)
	}
	return created, nil
}

func (s *clientCompanyService) Edit(ctx context.Context, company models.Company) error {
	if err := s.api.Do(ctx, "/company/edit", adapter.RequestOptions{Method: http.MethodPut, Body: company}); err != nil {
		return fmt.Errorf("edit company %s: %w", company.ID, err)
	}
	return nil
}

func (s *clientCompanyService) AddSigner(ctx context.Context, req models.SignatoryRequest) error {
	if err := s.api.Do(ctx, "/company/add_signatory", adapter.RequestOptions{Method: http.MethodPut, Body: req}); err != nil {
		return fmt.Errorf("add signatory to company %s: %w", req.CompanyID, err)
	}
	return nil
}

func (s *clientCompanyService) RemoveSigner(ctx context.Context, req models.SignatoryRequest) error {
	if err := s.api.Do(ctx, "/company/remove_signatory", adapter.RequestOptions{Method: http.MethodPut, Body: req}); err != nil {
		return fmt.Errorf("remove signatory from company %s: %w", req.CompanyID, err)
	}
	return nil
}

func (s *clientCompanyService) UploadFile(ctx context.Context, filename string, content io.Reader) (models.UploadedFile, error) {
	uploaded, err := s.api.Upload(ctx, "/company/upload_file", filename, content)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("upload company file: %w", err)
	}
	return uploaded, nil
}
