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

type clientContactService struct {
	api adapter.APIClient
}

func NewClientContactService(api adapter.APIClient) ContactService {
	return &clientContactService{api: api}
}

func (s *clientContactService) List(ctx context.Context) ([]models.Contact, error) {
	var list models.ContactList
	if err := s.api.Do(ctx, "/contacts/list", adapter.RequestOptions{Result: &list}); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return list.Dedup(), nil
}

func (s *clientContactService) Detail(ctx context.Context, nodeID string) (models.Contact, error) {
	var contact models.Contact
	if err := s.api.Do(ctx, "/contacts/detail/"+url.PathEscape(nodeID), adapter.RequestOptions{Result: &contact}); err != nil {
		return models.Contact{}, fmt.Errorf("get contact %s: %w", nodeID, err)
	}
	return contact, nil
}

func (s *clientContactService) Create(ctx context.Context, contact models.Contact) (models.Contact, error) {
	var created models.Contact
	err := s.api.Do(ctx, "/contacts/create", adapter.RequestOptions{
		Method: http.MethodPost,
		Body:   contact,
		Result: &created,
	})
	if err != nil {
		return models.Contact{}, fmt.Errorf("create contact: %w", err)
	}
	return created, nil
}

func (s *clientContactService) Edit(ctx context.Context, contact models.Contact) error {
	if err := s.api.Do(ctx, "/contacts/edit", adapter.RequestOptions{Method: http.MethodPut, Body: contact}); err != nil {
		return fmt.Errorf("edit contact %s: %w", contact.NodeID, err)
	}
	return nil
}

func (s *clientContactService) Delete(ctx context.Context, nodeID string) error {
	err := s.api.Do(ctx, "/contacts/remove/"+url.PathEscape(nodeID), adapter.RequestOptions{Method: http.MethodDelete})
	if err != nil {
		return fmt.Errorf("delete contact %s: %w", nodeID, err)
	}
	return nil
}

func (s *clientContactService) UploadFile(ctx context.Context, filename string, content io.Reader) (models.UploadedFile, error) {
	uploaded, err := s.api.Upload(ctx, "/contacts/upload_file", filename, content)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("upload contact file: %w", err)
	}
	return uploaded, nil
}
