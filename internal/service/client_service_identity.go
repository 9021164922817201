// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-bitcredit/internal/adapter"
	"github.com/MKhiriev/go-bitcredit/models"
)

type clientIdentityService struct {
	api adapter.APIClient
}

func NewClientIdentityService(api adapter.APIClient) IdentityService {
	return &clientIdentityService{api: api}
}

func (s *clientIdentityService) Active(ctx context.Context) (models.ActiveIdentity, error) {
	var active models.ActiveIdentity
	if err := s.api.Do(ctx, "/identity/active", adapter.RequestOptions{Result: &active}); err != nil {
		return models.ActiveIdentity{}, fmt.Errorf("get active identity: %w", err)
	}
	return active, nil
}

func (s *clientIdentityService) Detail(ctx context.Context) (models.Identity, error) {
	var identity models.Identity
	if err := s.api.Do(ctx, "/identity/detail", adapter.RequestOptions{Result: &identity}); err != nil {
		return models.Identity{}, fmt.Errorf("get identity detail: %w", err)
	}
	if identity.Type == "" {
		identity.Type = models.PersonalIdentity
	}
	return identity, nil
}

func (s *clientIdentityService) Create(ctx context.Context, identity models.Identity) (models.Identity, error) {
	var created models.Identity
	err := s.api.Do(ctx, "/identity/create", adapter.RequestOptions{
		Method: http.MethodPost,
		Body:   identity,
		Result: &created,
	})
	if err != nil {
		return models.Identity{}, fmt.Errorf("create identity: %w", err)
	}
	return created, nil
}

func (s *clientIdentityService) Edit(ctx context.Context, identity models.Identity) error {
	err := s.api.Do(ctx, "/identity/change", adapter.RequestOptions{
		Method: http.MethodPut,
		Body:   identity,
	})
	if err != nil {
		return fmt.Errorf("edit identity: %w", err)
	}
	return nil
}

func (s *clientIdentityService) Switch(ctx context.Context, nodeID string, identityType models.IdentityType) error {
	err := s.api.Do(ctx, "/identity/switch", adapter.RequestOptions{
		Method: http.MethodPut,
		Body:   models.SwitchIdentityRequest{NodeID: nodeID, Type: identityType.Code()},
	})
	if err != nil {
		return fmt.Errorf("switch identity: %w", err)
	}
	return nil
}

func (s *clientIdentityService) UploadFile(ctx context.Context, filename string, content io.Reader) (models.UploadedFile, error) {
	uploaded, err := s.api.Upload(ctx, "/identity/upload_file", filename, content)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("upload identity file: %w", err)
	}
	return uploaded, nil
}

func (s *clientIdentityService) Backup(ctx context.Context) (models.SeedPhrase, error) {
	var seed models.SeedPhrase
	if err := s.api.Do(ctx, "/identity/seed/backup", adapter.RequestOptions{Result: &seed}); err != nil {
		return models.SeedPhrase{}, fmt.Errorf("backup seed phrase: %w", err)
	}
	return seed, nil
}

func (s *clientIdentityService) Restore(ctx context.Context, seed models.SeedPhrase) error {
	err := s.api.Do(ctx, "/identity/seed/recover", adapter.RequestOptions{
		Method: http.MethodPut,
		Body:   seed,
	})
	if err != nil {
		return fmt.Errorf("recover seed phrase: %w", err)
	}
	return nil
}
