// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-bitcredit/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// IdentityService wraps the node's /identity endpoints.
type IdentityService interface {
	// Active returns the node id and type the node currently acts as.
	Active(ctx context.Context) (models.ActiveIdentity, error)

	// Detail returns the personal identity of the node owner.
	Detail(ctx context.Context) (models.Identity, error)

	// Create creates the personal identity during onboarding.
	Create(ctx context.Context, identity models.Identity) (models.Identity, error)

	// Edit changes the personal identity.
	Edit(ctx context.Context, identity models.Identity) error

	// Switch makes the given personal or company node id the active one.
	Switch(ctx context.Context, nodeID string, identityType models.IdentityType) error

	// UploadFile uploads a profile picture or identity document and returns
	// the upload id to pass to Create or Edit.
	UploadFile(ctx context.Context, filename string, content io.Reader) (models.UploadedFile, error)

	// Backup returns the seed phrase of the node's key pair.
	Backup(ctx context.Context) (models.SeedPhrase, error)

	// Restore recovers the node's key pair from a seed phrase.
	Restore(ctx context.Context, seed models.SeedPhrase) error
}

// CompanyService wraps the node's /company endpoints.
type CompanyService interface {
	List(ctx context.Context) ([]models.Company, error)
	Detail(ctx context.Context, id string) (models.Company, error)
	Create(ctx context.Context, company models.Company) (models.Company, error)
	Edit(ctx context.Context, company models.Company) error
	AddSigner(ctx context.Context, req models.SignatoryRequest) error
	RemoveSigner(ctx context.Context, req models.SignatoryRequest) error
	UploadFile(ctx context.Context, filename string, content io.Reader) (models.UploadedFile, error)
}

// ContactService wraps the node's /contacts endpoints.
type ContactService interface {
	// List returns the contacts with duplicate node ids removed.
	List(ctx context.Context) ([]models.Contact, error)
	Detail(ctx context.Context, nodeID string) (models.Contact, error)
	Create(ctx context.Context, contact models.Contact) (models.Contact, error)
	Edit(ctx context.Context, contact models.Contact) error
	Delete(ctx context.Context, nodeID string) error
	UploadFile(ctx context.Context, filename string, content io.Reader) (models.UploadedFile, error)
}

// BillService wraps the node's /bills and /bill endpoints.
type BillService interface {
	List(ctx context.Context) ([]models.Bill, error)
	Light(ctx context.Context) ([]models.LightBill, error)
	Detail(ctx context.Context, id string) (models.Bill, error)
	Search(ctx context.Context, filter models.BillSearchFilter) ([]models.LightBill, error)

	// Issue draws a new bill and returns its id.
	Issue(ctx context.Context, req models.IssueBillRequest) (models.BillID, error)
	Endorse(ctx context.Context, req models.EndorseBillRequest) error
	Accept(ctx context.Context, billID string) error
	RequestToPay(ctx context.Context, req models.RequestToPayRequest) error
	RequestToAccept(ctx context.Context, billID string) error
	OfferToSell(ctx context.Context, req models.OfferToSellRequest) error
	UploadFiles(ctx context.Context, filename string, content io.Reader) (models.UploadedFile, error)
	RequestToMint(ctx context.Context, req models.RequestToMintRequest) error
}

// NotificationService wraps the node's /notifications endpoints.
type NotificationService interface {
	List(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error)
	MarkDone(ctx context.Context, id string) error
}

// QuoteService wraps the node's /quote endpoints.
type QuoteService interface {
	Get(ctx context.Context, billID string) (models.Quote, error)
	Accept(ctx context.Context, billID string) error
	Decline(ctx context.Context, billID string) error
}
