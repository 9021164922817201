// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Company is a company identity owned by the node. Its ID is the company's
// node id; signatories are the personal identities allowed to sign for it.
type Company struct {
	ID                    string        `json:"id"`
	Name                  string        `json:"name"`
	Email                 string        `json:"email"`
	CountryOfRegistration string        `json:"country_of_registration,omitempty"`
	CityOfRegistration    string        `json:"city_of_registration,omitempty"`
	RegistrationNumber    string        `json:"registration_number,omitempty"`
	RegistrationDate      string        `json:"registration_date,omitempty"`
	Address               PostalAddress `json:"postal_address"`
	Logo                  string        `json:"logo,omitempty"`

	LogoFileUploadID                string `json:"logo_file_upload_id,omitempty"`
	ProofOfRegistrationFileUploadID string `json:"proof_of_registration_file_upload_id,omitempty"`

	Signatories []Signer `json:"signatories,omitempty"`
}

// AsIdentity projects the company onto the display fields of an identity.
func (c Company) AsIdentity() Identity {
	return Identity{
		NodeID:  c.ID,
		Type:    CompanyIdentity,
		Name:    c.Name,
		Email:   c.Email,
		Avatar:  c.Logo,
		Address: c.Address,
	}
}

// Signer is one signatory of a company.
type Signer struct {
	NodeID  string        `json:"node_id"`
	Name    string        `json:"name,omitempty"`
	Address PostalAddress `json:"postal_address"`
}

// CompanyList is the response of GET /company/list.
type CompanyList struct {
	Companies []Company `json:"companies"`
}

// SignatoryRequest is the body of the add/remove signatory endpoints.
type SignatoryRequest struct {
	CompanyID   string `json:"id"`
	SignatoryID string `json:"signatory_node_id"`
}
