// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// IdentityType tells whether the active identity acts as a natural person or
// on behalf of a company.
type IdentityType string

const (
	// PersonalIdentity is the node owner's own identity.
	PersonalIdentity IdentityType = "personal"

	// CompanyIdentity is a company the node owner signs for.
	CompanyIdentity IdentityType = "company"
)

// Code returns the numeric form used by the node's switch endpoint:
// 0 for personal and 1 for company identities.
func (t IdentityType) Code() int {
	if t == CompanyIdentity {
		return 1
	}
	return 0
}

// Valid reports whether t is one of the known identity types.
func (t IdentityType) Valid() bool {
	return t == PersonalIdentity || t == CompanyIdentity
}

// UnmarshalJSON accepts both the string form ("personal", "company") and the
// numeric form (0, 1) returned by older node versions.
func (t *IdentityType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = IdentityType(s)
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("identity type: %w", err)
	}
	switch n {
	case 0:
		*t = PersonalIdentity
	case 1:
		*t = CompanyIdentity
	default:
		return fmt.Errorf("identity type: unknown code %d", n)
	}
	return nil
}

// PostalAddress is the address block shared by identities, companies,
// contacts and bill participants.
type PostalAddress struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Zip     string `json:"zip,omitempty"`
	Address string `json:"address"`
}

// String renders the address on a single line, skipping empty parts.
func (a PostalAddress) String() string {
	out := ""
	for _, part := range []string{a.Address, a.Zip, a.City, a.Country} {
		if part == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += part
	}
	return out
}

// ActiveIdentity is the response of GET /identity/active: the node id the
// node currently acts as and whether it is personal or company.
type ActiveIdentity struct {
	NodeID string       `json:"node_id"`
	Type   IdentityType `json:"type"`
}

// Identity is the personal identity of the node owner.
//
// Name, Avatar and Address are the display fields the session exposes to the
// rest of the client; the remaining fields are shown on the identity screen
// and sent back on edit.
type Identity struct {
	NodeID  string        `json:"node_id"`
	Type    IdentityType  `json:"type,omitempty"`
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Avatar  string        `json:"avatar,omitempty"`
	Address PostalAddress `json:"postal_address"`

	DateOfBirth          string `json:"date_of_birth,omitempty"`
	CountryOfBirth       string `json:"country_of_birth,omitempty"`
	CityOfBirth          string `json:"city_of_birth,omitempty"`
	IdentificationNumber string `json:"identification_number,omitempty"`
	NostrNpub            string `json:"npub,omitempty"`

	ProfilePictureFileUploadID   string `json:"profile_picture_file_upload_id,omitempty"`
	IdentityDocumentFileUploadID string `json:"identity_document_file_upload_id,omitempty"`
}

// SwitchIdentityRequest is the body of PUT /identity/switch.
type SwitchIdentityRequest struct {
	NodeID string `json:"node_id"`
	Type   int    `json:"t"`
}

// SeedPhrase carries the recovery words of the node's key pair.
type SeedPhrase struct {
	SeedPhrase string `json:"seed_phrase"`
}
