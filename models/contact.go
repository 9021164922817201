// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ContactType distinguishes person contacts from company contacts.
type ContactType int

const (
	PersonContact  ContactType = 0
	CompanyContact ContactType = 1
)

// String implements fmt.Stringer.
func (t ContactType) String() string {
	if t == CompanyContact {
		return "company"
	}
	return "person"
}

// Contact is a peer known to the node. Contacts are keyed by NodeID.
type Contact struct {
	Type    ContactType   `json:"type"`
	NodeID  string        `json:"node_id"`
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Address PostalAddress `json:"postal_address"`

	DateOfBirthOrRegistration    string `json:"date_of_birth_or_registration,omitempty"`
	CountryOfBirthOrRegistration string `json:"country_of_birth_or_registration,omitempty"`
	CityOfBirthOrRegistration    string `json:"city_of_birth_or_registration,omitempty"`
	IdentificationNumber         string `json:"identification_number,omitempty"`

	AvatarFileUploadID        string `json:"avatar_file_upload_id,omitempty"`
	ProofDocumentFileUploadID string `json:"proof_document_file_upload_id,omitempty"`
}

// ContactList is the response of GET /contacts/list.
type ContactList struct {
	Contacts []Contact `json:"contacts"`
}

// Dedup returns the contacts with duplicate node ids removed. The first
// occurrence of each node id wins and the original order is kept.
func (l ContactList) Dedup() []Contact {
	seen := make(map[string]struct{}, len(l.Contacts))
	out := make([]Contact, 0, len(l.Contacts))
	for _, c := range l.Contacts {
		if _, ok := seen[c.NodeID]; ok {
			continue
		}
		seen[c.NodeID] = struct{}{}
		out = append(out, c)
	}
	return out
}
