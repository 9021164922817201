// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mockapi

import (
	"github.com/MKhiriev/go-bitcredit/models"
)

// Node ids of the seeded records.
const (
	PersonalNodeID       = "024a0a339b0c6d0553897752a84115adc81c75812e1743eb2519258e5000f70deb"
	CompanyNodeID        = "03f168ccdd91548c5a8c871bd4b9b757c5e889a1672e774bddef4a2714759a7a8f"
	PersonContactNodeID  = "0281b637d8fcd2c6da6359e6963113a1170de795e4b725b84d1e0b4cfd9ec58ce9"
	CompanyContactNodeID = "03382635c9325bf3273d195ff1b8a44e5b11afd7d97addeb8863ea35feb98c1a07"

	// MintNodeID is the node id of the mint that answers quote requests.
	MintNodeID = "02d6f0a1b4fbc1d2a2e0b5b97d3c1c8e7f3b9a8d6e5c4b3a2918f7e6d5c4b3a29a"

	SeedPhrase = "forest rally cupboard elder ocean ticket brave lunar harvest cradle mimic vessel"
)

// Bill ids of the seeded bills.
const (
	IssuedBillID   = "bill-0001"
	ReceivedBillID = "bill-0002"
	CompanyBillID  = "bill-0003"
)

func fixturePersonal() models.Identity {
	return models.Identity{
		NodeID: PersonalNodeID,
		Type:   models.PersonalIdentity,
		Name:   "Alice Smith",
		Email:  "alice@example.com",
		Address: models.PostalAddress{
			Country: "AT",
			City:    "Vienna",
			Zip:     "1010",
			Address: "Graben 1",
		},
		DateOfBirth:    "1990-04-12",
		CountryOfBirth: "AT",
		CityOfBirth:    "Graz",
		NostrNpub:      "npub1alice",
	}
}

func fixtureCompanies() []models.Company {
	return []models.Company{
		{
			ID:                    CompanyNodeID,
			Name:                  "Smith Trading GmbH",
			Email:                 "office@smith-trading.example",
			CountryOfRegistration: "AT",
			CityOfRegistration:    "Vienna",
			RegistrationNumber:    "FN 123456a",
			RegistrationDate:      "2019-09-01",
			Address: models.PostalAddress{
				Country: "AT",
				City:    "Vienna",
				Zip:     "1030",
				Address: "Landstrasse 20",
			},
			Signatories: []models.Signer{
				{NodeID: PersonalNodeID, Name: "Alice Smith"},
			},
		},
	}
}

func fixtureContacts() []models.Contact {
	return []models.Contact{
		{
			Type:   models.PersonContact,
			NodeID: PersonContactNodeID,
			Name:   "Bob Builder",
			Email:  "bob@example.com",
			Address: models.PostalAddress{
				Country: "DE",
				City:    "Berlin",
				Zip:     "10115",
				Address: "Invalidenstrasse 5",
			},
			DateOfBirthOrRegistration:    "1985-02-20",
			CountryOfBirthOrRegistration: "DE",
			CityOfBirthOrRegistration:    "Hamburg",
		},
		{
			Type:   models.CompanyContact,
			NodeID: CompanyContactNodeID,
			Name:   "Paper Mill Ltd",
			Email:  "billing@papermill.example",
			Address: models.PostalAddress{
				Country: "GB",
				City:    "London",
				Zip:     "EC1A 1BB",
				Address: "1 King Street",
			},
			DateOfBirthOrRegistration:    "2001-06-30",
			CountryOfBirthOrRegistration: "GB",
			CityOfBirthOrRegistration:    "London",
			IdentificationNumber:         "GB-04512345",
		},
	}
}

func participantFromIdentity(i models.Identity) models.BillParticipant {
	t := models.PersonContact
	if i.Type == models.CompanyIdentity {
		t = models.CompanyContact
	}
	return models.BillParticipant{Type: t, NodeID: i.NodeID, Name: i.Name, Email: i.Email, Address: i.Address}
}

func participantFromContact(c models.Contact) models.BillParticipant {
	return models.BillParticipant{Type: c.Type, NodeID: c.NodeID, Name: c.Name, Email: c.Email, Address: c.Address}
}

type fixtureBill struct {
	bill   models.Bill
	blocks []string
}

func fixtureBills(personal models.Identity, company models.Identity, contacts []models.Contact) []fixtureBill {
	alice := participantFromIdentity(personal)
	smith := participantFromIdentity(company)
	bob := participantFromContact(contacts[0])
	paper := participantFromContact(contacts[1])

	return []fixtureBill{
		{
			bill: models.Bill{
				ID:               IssuedBillID,
				TimeOfDrawing:    1767225600,
				Type:             models.DraftedBill,
				CountryOfIssuing: "AT",
				CityOfIssuing:    "Vienna",
				Drawer:           alice,
				Drawee:           paper,
				Payee:            bob,
				Currency:         "sat",
				Sum:              "250000",
				IssueDate:        "2026-01-01",
				MaturityDate:     "2026-07-01",
				CountryOfPayment: "GB",
				CityOfPayment:    "London",
				Language:         "en",
				Files: []models.File{
					{Name: "invoice-2026-001.pdf", Hash: "9f2c1d0e", Size: 48213},
				},
			},
			blocks: []string{opIssue},
		},
		{
			bill: models.Bill{
				ID:               ReceivedBillID,
				TimeOfDrawing:    1769904000,
				Type:             models.DraftedBill,
				CountryOfIssuing: "DE",
				CityOfIssuing:    "Berlin",
				Drawer:           bob,
				Drawee:           paper,
				Payee:            alice,
				Currency:         "sat",
				Sum:              "1000000",
				IssueDate:        "2026-02-01",
				MaturityDate:     "2026-08-01",
				CountryOfPayment: "GB",
				CityOfPayment:    "London",
				Language:         "en",
				Accepted:         true,
			},
			blocks: []string{opIssue, opAccept},
		},
		{
			bill: models.Bill{
				ID:               CompanyBillID,
				TimeOfDrawing:    1772323200,
				Type:             models.PromissoryNote,
				CountryOfIssuing: "GB",
				CityOfIssuing:    "London",
				Drawer:           paper,
				Drawee:           paper,
				Payee:            smith,
				Currency:         "sat",
				Sum:              "75000",
				IssueDate:        "2026-03-01",
				MaturityDate:     "2026-06-01",
				CountryOfPayment: "GB",
				CityOfPayment:    "London",
				Language:         "en",
			},
			blocks: []string{opIssue},
		},
	}
}

func fixtureNotifications() []models.Notification {
	sum := "1000000"
	return []models.Notification{
		{
			ID:               "notif-0001",
			NodeID:           PersonalNodeID,
			NotificationType: models.BillNotification,
			ReferenceID:      ReceivedBillID,
			Description:      "Bill was accepted by the drawee",
			Datetime:         "2026-02-02T09:30:00Z",
			Active:           true,
			Payload:          models.NotificationPayload{ActionType: models.ActionCheckBill, BillID: ReceivedBillID, Sum: &sum},
		},
		{
			ID:               "notif-0002",
			NodeID:           PersonalNodeID,
			NotificationType: models.BillNotification,
			ReferenceID:      IssuedBillID,
			Description:      "Bill is waiting for acceptance",
			Datetime:         "2026-01-01T12:00:00Z",
			Active:           true,
			Payload:          models.NotificationPayload{ActionType: models.ActionAcceptBill, BillID: IssuedBillID},
		},
		{
			ID:               "notif-0003",
			NodeID:           CompanyNodeID,
			NotificationType: models.GeneralNotification,
			Description:      "Company profile was updated",
			Datetime:         "2026-03-02T08:00:00Z",
			Active:           false,
		},
	}
}

func fixtureQuotes() []models.Quote {
	return []models.Quote{
		{
			BillID:     ReceivedBillID,
			MintNodeID: MintNodeID,
			Sum:        "985000",
			QuoteID:    "quote-0001",
			Status:     models.QuoteOffered,
		},
	}
}
