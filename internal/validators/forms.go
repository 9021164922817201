// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-bitcredit/models"
)

// Field names reported in [FieldError] and accepted for scoping.
const (
	FieldNodeID             = "node_id"
	FieldType               = "type"
	FieldName               = "name"
	FieldEmail              = "email"
	FieldCountry            = "country"
	FieldCity               = "city"
	FieldAddress            = "address"
	FieldDateOfBirth        = "date_of_birth"
	FieldRegistrationDate   = "registration_date"
	FieldPayee              = "payee"
	FieldDrawee             = "drawee"
	FieldSum                = "sum"
	FieldCurrency           = "currency"
	FieldIssueDate          = "issue_date"
	FieldMaturityDate       = "maturity_date"
	FieldCountryOfIssuing   = "country_of_issuing"
	FieldCityOfIssuing      = "city_of_issuing"
	FieldCountryOfPayment   = "country_of_payment"
	FieldCityOfPayment      = "city_of_payment"
	FieldBillID             = "bill_id"
	FieldEndorsee           = "endorsee"
	FieldBuyer              = "buyer"
	FieldSeedPhrase         = "seed_phrase"
	FieldDefaultMintURL     = "default_mint_url"
	FieldDefaultMintNodeID  = "default_mint_node_id"
	fieldPostalAddressGroup = "postal_address"
)

// FormValidator validates the contact, identity, company, bill and
// settings forms.
type FormValidator struct{}

func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches on the value's type. When fields are given, only
// errors of those fields are reported; "postal_address" stands for the
// country, city and address fields together.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var errs ValidationErrors

	switch value := obj.(type) {
	case models.Contact:
		errs = v.validateContact(value)
	case *models.Contact:
		errs = v.validateContact(*value)
	case models.Identity:
		errs = v.validateIdentity(value)
	case *models.Identity:
		errs = v.validateIdentity(*value)
	case models.Company:
		errs = v.validateCompany(value)
	case *models.Company:
		errs = v.validateCompany(*value)
	case models.IssueBillRequest:
		errs = v.validateIssueBill(value)
	case *models.IssueBillRequest:
		errs = v.validateIssueBill(*value)
	case models.EndorseBillRequest:
		errs = v.validateEndorse(value)
	case models.OfferToSellRequest:
		errs = v.validateOfferToSell(value)
	case models.SeedPhrase:
		errs = v.validateSeed(value)
	case models.MintConfig:
		errs = v.validateMintConfig(value)
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		return errs.err()
	}
	return scope(errs, fields)
}

func scope(errs ValidationErrors, fields []string) error {
	if slices.Contains(fields, fieldPostalAddressGroup) {
		fields = append(fields, FieldCountry, FieldCity, FieldAddress)
	}
	for _, f := range fields {
		if !knownField(f) {
			return ErrUnknownField
		}
	}

	var scoped ValidationErrors
	for _, e := range errs {
		if slices.Contains(fields, e.Field) {
			scoped = append(scoped, e)
		}
	}
	return scoped.err()
}

var knownFields = []string{
	FieldNodeID, FieldType, FieldName, FieldEmail, FieldCountry, FieldCity, FieldAddress,
	FieldDateOfBirth, FieldRegistrationDate, FieldPayee, FieldDrawee, FieldSum, FieldCurrency,
	FieldIssueDate, FieldMaturityDate, FieldCountryOfIssuing, FieldCityOfIssuing,
	FieldCountryOfPayment, FieldCityOfPayment, FieldBillID, FieldEndorsee, FieldBuyer,
	FieldSeedPhrase, FieldDefaultMintURL, FieldDefaultMintNodeID, fieldPostalAddressGroup,
}

func knownField(f string) bool {
	return slices.Contains(knownFields, f)
}

func (v *FormValidator) validateContact(c models.Contact) ValidationErrors {
	var errs ValidationErrors
	if c.Type != models.PersonContact && c.Type != models.CompanyContact {
		errs.add(FieldType, ErrInvalidType)
	}
	checkNodeID(&errs, FieldNodeID, c.NodeID)
	checkRequired(&errs, FieldName, c.Name)
	checkEmail(&errs, FieldEmail, c.Email)
	checkAddress(&errs, c.Address)

	field := FieldDateOfBirth
	if c.Type == models.CompanyContact {
		field = FieldRegistrationDate
	}
	checkOptionalDate(&errs, field, c.DateOfBirthOrRegistration)
	return errs
}

func (v *FormValidator) validateIdentity(i models.Identity) ValidationErrors {
	var errs ValidationErrors
	checkRequired(&errs, FieldName, i.Name)
	checkEmail(&errs, FieldEmail, i.Email)
	checkAddress(&errs, i.Address)
	checkOptionalDate(&errs, FieldDateOfBirth, i.DateOfBirth)
	return errs
}

func (v *FormValidator) validateCompany(c models.Company) ValidationErrors {
	var errs ValidationErrors
	checkRequired(&errs, FieldName, c.Name)
	checkEmail(&errs, FieldEmail, c.Email)
	checkAddress(&errs, c.Address)
	checkOptionalDate(&errs, FieldRegistrationDate, c.RegistrationDate)
	return errs
}

func (v *FormValidator) validateIssueBill(b models.IssueBillRequest) ValidationErrors {
	var errs ValidationErrors

	switch b.Type {
	case models.PromissoryNote:
		checkNodeID(&errs, FieldPayee, b.Payee)
	case models.SelfDraftedBill:
		checkNodeID(&errs, FieldDrawee, b.Drawee)
	case models.DraftedBill:
		checkNodeID(&errs, FieldPayee, b.Payee)
		checkNodeID(&errs, FieldDrawee, b.Drawee)
		if b.Payee != "" && b.Payee == b.Drawee {
			errs.add(FieldDrawee, ErrSameParticipants)
		}
	default:
		errs.add(FieldType, ErrInvalidType)
	}

	if checkRequired(&errs, FieldSum, b.Sum) && !isPositiveSum(b.Sum) {
		errs.add(FieldSum, ErrInvalidSum)
	}
	if checkRequired(&errs, FieldCurrency, b.Currency) && b.Currency != BillCurrency {
		errs.add(FieldCurrency, ErrInvalidCurrency)
	}

	issue, issueOK := checkDate(&errs, FieldIssueDate, b.IssueDate)
	maturity, maturityOK := checkDate(&errs, FieldMaturityDate, b.MaturityDate)
	if issueOK && maturityOK && maturity.Before(issue) {
		errs.add(FieldMaturityDate, ErrMaturityBefore)
	}

	checkRequired(&errs, FieldCountryOfIssuing, b.CountryOfIssuing)
	checkRequired(&errs, FieldCityOfIssuing, b.CityOfIssuing)
	checkRequired(&errs, FieldCountryOfPayment, b.CountryOfPayment)
	checkRequired(&errs, FieldCityOfPayment, b.CityOfPayment)
	return errs
}

func (v *FormValidator) validateEndorse(r models.EndorseBillRequest) ValidationErrors {
	var errs ValidationErrors
	checkRequired(&errs, FieldBillID, r.BillID)
	checkNodeID(&errs, FieldEndorsee, r.Endorsee)
	return errs
}

func (v *FormValidator) validateOfferToSell(r models.OfferToSellRequest) ValidationErrors {
	var errs ValidationErrors
	checkRequired(&errs, FieldBillID, r.BillID)
	checkNodeID(&errs, FieldBuyer, r.Buyer)
	if checkRequired(&errs, FieldSum, r.Sum) && !isPositiveSum(r.Sum) {
		errs.add(FieldSum, ErrInvalidSum)
	}
	if checkRequired(&errs, FieldCurrency, r.Currency) && r.Currency != BillCurrency {
		errs.add(FieldCurrency, ErrInvalidCurrency)
	}
	return errs
}

func (v *FormValidator) validateSeed(s models.SeedPhrase) ValidationErrors {
	var errs ValidationErrors
	if !checkRequired(&errs, FieldSeedPhrase, s.SeedPhrase) {
		return errs
	}
	if n := len(strings.Fields(s.SeedPhrase)); n != 12 && n != 24 {
		errs.add(FieldSeedPhrase, ErrInvalidSeed)
	}
	return errs
}

// validateMintConfig accepts empty fields; those fall back to defaults.
func (v *FormValidator) validateMintConfig(c models.MintConfig) ValidationErrors {
	var errs ValidationErrors
	if c.DefaultMintURL != "" && !isHTTPURL(c.DefaultMintURL) {
		errs.add(FieldDefaultMintURL, ErrInvalidURL)
	}
	if c.DefaultMintNodeID != "" && !IsNodeID(c.DefaultMintNodeID) {
		errs.add(FieldDefaultMintNodeID, ErrInvalidNodeID)
	}
	return errs
}
