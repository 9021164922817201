// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bitcredit/models"
)

const (
	nodeA = "0281b637d8fcd2c6da6359e6963113a1170de795e4b725b84d1e0b4cfd9ec58ce9"
	nodeB = "03382635c9325bf3273d195ff1b8a44e5b11afd7d97addeb8863ea35feb98c1a07"
)

var validAddress = models.PostalAddress{Country: "AT", City: "Vienna", Address: "Graben 1"}

func validBill() models.IssueBillRequest {
	return models.IssueBillRequest{
		Type:             models.DraftedBill,
		Payee:            nodeA,
		Drawee:           nodeB,
		Sum:              "1000",
		Currency:         "sat",
		IssueDate:        "2026-04-01",
		MaturityDate:     "2026-10-01",
		CountryOfIssuing: "AT",
		CityOfIssuing:    "Vienna",
		CountryOfPayment: "AT",
		CityOfPayment:    "Vienna",
	}
}

func validationErrors(t *testing.T, err error) ValidationErrors {
	t.Helper()
	require.Error(t, err)
	var errs ValidationErrors
	require.True(t, errors.As(err, &errs), "expected ValidationErrors, got %T", err)
	return errs
}

func TestFormValidator_UnsupportedType(t *testing.T) {
	err := NewFormValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestFormValidator_Contact(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	valid := models.Contact{Type: models.PersonContact, NodeID: nodeA, Name: "Bob", Email: "bob@example.com", Address: validAddress}
	require.NoError(t, v.Validate(ctx, valid))
	require.NoError(t, v.Validate(ctx, &valid))

	errs := validationErrors(t, v.Validate(ctx, models.Contact{Type: 5, NodeID: "02xyz", Email: "not-an-email"}))
	assert.ErrorIs(t, errs.Field(FieldType), ErrInvalidType)
	assert.ErrorIs(t, errs.Field(FieldNodeID), ErrInvalidNodeID)
	assert.ErrorIs(t, errs.Field(FieldName), ErrRequired)
	assert.ErrorIs(t, errs.Field(FieldEmail), ErrInvalidEmail)
	assert.ErrorIs(t, errs.Field(FieldCountry), ErrRequired)
	assert.ErrorIs(t, errs.Field(FieldCity), ErrRequired)
	assert.ErrorIs(t, errs.Field(FieldAddress), ErrRequired)

	company := valid
	company.Type = models.CompanyContact
	company.DateOfBirthOrRegistration = "01.02.2020"
	errs = validationErrors(t, v.Validate(ctx, company))
	assert.ErrorIs(t, errs.Field(FieldRegistrationDate), ErrInvalidDate)
	assert.Nil(t, errs.Field(FieldDateOfBirth))
}

func TestFormValidator_IdentityAndCompany(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Identity{Name: "Alice", Email: "alice@example.com", Address: validAddress, DateOfBirth: "1990-04-12"}))

	errs := validationErrors(t, v.Validate(ctx, models.Identity{Name: " ", Email: "alice@localhost", Address: validAddress}))
	assert.ErrorIs(t, errs.Field(FieldName), ErrRequired)
	assert.ErrorIs(t, errs.Field(FieldEmail), ErrInvalidEmail)
	assert.Len(t, errs, 2)

	errs = validationErrors(t, v.Validate(ctx, &models.Company{Name: "ACME", Email: "a@acme.example", RegistrationDate: "2020-13-01"}))
	assert.ErrorIs(t, errs.Field(FieldRegistrationDate), ErrInvalidDate)
	assert.ErrorIs(t, errs, ErrRequired)
}

func TestFormValidator_IssueBill(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, validBill()))

	tests := []struct {
		name   string
		modify func(b *models.IssueBillRequest)
		field  string
		want   error
	}{
		{"zero sum", func(b *models.IssueBillRequest) { b.Sum = "0" }, FieldSum, ErrInvalidSum},
		{"decimal sum", func(b *models.IssueBillRequest) { b.Sum = "10.5" }, FieldSum, ErrInvalidSum},
		{"missing sum", func(b *models.IssueBillRequest) { b.Sum = "" }, FieldSum, ErrRequired},
		{"currency", func(b *models.IssueBillRequest) { b.Currency = "EUR" }, FieldCurrency, ErrInvalidCurrency},
		{"issue date format", func(b *models.IssueBillRequest) { b.IssueDate = "2026/04/01" }, FieldIssueDate, ErrInvalidDate},
		{"maturity before issue", func(b *models.IssueBillRequest) { b.MaturityDate = "2026-03-31" }, FieldMaturityDate, ErrMaturityBefore},
		{"payee node id", func(b *models.IssueBillRequest) { b.Payee = "bob" }, FieldPayee, ErrInvalidNodeID},
		{"same participants", func(b *models.IssueBillRequest) { b.Drawee = b.Payee }, FieldDrawee, ErrSameParticipants},
		{"unknown type", func(b *models.IssueBillRequest) { b.Type = 9 }, FieldType, ErrInvalidType},
		{"city of payment", func(b *models.IssueBillRequest) { b.CityOfPayment = "" }, FieldCityOfPayment, ErrRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBill()
			tt.modify(&b)
			errs := validationErrors(t, v.Validate(ctx, b))
			assert.ErrorIs(t, errs.Field(tt.field), tt.want)
		})
	}
}

func TestFormValidator_IssueBillShapes(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	promissory := validBill()
	promissory.Type = models.PromissoryNote
	promissory.Drawee = ""
	require.NoError(t, v.Validate(ctx, promissory))

	self := validBill()
	self.Type = models.SelfDraftedBill
	self.Payee = ""
	require.NoError(t, v.Validate(ctx, self))
}

func TestFormValidator_FieldScoping(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()
	empty := models.Contact{}

	errs := validationErrors(t, v.Validate(ctx, empty, FieldName))
	require.Len(t, errs, 1)
	assert.Equal(t, FieldName, errs[0].Field)

	errs = validationErrors(t, v.Validate(ctx, empty, "postal_address"))
	assert.Len(t, errs, 3)

	assert.NoError(t, v.Validate(ctx, models.Contact{Name: "Bob"}, FieldName))
	assert.ErrorIs(t, v.Validate(ctx, empty, "shoe_size"), ErrUnknownField)
}

func TestFormValidator_ActionsSeedAndMint(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.EndorseBillRequest{BillID: "b1", Endorsee: nodeB}))
	errs := validationErrors(t, v.Validate(ctx, models.EndorseBillRequest{Endorsee: "x"}))
	assert.ErrorIs(t, errs.Field(FieldBillID), ErrRequired)
	assert.ErrorIs(t, errs.Field(FieldEndorsee), ErrInvalidNodeID)

	require.NoError(t, v.Validate(ctx, models.OfferToSellRequest{BillID: "b1", Buyer: nodeA, Sum: "10", Currency: "sat"}))
	errs = validationErrors(t, v.Validate(ctx, models.OfferToSellRequest{BillID: "b1", Buyer: nodeA, Sum: "-1", Currency: "sat"}))
	assert.ErrorIs(t, errs.Field(FieldSum), ErrInvalidSum)

	require.NoError(t, v.Validate(ctx, models.SeedPhrase{SeedPhrase: "a b c d e f g h i j k l"}))
	errs = validationErrors(t, v.Validate(ctx, models.SeedPhrase{SeedPhrase: "a b c"}))
	assert.ErrorIs(t, errs.Field(FieldSeedPhrase), ErrInvalidSeed)

	require.NoError(t, v.Validate(ctx, models.MintConfig{}))
	require.NoError(t, v.Validate(ctx, models.MintConfig{DefaultMintURL: "https://mint.example", DefaultMintNodeID: nodeA}))
	errs = validationErrors(t, v.Validate(ctx, models.MintConfig{DefaultMintURL: "mint.example", DefaultMintNodeID: "02"}))
	assert.ErrorIs(t, errs.Field(FieldDefaultMintURL), ErrInvalidURL)
	assert.ErrorIs(t, errs.Field(FieldDefaultMintNodeID), ErrInvalidNodeID)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{{Field: FieldName, Err: ErrRequired}, {Field: FieldSum, Err: ErrInvalidSum}}
	assert.Equal(t, "name is required; sum must be a positive whole number", errs.Error())
	assert.ErrorIs(t, errs, ErrInvalidSum)
	assert.Nil(t, ValidationErrors{}.err())
}

func TestIsNodeID(t *testing.T) {
	assert.True(t, IsNodeID(nodeA))
	assert.True(t, IsNodeID(nodeB))
	assert.False(t, IsNodeID("04"+nodeA[2:]))
	assert.False(t, IsNodeID(nodeA[:65]))
	assert.False(t, IsNodeID("02"+"zz"+nodeA[4:]))
}
