// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"encoding/hex"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-bitcredit/models"
)

// BillCurrency is the only currency bills are drawn in.
const BillCurrency = "sat"

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNodeID reports whether s looks like a compressed secp256k1 public key
// in hex, which is how the node identifies identities and companies.
func IsNodeID(s string) bool {
	if len(s) != 66 || (s[:2] != "02" && s[:2] != "03") {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s[strings.LastIndexByte(s, '@'):], ".")
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(time.DateOnly, s)
	return t, err == nil
}

func isPositiveSum(s string) bool {
	n, err := strconv.ParseUint(s, 10, 64)
	return err == nil && n > 0
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// checkRequired adds ErrRequired when value is blank.
func checkRequired(errs *ValidationErrors, field, value string) bool {
	if isBlank(value) {
		errs.add(field, ErrRequired)
		return false
	}
	return true
}

func checkNodeID(errs *ValidationErrors, field, value string) {
	if checkRequired(errs, field, value) && !IsNodeID(value) {
		errs.add(field, ErrInvalidNodeID)
	}
}

func checkEmail(errs *ValidationErrors, field, value string) {
	if checkRequired(errs, field, value) && !isEmail(value) {
		errs.add(field, ErrInvalidEmail)
	}
}

// checkOptionalDate accepts an empty value.
func checkOptionalDate(errs *ValidationErrors, field, value string) {
	if value == "" {
		return
	}
	if _, ok := parseDate(value); !ok {
		errs.add(field, ErrInvalidDate)
	}
}

func checkAddress(errs *ValidationErrors, a models.PostalAddress) {
	checkRequired(errs, FieldCountry, a.Country)
	checkRequired(errs, FieldCity, a.City)
	checkRequired(errs, FieldAddress, a.Address)
}

// checkDate requires value to be an ISO date and returns it parsed.
func checkDate(errs *ValidationErrors, field, value string) (time.Time, bool) {
	if !checkRequired(errs, field, value) {
		return time.Time{}, false
	}
	t, ok := parseDate(value)
	if !ok {
		errs.add(field, ErrInvalidDate)
	}
	return t, ok
}
