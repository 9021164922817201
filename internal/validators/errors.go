// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequired         = errors.New("is required")
	ErrInvalidNodeID    = errors.New("must be a 66 character hex node id starting with 02 or 03")
	ErrInvalidEmail     = errors.New("must be a valid email address")
	ErrInvalidDate      = errors.New("must be a date in YYYY-MM-DD format")
	ErrInvalidSum       = errors.New("must be a positive whole number")
	ErrInvalidCurrency  = errors.New("must be sat")
	ErrInvalidType      = errors.New("has an unknown value")
	ErrMaturityBefore   = errors.New("must not be before the issue date")
	ErrInvalidSeed      = errors.New("must have 12 or 24 words")
	ErrInvalidURL       = errors.New("must be an http or https URL")
	ErrSameParticipants = errors.New("must differ from the payee")
)

// FieldError is a validation failure of one form field.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + " " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects every failing field of a form, in field order.
// It matches its causes with errors.Is.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

func (v ValidationErrors) Unwrap() []error {
	out := make([]error, 0, len(v))
	for _, e := range v {
		out = append(out, e)
	}
	return out
}

// Field returns the error of field, or nil.
func (v ValidationErrors) Field(field string) error {
	for _, e := range v {
		if e.Field == field {
			return e.Err
		}
	}
	return nil
}

func (v *ValidationErrors) add(field string, err error) {
	*v = append(*v, FieldError{Field: field, Err: err})
}

// err returns v as an error, or nil when empty.
func (v ValidationErrors) err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
