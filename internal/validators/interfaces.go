// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks form input locally before it is sent to the
// node.
//
// A [Validator] validates a value and can be scoped to named fields. The
// form validator reports every failing field at once as
// [ValidationErrors], so a screen can mark each field.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
