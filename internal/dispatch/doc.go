// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dispatch chooses between two implementations of the same logical
// action: one for the browser-like context and one for the installed-app
// context.
//
// Actions are registered in an explicit [Registry] under a stable
// identifier. The first registration of an identifier wins; later
// registrations get the same [Action] back. On every [Action.Invoke] the
// [Environment] is checked again and the matching implementation runs.
package dispatch
