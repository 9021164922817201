// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mockapi is an in-memory stand-in for the Bitcredit node API.
//
// [Node] holds the state (identities, companies, contacts, bills,
// notifications and quotes) seeded from fixtures; [Handler] exposes it over
// the same REST routes the real node serves. The handler can be mounted on
// an HTTP server (cmd/mocknode) or plugged straight into the client's HTTP
// stack through [Transport], which is what the APP_MOCK_API setting does.
package mockapi
