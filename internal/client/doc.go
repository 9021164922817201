// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the local storage, the node API client (or the in-process mock
// node), the resource services, the identity session, the action
// dispatcher and the terminal UI into a single process lifecycle.
package client
