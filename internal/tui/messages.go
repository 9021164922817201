// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-bitcredit/internal/session"

// NavigateTo asks the root model to open a path. The path goes through the
// router and the guard like any other navigation.
type NavigateTo struct {
	Path string
}

// sessionChangedMsg carries a session transition into the event loop.
type sessionChangedMsg struct {
	snapshot session.Snapshot
}

// sessionResolvedMsg is returned once a Resolve or Switch call finished.
type sessionResolvedMsg struct {
	err error
}

// errorMsg shows err in the error overlay. The screen stays open.
type errorMsg struct {
	err error
}

// screenFailedMsg ends the current screen and shows the failure screen.
type screenFailedMsg struct {
	err error
}

type statusMsg struct {
	text string
}

type clearStatusMsg struct{}
