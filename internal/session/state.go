// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "github.com/MKhiriev/go-bitcredit/models"

// State is the resolution state of the active identity.
type State int

const (
	// Unresolved: no active identity is known.
	Unresolved State = iota
	// Resolving: the active identity or its details are being fetched.
	Resolving
	// Resolved: the active node id is known.
	Resolved
	// Switching: a switch is in flight and the node id is cleared.
	Switching
)

func (s State) String() string {
	switch s {
	case Unresolved:
		return "UNRESOLVED"
	case Resolving:
		return "RESOLVING"
	case Resolved:
		return "RESOLVED"
	case Switching:
		return "SWITCHING"
	default:
		return "UNKNOWN"
	}
}

// Snapshot is an immutable copy of the session state.
type Snapshot struct {
	State State

	// NodeID is empty while unresolved or switching.
	NodeID string
	Type   models.IdentityType

	// Display fields of the active identity. They stay empty when the
	// detail fetch failed.
	Name    string
	Email   string
	Avatar  string
	Address models.PostalAddress

	// Attempted is set once the first resolution has finished, whatever
	// its outcome.
	Attempted bool
}

// IsAuthenticated reports whether an active node id is known.
func (s Snapshot) IsAuthenticated() bool {
	return s.NodeID != ""
}

// Settled reports whether the snapshot can be trusted for routing: the
// first resolution has finished and nothing is in flight.
func (s Snapshot) Settled() bool {
	switch s.State {
	case Resolved:
		return true
	case Unresolved:
		return s.Attempted
	default:
		return false
	}
}

func (s Snapshot) withIdentity(identity models.Identity) Snapshot {
	s.Name = identity.Name
	s.Email = identity.Email
	s.Avatar = identity.Avatar
	s.Address = identity.Address
	return s
}

func (s Snapshot) withoutDisplay() Snapshot {
	s.Name, s.Email, s.Avatar = "", "", ""
	s.Address = models.PostalAddress{}
	return s
}
