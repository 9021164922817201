// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session tracks the identity the client acts as.
//
// The active identity is resolved in two sequential steps: the active node
// id and type, then the details of that identity (company details for a
// company, personal details otherwise). The session is an explicit state
// machine over [State]; only its own methods change the state and every
// transition is published to subscribers.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-bitcredit/internal/logger"
	"github.com/MKhiriev/go-bitcredit/internal/service"
	"github.com/MKhiriev/go-bitcredit/models"
)

// ErrInvalidSwitch is returned for a switch without node id or with an
// unknown identity type.
var ErrInvalidSwitch = errors.New("invalid identity switch")

// Session owns the active identity. It is safe for concurrent use;
// Resolve and Switch run one at a time.
type Session struct {
	identities service.IdentityService
	companies  service.CompanyService

	op sync.Mutex // serializes Resolve and Switch

	mu          sync.RWMutex
	current     Snapshot
	subscribers map[int]func(Snapshot)
	nextSubID   int

	logger *logger.Logger
}

// New returns an unresolved session.
func New(identities service.IdentityService, companies service.CompanyService, log *logger.Logger) *Session {
	return &Session{
		identities:  identities,
		companies:   companies,
		subscribers: make(map[int]func(Snapshot)),
		logger:      log.Component("session"),
	}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsAuthenticated reports whether an active node id is known.
func (s *Session) IsAuthenticated() bool {
	return s.Snapshot().IsAuthenticated()
}

// Settled reports whether nothing is in flight and the first resolution
// has finished.
func (s *Session) Settled() bool {
	return s.Snapshot().Settled()
}

// Subscribe registers fn to be called with the new snapshot after every
// transition. Calls happen synchronously, in transition order; fn must not
// call Resolve or Switch. The returned function removes the subscription.
func (s *Session) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Resolve fetches the active identity and then its details.
//
// If the active identity cannot be fetched the session ends UNRESOLVED and
// stays there until Resolve is called again. If only the details fail, the
// node id and type are kept and the display fields stay empty; the error
// is still returned.
func (s *Session) Resolve(ctx context.Context) error {
	s.op.Lock()
	defer s.op.Unlock()

	log := s.logger.WithTraceID(ctx)

	s.transition(func(cur Snapshot) Snapshot {
		cur.State = Resolving
		return cur
	})

	active, err := s.identities.Active(ctx)
	if err != nil {
		log.Err(err).Str("func", "Session.Resolve").Msg("active identity unavailable")
		s.transition(func(Snapshot) Snapshot {
			return Snapshot{State: Unresolved, Attempted: true}
		})
		return fmt.Errorf("resolve active identity: %w", err)
	}

	s.transition(func(cur Snapshot) Snapshot {
		if cur.NodeID != active.NodeID {
			cur = cur.withoutDisplay()
		}
		cur.NodeID = active.NodeID
		cur.Type = active.Type
		return cur
	})

	return s.fetchDetails(ctx, active.NodeID, active.Type)
}

// Switch makes nodeID the active identity.
//
// The node id is cleared first, then the node's switch endpoint is called,
// then the new node id and type are set and the details fetched. While the
// switch call is in flight no snapshot carries a node id. If the switch
// call fails the previous identity is restored.
func (s *Session) Switch(ctx context.Context, nodeID string, identityType models.IdentityType) error {
	if nodeID == "" || !identityType.Valid() {
		return fmt.Errorf("%w: node id %q type %q", ErrInvalidSwitch, nodeID, identityType)
	}

	s.op.Lock()
	defer s.op.Unlock()

	log := s.logger.WithTraceID(ctx)
	previous := s.Snapshot()

	s.transition(func(cur Snapshot) Snapshot {
		return Snapshot{State: Switching, Attempted: cur.Attempted}
	})

	if err := s.identities.Switch(ctx, nodeID, identityType); err != nil {
		log.Err(err).
			Str("func", "Session.Switch").
			Str("node_id", nodeID).
			Msg("switch rejected, restoring previous identity")
		s.transition(func(Snapshot) Snapshot { return previous })
		return fmt.Errorf("switch identity: %w", err)
	}

	s.transition(func(cur Snapshot) Snapshot {
		cur.State = Resolving
		cur.NodeID = nodeID
		cur.Type = identityType
		return cur
	})

	log.Info().Str("node_id", nodeID).Str("type", string(identityType)).Msg("identity switched")
	return s.fetchDetails(ctx, nodeID, identityType)
}

func (s *Session) fetchDetails(ctx context.Context, nodeID string, identityType models.IdentityType) error {
	var (
		identity models.Identity
		err      error
	)

	if identityType == models.CompanyIdentity {
		var company models.Company
		company, err = s.companies.Detail(ctx, nodeID)
		identity = company.AsIdentity()
	} else {
		identity, err = s.identities.Detail(ctx)
	}

	if err != nil {
		s.logger.WithTraceID(ctx).Err(err).
			Str("func", "Session.fetchDetails").
			Str("node_id", nodeID).
			Msg("identity details unavailable")
		s.transition(func(cur Snapshot) Snapshot {
			cur = cur.withoutDisplay()
			cur.State = Resolved
			cur.Attempted = true
			return cur
		})
		return fmt.Errorf("resolve identity details: %w", err)
	}

	s.transition(func(cur Snapshot) Snapshot {
		cur = cur.withIdentity(identity)
		cur.State = Resolved
		cur.Attempted = true
		return cur
	})
	return nil
}

// transition applies change to the current snapshot and publishes the
// result.
func (s *Session) transition(change func(Snapshot) Snapshot) {
	s.mu.Lock()
	s.current = change(s.current)
	next := s.current
	subscribers := make([]func(Snapshot), 0, len(s.subscribers))
	for id := 0; id < s.nextSubID; id++ {
		if fn, ok := s.subscribers[id]; ok {
			subscribers = append(subscribers, fn)
		}
	}
	s.mu.Unlock()

	s.logger.Debug().
		Str("state", next.State.String()).
		Str("node_id", next.NodeID).
		Msg("session transition")

	for _, fn := range subscribers {
		fn(next)
	}
}
